package schedule

import (
	"context"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
)

const defaultExportFile = "schedulebuddy.ics"

// Export writes the signed-in user's upcoming assignments as an iCalendar
// file, one event per service.
func (h *Handler) Export(ctx context.Context, flags ExportFlags) error {
	session, assigned, err := h.loadAssignments(ctx)
	if err != nil {
		return err
	}
	if len(assigned) == 0 {
		printer.Infoln("You are not scheduled for any upcoming services, nothing to export.")
		return nil
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ScheduleBuddy//schedulebuddy-cli//EN")
	cal.SetName(session.Org.Name + " schedule")

	now := time.Now()
	for _, entry := range assigned {
		uid := entry.service.ID
		if uid == "" {
			uid = uuid.NewString()
		}
		event := cal.AddEvent(uid + "@worshipbuddy.org")
		event.SetDtStampTime(now)
		event.SetStartAt(entry.service.StartDatetime)
		event.SetEndAt(entry.service.EndDatetime)
		event.SetSummary(entry.service.Name)
		if entry.service.Location != "" {
			event.SetLocation(entry.service.Location)
		}

		lines := make([]string, 0, len(entry.assignments))
		for _, a := range entry.assignments {
			lines = append(lines, a.TeamName+": "+a.Position)
		}
		event.SetDescription("Serving as " + strings.Join(lines, "; "))
	}

	output := strings.TrimSpace(flags.Output)
	if output == "" {
		output = defaultExportFile
	}
	if err := os.WriteFile(output, []byte(cal.Serialize()), 0644); err != nil { //nolint:gosec // calendar data
		return eris.Wrapf(err, "Failed to write %s", output)
	}

	printer.Successf("Exported %d services to %s\n", len(assigned), output)
	return nil
}
