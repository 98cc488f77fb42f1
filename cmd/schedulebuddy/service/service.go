package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/orgsession"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/recurrence"
	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
	"github.com/worshipbuddy/schedulebuddy-cli/tea/component/multiselect"
	"github.com/worshipbuddy/schedulebuddy-cli/tea/component/program"
)

const datetimeLayout = "2006-01-02 15:04"

// List prints the active organization's upcoming services, earliest first.
func (h *Handler) List(ctx context.Context) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}

	services, err := h.apiClient.GetServices(ctx, session.OrgID)
	if err != nil {
		return err
	}

	now := time.Now()
	upcoming := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if svc.Upcoming(now) {
			upcoming = append(upcoming, svc)
		}
	}
	models.SortServicesByStart(upcoming)

	printer.Headerf("  Upcoming Services: %s  \n", session.Org.Name)
	if len(upcoming) == 0 {
		printer.Infoln("No upcoming services.")
		return nil
	}
	for _, svc := range upcoming {
		start := svc.StartDatetime.Local()
		end := svc.EndDatetime.Local()
		printer.Infof("%s\n", svc.Name)
		printer.Mutedln("    " + start.Format("Mon, Jan 2 2006") + "  " +
			start.Format("3:04 PM") + " - " + end.Format("3:04 PM"))
		location := svc.Location
		if location == "" {
			location = "No location specified"
		}
		printer.Mutedln("    " + location)
	}
	return nil
}

// Create creates one service, or a weekly series when recurrence is
// requested. Series creation is sequential and stops at the first failure
// without rolling back what was already created.
func (h *Handler) Create(ctx context.Context, flags CreateFlags) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}
	if !session.Access.CanManageOrg() {
		return ErrPermissionDenied
	}

	svc, err := h.buildService(ctx, session, flags)
	if err != nil {
		return err
	}

	if !flags.Recurring {
		if err := h.apiClient.CreateService(ctx, session.OrgID, svc); err != nil {
			return err
		}
		printer.Successf("Created service %q on %s\n",
			svc.Name, svc.StartDatetime.Local().Format("Mon, Jan 2 2006"))
		return nil
	}

	windows, err := h.expandRecurrence(ctx, svc, flags)
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		return eris.New("the selected weekdays and week count produce no occurrences")
	}

	created := 0
	err = program.RunProgram(ctx, func(p program.Program, ctx context.Context) error {
		for i, window := range windows {
			p.Send(program.StatusMsg(fmt.Sprintf(" Creating service %d of %d...", i+1, len(windows))))
			occurrence := svc
			occurrence.StartDatetime = window.Start
			occurrence.EndDatetime = window.End
			if err := h.apiClient.CreateService(ctx, session.OrgID, occurrence); err != nil {
				return eris.Wrapf(err, "Created %d of %d services before a failure", created, len(windows))
			}
			created++
		}
		return nil
	})
	if err != nil {
		return err
	}

	printer.Successf("Created %d services for %q\n", created, svc.Name)
	return nil
}

// buildService collects the service fields from flags, prompting for what is
// missing.
func (h *Handler) buildService(ctx context.Context, session *orgsession.Session, flags CreateFlags) (models.Service, error) {
	var svc models.Service

	name := strings.TrimSpace(flags.Name)
	if name == "" {
		var err error
		name, err = h.inputService.Prompt(ctx, "Service name", "")
		if err != nil {
			return svc, err
		}
		if strings.TrimSpace(name) == "" {
			return svc, eris.New("service name is required")
		}
	}

	start, err := h.promptDatetime(ctx, "Start (YYYY-MM-DD HH:MM)", flags.Start)
	if err != nil {
		return svc, err
	}
	end, err := h.promptDatetime(ctx, "End (YYYY-MM-DD HH:MM)", flags.End)
	if err != nil {
		return svc, err
	}
	if !end.After(start) {
		return svc, eris.New("end time must be after start time")
	}

	location := strings.TrimSpace(flags.Location)
	if location == "" {
		location, err = h.inputService.Prompt(ctx, "Location", session.Org.FullAddress())
		if err != nil {
			return svc, err
		}
	}

	teams, err := h.selectTeams(ctx, session, flags.Teams)
	if err != nil {
		return svc, err
	}

	svc = models.Service{
		Name:          strings.TrimSpace(name),
		StartDatetime: start,
		EndDatetime:   end,
		Location:      location,
		Teams:         teams,
	}
	return svc, nil
}

func (h *Handler) promptDatetime(ctx context.Context, label, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		var err error
		value, err = h.inputService.Prompt(ctx, label, "")
		if err != nil {
			return time.Time{}, err
		}
	}
	t, err := time.ParseInLocation(datetimeLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, eris.Errorf("invalid datetime %q, expected YYYY-MM-DD HH:MM", value)
	}
	return t, nil
}

// selectTeams resolves the chosen team names to service team entries with
// every position unassigned.
func (h *Handler) selectTeams(ctx context.Context, session *orgsession.Session, names []string) ([]models.ServiceTeam, error) {
	if len(session.Teams) == 0 {
		return nil, nil
	}

	if len(names) == 0 {
		picked, err := multiselect.Run(ctx, "Choose teams for this service", session.TeamNames())
		if err != nil {
			return nil, err
		}
		for _, index := range picked {
			names = append(names, session.Teams[index].Name)
		}
	}

	var serviceTeams []models.ServiceTeam
	for _, name := range names {
		team := findTeam(session.Teams, name)
		if team == nil {
			return nil, eris.Errorf("unknown team %q", name)
		}
		positions := make(map[string]models.Assignees, len(team.Positions))
		for _, pos := range team.Positions {
			positions[pos.Name] = models.Assignees{}
		}
		serviceTeams = append(serviceTeams, models.ServiceTeam{
			TeamName:            team.Name,
			Positions:           positions,
			AssignWithOtherTeam: team.AssignWithOtherTeam,
		})
	}
	return serviceTeams, nil
}

func findTeam(teams []models.Team, name string) *models.Team {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range teams {
		if strings.ToLower(strings.TrimSpace(teams[i].Name)) == needle {
			return &teams[i]
		}
	}
	return nil
}

// expandRecurrence turns the recurrence inputs into concrete windows.
func (h *Handler) expandRecurrence(ctx context.Context, svc models.Service, flags CreateFlags) ([]recurrence.Window, error) {
	weekdays, err := h.selectWeekdays(ctx, flags.Weekdays)
	if err != nil {
		return nil, err
	}

	interval := flags.IntervalWeeks
	if interval <= 0 {
		interval, err = h.promptCount(ctx, "Repeat every N weeks", 1)
		if err != nil {
			return nil, err
		}
	}
	weeks := flags.Weeks
	if weeks <= 0 {
		weeks, err = h.promptCount(ctx, "For how many weeks", 4)
		if err != nil {
			return nil, err
		}
	}

	return recurrence.Expand(svc.StartDatetime, svc.EndDatetime, weekdays, interval, weeks)
}

func (h *Handler) promptCount(ctx context.Context, label string, defaultValue int) (int, error) {
	value, err := h.inputService.Prompt(ctx, label, strconv.Itoa(defaultValue))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, eris.Errorf("invalid count %q", value)
	}
	return n, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var weekdayOrder = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

func (h *Handler) selectWeekdays(ctx context.Context, names []string) (map[time.Weekday]bool, error) {
	selected := map[time.Weekday]bool{}

	if len(names) > 0 {
		for _, name := range names {
			day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return nil, eris.Errorf("unknown weekday %q", name)
			}
			selected[day] = true
		}
		return selected, nil
	}

	labels := make([]string, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		labels = append(labels, day.String())
	}
	picked, err := multiselect.Run(ctx, "Choose the weekdays this service repeats on", labels)
	if err != nil {
		return nil, err
	}
	for _, index := range picked {
		selected[weekdayOrder[index]] = true
	}
	if len(selected) == 0 {
		return nil, eris.New("select at least one weekday")
	}
	return selected, nil
}
