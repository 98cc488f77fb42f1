// Package recurrence expands a service's start/end window into a weekly
// series of windows on selected weekdays.
package recurrence

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/teambition/rrule-go"
)

// MaxOccurrences caps every expansion. The cap applies after generation, so a
// wide weekday selection keeps the earliest windows.
const MaxOccurrences = 20

// Window is one occurrence of a recurring service.
type Window struct {
	Start time.Time
	End   time.Time
}

var rruleWeekday = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// Expand scans weeks*7 days starting at start's date and emits a window for
// every day whose weekday is selected, using start's time of day for the
// window start and end's time of day for the window end. Results are
// ascending and truncated to MaxOccurrences.
//
// intervalWeeks is collected by the creation form but does not thin the
// series: every matching weekday in the scan range recurs. Callers depend on
// that, so the rule is pinned to a weekly interval of 1.
func Expand(start, end time.Time, weekdays map[time.Weekday]bool, intervalWeeks, weeks int) ([]Window, error) {
	if weeks <= 0 {
		return nil, nil
	}
	byday := make([]rrule.Weekday, 0, len(weekdays))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if weekdays[wd] {
			byday = append(byday, rruleWeekday[wd])
		}
	}
	if len(byday) == 0 {
		return nil, nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  1,
		Byweekday: byday,
		Dtstart:   start,
		Until:     start.AddDate(0, 0, weeks*7-1),
	})
	if err != nil {
		return nil, eris.Wrap(err, "Failed to build recurrence rule")
	}

	windows := make([]Window, 0, MaxOccurrences)
	for _, occ := range rule.All() {
		if len(windows) == MaxOccurrences {
			break
		}
		windows = append(windows, Window{
			Start: occ,
			End: time.Date(occ.Year(), occ.Month(), occ.Day(),
				end.Hour(), end.Minute(), end.Second(), end.Nanosecond(), occ.Location()),
		})
	}
	return windows, nil
}
