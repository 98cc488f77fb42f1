package schedule

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/orgsession"
	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
)

// List prints the signed-in user's upcoming assignments: every upcoming
// service where some team position carries their email.
func (h *Handler) List(ctx context.Context) error {
	session, assigned, err := h.loadAssignments(ctx)
	if err != nil {
		return err
	}

	printer.Headerf("  Your Schedule: %s  \n", session.Org.Name)
	printer.SectionDivider("-", 40)
	if len(assigned) == 0 {
		printer.Infoln("You are not scheduled for any upcoming services.")
		return nil
	}
	for _, entry := range assigned {
		start := entry.service.StartDatetime.Local()
		printer.Infof("%s  %s\n", start.Format("Mon, Jan 2"), entry.service.Name)
		for _, a := range entry.assignments {
			printer.Mutedln("    " + a.TeamName + ": " + a.Position)
		}
	}
	return nil
}

// AddUnavailability marks one date (YYYY-MM-DD) as unavailable.
func (h *Handler) AddUnavailability(ctx context.Context, date string) error {
	session, date, err := h.prepareUnavailability(ctx, date)
	if err != nil {
		return err
	}
	if session.CurrentUser != nil && slices.Contains(session.CurrentUser.Inability, date) {
		printer.Infof("%s is already marked unavailable.\n", date)
		return nil
	}

	if err := h.apiClient.SetInability(ctx, session.OrgID, session.Email, date, "add"); err != nil {
		return err
	}
	printer.Successf("Marked %s as unavailable\n", date)
	return nil
}

// RemoveUnavailability clears one unavailable date.
func (h *Handler) RemoveUnavailability(ctx context.Context, date string) error {
	session, date, err := h.prepareUnavailability(ctx, date)
	if err != nil {
		return err
	}
	if session.CurrentUser == nil || !slices.Contains(session.CurrentUser.Inability, date) {
		printer.Infof("%s is not marked unavailable.\n", date)
		return nil
	}

	if err := h.apiClient.SetInability(ctx, session.OrgID, session.Email, date, "remove"); err != nil {
		return err
	}
	printer.Successf("Cleared %s\n", date)
	return nil
}

// ShowUnavailability prints the stored unavailable dates, soonest first.
func (h *Handler) ShowUnavailability(ctx context.Context) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}

	var dates []string
	if session.CurrentUser != nil {
		dates = append(dates, session.CurrentUser.Inability...)
	}
	slices.Sort(dates)

	printer.Headerln("  Unavailable Dates  ")
	if len(dates) == 0 {
		printer.Infoln("No unavailable dates recorded.")
		return nil
	}
	for _, date := range dates {
		printer.Infoln(date)
	}
	return nil
}

func (h *Handler) prepareUnavailability(ctx context.Context, date string) (*orgsession.Session, string, error) {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return nil, "", err
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date, err = h.inputService.Prompt(ctx, "Date (YYYY-MM-DD)", "")
		if err != nil {
			return nil, "", err
		}
		date = strings.TrimSpace(date)
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, "", eris.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return session, date, nil
}

type assignedService struct {
	service     models.Service
	assignments []models.Assignment
}

func (h *Handler) loadAssignments(ctx context.Context) (*orgsession.Session, []assignedService, error) {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return nil, nil, err
	}

	services, err := h.apiClient.GetServices(ctx, session.OrgID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	var assigned []assignedService
	for _, svc := range services {
		if !svc.Upcoming(now) {
			continue
		}
		if assignments := svc.AssignmentsFor(session.Email); len(assignments) > 0 {
			assigned = append(assigned, assignedService{service: svc, assignments: assignments})
		}
	}
	slices.SortFunc(assigned, func(a, b assignedService) int {
		return a.service.StartDatetime.Compare(b.service.StartDatetime)
	})
	return session, assigned, nil
}
