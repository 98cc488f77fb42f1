package organization

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/orgsession"
	"github.com/worshipbuddy/schedulebuddy-cli/common/logger"
	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
)

// List shows every organization the signed-in user belongs to, marking the
// active one.
func (h *Handler) List(ctx context.Context) error {
	orgs, err := h.loadOrganizations(ctx)
	if err != nil {
		return err
	}

	if len(orgs) == 0 {
		printer.Infoln("You are not a member of any organization yet.")
		printer.Infoln("Ask an organization admin to invite you, then log in again.")
		return nil
	}

	cfg := h.configService.GetConfig()
	printer.Headerln("  Your Organizations  ")
	for _, org := range orgs {
		marker := "  "
		if org.ID == cfg.OrganizationID {
			marker = "* "
		}
		printer.Infoln(marker + org.Name)
		if addr := org.FullAddress(); addr != "" {
			printer.Mutedln("    " + addr)
		}
	}
	if cfg.OrganizationID == "" {
		printer.NewLine(1)
		printer.Notificationln("No active organization. Run 'schedulebuddy organization switch'.")
	}
	return nil
}

// Switch selects the active organization, either from the --id flag or
// interactively.
func (h *Handler) Switch(ctx context.Context, flags SwitchFlags) error {
	orgs, err := h.loadOrganizations(ctx)
	if err != nil {
		return err
	}
	if len(orgs) == 0 {
		printer.Infoln("You are not a member of any organization yet.")
		return nil
	}

	var selected models.Organization
	if flags.ID != "" {
		found := false
		for _, org := range orgs {
			if org.ID == flags.ID {
				selected = org
				found = true
				break
			}
		}
		if !found {
			return eris.Errorf("you are not a member of organization %q", flags.ID)
		}
	} else {
		names := make([]string, 0, len(orgs))
		for _, org := range orgs {
			names = append(names, org.Name)
		}
		index, err := h.inputService.Select(ctx, "Select an organization", "Organization", names, h.activeIndex(orgs))
		if err != nil {
			return eris.Wrap(err, "Failed to select organization")
		}
		selected = orgs[index]
	}

	cfg := h.configService.GetConfig()
	cfg.OrganizationID = selected.ID
	if err := h.configService.Save(); err != nil {
		return eris.Wrap(err, "Failed to save organization selection")
	}

	printer.Successf("Switched to organization: %s\n", selected.Name)
	return nil
}

func (h *Handler) activeIndex(orgs []models.Organization) int {
	active := h.configService.GetConfig().OrganizationID
	for i, org := range orgs {
		if org.ID == active {
			return i
		}
	}
	return -1
}

// loadOrganizations refreshes the stored org-id list from the account record,
// then resolves every id to its record concurrently, keeping list order.
func (h *Handler) loadOrganizations(ctx context.Context) ([]models.Organization, error) {
	cfg := h.configService.GetConfig()
	if !cfg.LoggedIn() {
		return nil, orgsession.ErrNotLoggedIn
	}

	profile, err := h.apiClient.GetUserProfile(ctx, cfg.UserEmail)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to load your profile")
	}

	ids := profile.ScheduleBuddy.Organizations
	cfg.Organizations = ids
	if err := h.configService.Save(); err != nil {
		logger.Errors(eris.Wrap(err, "failed to cache organization list"))
	}
	if len(ids) == 0 {
		return nil, nil
	}

	orgs := make([]models.Organization, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			org, err := h.apiClient.GetOrganization(gctx, id)
			if err != nil {
				return err
			}
			orgs[i] = org
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "Failed to load organizations")
	}
	return orgs, nil
}
