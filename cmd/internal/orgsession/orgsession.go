// Package orgsession loads everything an org-scoped command needs in one
// shot: the organization record, its roster, its teams, and the resolved
// capabilities of the signed-in user.
package orgsession

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/access"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/clients/api"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/config"
)

var (
	ErrNotLoggedIn            = eris.New("not logged in, run 'schedulebuddy login' first")
	ErrNoOrganizationSelected = eris.New("no organization selected, run 'schedulebuddy organization switch' first")
)

// Session is the loaded org context for one command invocation.
type Session struct {
	OrgID string
	Org   models.Organization
	Users []models.User
	Teams []models.Team

	// CurrentUser is the signed-in user's roster entry, nil when they are not
	// on the roster (for example an owner who never joined a team).
	CurrentUser *models.User
	Email       string
	Access      access.Set
}

// Load fetches the org record, roster, and teams concurrently and derives the
// access set once. Any failed fetch fails the whole load.
func Load(ctx context.Context, client api.ClientInterface, orgID, email string) (*Session, error) {
	if orgID == "" {
		return nil, ErrNoOrganizationSelected
	}
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, ErrNotLoggedIn
	}

	var (
		org   models.Organization
		users []models.User
		teams []models.Team
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		org, err = client.GetOrganization(gctx, orgID)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = client.GetOrganizationUsers(gctx, orgID)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = client.GetTeams(gctx, orgID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "Failed to load organization")
	}

	session := &Session{
		OrgID: orgID,
		Org:   org,
		Users: users,
		Teams: teams,
		Email: email,
	}
	for i := range users {
		if models.NormalizeEmail(users[i].Email) == email {
			session.CurrentUser = &users[i]
			break
		}
	}
	session.Access = access.Resolve(org, users, email)
	return session, nil
}

// Resolve loads the session for the stored identity and active organization.
func Resolve(ctx context.Context, client api.ClientInterface, cfg *config.Config) (*Session, error) {
	if !cfg.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if cfg.OrganizationID == "" {
		return nil, ErrNoOrganizationSelected
	}
	return Load(ctx, client, cfg.OrganizationID, cfg.UserEmail)
}

// PositionNames returns the distinct position names across all teams in
// first-seen order. Used when editing a person's positions.
func (s *Session) PositionNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, team := range s.Teams {
		for _, pos := range team.Positions {
			if pos.Name == "" || seen[pos.Name] {
				continue
			}
			seen[pos.Name] = true
			names = append(names, pos.Name)
		}
	}
	return names
}

// TeamNames returns all team names in roster order.
func (s *Session) TeamNames() []string {
	names := make([]string, 0, len(s.Teams))
	for _, team := range s.Teams {
		names = append(names, team.Name)
	}
	return names
}

// FindUser returns the roster entry for the given email, nil when absent.
func (s *Session) FindUser(email string) *models.User {
	email = models.NormalizeEmail(email)
	for i := range s.Users {
		if models.NormalizeEmail(s.Users[i].Email) == email {
			return &s.Users[i]
		}
	}
	return nil
}
