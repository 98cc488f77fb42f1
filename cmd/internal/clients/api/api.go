package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
)

var (
	ErrOrganizationIDRequired = eris.New("organization id is required")
	ErrEmailRequired          = eris.New("email is required")
	ErrTeamNameRequired       = eris.New("team name is required")
)

func orgPath(orgID string) string {
	return "/schedulebuddy/organizations/" + url.PathEscape(orgID)
}

// GetOrganization fetches one organization record.
func (c *Client) GetOrganization(ctx context.Context, orgID string) (models.Organization, error) {
	if orgID == "" {
		return models.Organization{}, ErrOrganizationIDRequired
	}
	body, err := c.sendRequest(ctx, http.MethodGet, orgPath(orgID), nil)
	if err != nil {
		return models.Organization{}, eris.Wrap(err, "Failed to get organization")
	}
	return decodeResponse[models.Organization](body)
}

// TransferOwnership replaces the organization's owner snapshot.
func (c *Client) TransferOwnership(ctx context.Context, orgID string, newOwner models.Owner) error {
	if orgID == "" {
		return ErrOrganizationIDRequired
	}
	if newOwner.Email == "" {
		return ErrEmailRequired
	}
	payload := map[string]models.Owner{"owner": newOwner}
	_, err := c.sendRequest(ctx, http.MethodPut, orgPath(orgID), payload)
	if err != nil {
		return eris.Wrap(err, "Failed to transfer ownership")
	}
	return nil
}

// GetOrganizationUsers fetches the organization roster.
func (c *Client) GetOrganizationUsers(ctx context.Context, orgID string) ([]models.User, error) {
	if orgID == "" {
		return nil, ErrOrganizationIDRequired
	}
	body, err := c.sendRequest(ctx, http.MethodGet, orgPath(orgID)+"/users", nil)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to get organization users")
	}
	return decodeResponse[[]models.User](body)
}

// UpdateOrganizationUser replaces one roster entry's editable fields.
func (c *Client) UpdateOrganizationUser(ctx context.Context, orgID, email string, user models.User) error {
	if orgID == "" {
		return ErrOrganizationIDRequired
	}
	if email == "" {
		return ErrEmailRequired
	}
	endpoint := orgPath(orgID) + "/users/" + url.PathEscape(models.NormalizeEmail(email))
	_, err := c.sendRequest(ctx, http.MethodPut, endpoint, user)
	if err != nil {
		return eris.Wrap(err, "Failed to update organization user")
	}
	return nil
}

// RemoveOrganizationUser removes one person from the organization.
func (c *Client) RemoveOrganizationUser(ctx context.Context, orgID, email string) error {
	if orgID == "" {
		return ErrOrganizationIDRequired
	}
	if email == "" {
		return ErrEmailRequired
	}
	endpoint := orgPath(orgID) + "/users/" + url.PathEscape(models.NormalizeEmail(email))
	_, err := c.sendRequest(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return eris.Wrap(err, "Failed to remove organization user")
	}
	return nil
}

// InviteUsers sends invitations. The endpoint takes a list so several invites
// can ride one request.
func (c *Client) InviteUsers(ctx context.Context, orgID string, invites []models.Invite) error {
	if orgID == "" {
		return ErrOrganizationIDRequired
	}
	if len(invites) == 0 {
		return eris.New("at least one invite is required")
	}
	_, err := c.sendRequest(ctx, http.MethodPost, orgPath(orgID)+"/invite", invites)
	if err != nil {
		return eris.Wrap(err, "Failed to send invites")
	}
	return nil
}

// SetInability adds or removes one unavailability date (YYYY-MM-DD) for the
// given person. Action is InabilityAdd or InabilityRemove.
func (c *Client) SetInability(ctx context.Context, orgID, email, date, action string) error {
	if orgID == "" {
		return ErrOrganizationIDRequired
	}
	if email == "" {
		return ErrEmailRequired
	}
	if action != InabilityAdd && action != InabilityRemove {
		return eris.Errorf("invalid inability action %q", action)
	}
	payload := map[string]string{
		"email":  models.NormalizeEmail(email),
		"date":   date,
		"action": action,
	}
	_, err := c.sendRequest(ctx, http.MethodPatch, orgPath(orgID)+"/users/inability", payload)
	if err != nil {
		return eris.Wrapf(err, "Failed to %s unavailability date", action)
	}
	return nil
}

// GetTeams fetches the organization's teams.
func (c *Client) GetTeams(ctx context.Context, orgID string) ([]models.Team, error) {
	if orgID == "" {
		return nil, ErrOrganizationIDRequired
	}
	body, err := c.sendRequest(ctx, http.MethodGet, orgPath(orgID)+"/teams", nil)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to get teams")
	}
	return decodeResponse[[]models.Team](body)
}

// CreateTeam creates a team.
func (c *Client) CreateTeam(ctx context.Context, orgID string, team models.Team) error {
	if orgID == "" {
		return ErrOrganizationIDRequired
	}
	if team.Name == "" {
		return ErrTeamNameRequired
	}
	_, err := c.sendRequest(ctx, http.MethodPost, orgPath(orgID)+"/teams", team)
	if err != nil {
		return eris.Wrapf(err, "Failed to create team %q", team.Name)
	}
	return nil
}

// UpdateTeam replaces the named team.
func (c *Client) UpdateTeam(ctx context.Context, orgID, teamName string, team models.Team) error {
	if orgID == "" {
		return ErrOrganizationIDRequired
	}
	if teamName == "" {
		return ErrTeamNameRequired
	}
	endpoint := orgPath(orgID) + "/teams/" + url.PathEscape(teamName)
	_, err := c.sendRequest(ctx, http.MethodPut, endpoint, team)
	if err != nil {
		return eris.Wrapf(err, "Failed to update team %q", teamName)
	}
	return nil
}

// DeleteTeam deletes the named team.
func (c *Client) DeleteTeam(ctx context.Context, orgID, teamName string) error {
	if orgID == "" {
		return ErrOrganizationIDRequired
	}
	if teamName == "" {
		return ErrTeamNameRequired
	}
	endpoint := orgPath(orgID) + "/teams/" + url.PathEscape(teamName)
	_, err := c.sendRequest(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return eris.Wrapf(err, "Failed to delete team %q", teamName)
	}
	return nil
}

// GetServices fetches all services of the organization, past and future.
func (c *Client) GetServices(ctx context.Context, orgID string) ([]models.Service, error) {
	if orgID == "" {
		return nil, ErrOrganizationIDRequired
	}
	body, err := c.sendRequest(ctx, http.MethodGet, orgPath(orgID)+"/services", nil)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to get services")
	}
	return decodeResponse[[]models.Service](body)
}

// CreateService creates one service. Times are normalized to UTC on the wire.
func (c *Client) CreateService(ctx context.Context, orgID string, service models.Service) error {
	if orgID == "" {
		return ErrOrganizationIDRequired
	}
	if service.Name == "" {
		return eris.New("service name is required")
	}
	service.StartDatetime = service.StartDatetime.UTC()
	service.EndDatetime = service.EndDatetime.UTC()
	_, err := c.sendRequest(ctx, http.MethodPost, orgPath(orgID)+"/services", service)
	if err != nil {
		return eris.Wrapf(err, "Failed to create service %q", service.Name)
	}
	return nil
}
