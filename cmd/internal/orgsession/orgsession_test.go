package orgsession_test

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/clients/api"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/orgsession"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/config"
)

func fixtures() (models.Organization, []models.User, []models.Team) {
	org := models.Organization{
		ID:    "org-1",
		Name:  "Grace Chapel",
		Owner: models.Owner{Email: "owner@example.com"},
	}
	users := []models.User{
		{Email: "owner@example.com", FirstName: "Olivia"},
		{
			Email: "member@example.com",
			TeamPermissions: []models.TeamPermission{
				{TeamName: "Worship", Permissions: []string{"Scheduler"}},
			},
		},
	}
	teams := []models.Team{
		{Name: "Worship", Positions: []models.Position{{Name: "Vocals"}, {Name: "Keys"}}},
		{Name: "Tech", Positions: []models.Position{{Name: "Sound"}, {Name: "Vocals"}}},
	}
	return org, users, teams
}

func TestLoadDerivesSession(t *testing.T) {
	org, users, teams := fixtures()
	client := &api.MockClient{}
	client.On("GetOrganization", mock.Anything, "org-1").Return(org, nil)
	client.On("GetOrganizationUsers", mock.Anything, "org-1").Return(users, nil)
	client.On("GetTeams", mock.Anything, "org-1").Return(teams, nil)

	session, err := orgsession.Load(context.Background(), client, "org-1", "  OWNER@example.com ")
	require.NoError(t, err)

	assert.Equal(t, "org-1", session.OrgID)
	assert.Equal(t, "owner@example.com", session.Email)
	require.NotNil(t, session.CurrentUser)
	assert.Equal(t, "Olivia", session.CurrentUser.FirstName)
	assert.True(t, session.Access.IsOwner)
	assert.Equal(t, []string{"Worship", "Tech"}, session.TeamNames())
	assert.Equal(t, []string{"Vocals", "Keys", "Sound"}, session.PositionNames())

	member := session.FindUser("MEMBER@example.com")
	require.NotNil(t, member)
	assert.Nil(t, session.FindUser("ghost@example.com"))

	client.AssertExpectations(t)
}

func TestLoadFailsWhenAnyFetchFails(t *testing.T) {
	org, users, _ := fixtures()
	client := &api.MockClient{}
	client.On("GetOrganization", mock.Anything, "org-1").Return(org, nil)
	client.On("GetOrganizationUsers", mock.Anything, "org-1").Return(users, nil)
	client.On("GetTeams", mock.Anything, "org-1").Return([]models.Team(nil), eris.New("boom"))

	_, err := orgsession.Load(context.Background(), client, "org-1", "owner@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load organization")
}

func TestLoadRequiresIdentityAndOrg(t *testing.T) {
	client := &api.MockClient{}

	_, err := orgsession.Load(context.Background(), client, "", "owner@example.com")
	assert.ErrorIs(t, err, orgsession.ErrNoOrganizationSelected)

	_, err = orgsession.Load(context.Background(), client, "org-1", "   ")
	assert.ErrorIs(t, err, orgsession.ErrNotLoggedIn)
}

func TestResolveUsesStoredState(t *testing.T) {
	client := &api.MockClient{}

	_, err := orgsession.Resolve(context.Background(), client, &config.Config{})
	assert.ErrorIs(t, err, orgsession.ErrNotLoggedIn)

	_, err = orgsession.Resolve(context.Background(), client, &config.Config{UserEmail: "a@b.c"})
	assert.ErrorIs(t, err, orgsession.ErrNoOrganizationSelected)

	org, users, teams := fixtures()
	client.On("GetOrganization", mock.Anything, "org-1").Return(org, nil)
	client.On("GetOrganizationUsers", mock.Anything, "org-1").Return(users, nil)
	client.On("GetTeams", mock.Anything, "org-1").Return(teams, nil)

	session, err := orgsession.Resolve(context.Background(), client, &config.Config{
		UserEmail:      "member@example.com",
		OrganizationID: "org-1",
	})
	require.NoError(t, err)
	assert.True(t, session.Access.IsScheduler)
	assert.False(t, session.Access.CanViewPeople())
}
