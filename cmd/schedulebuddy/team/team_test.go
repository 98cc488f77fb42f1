package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/clients/api"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/config"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/input"
)

type TeamTestSuite struct {
	suite.Suite

	handler    *Handler
	mockAPI    *api.MockClient
	mockConfig *config.MockService
	mockInput  *input.MockService
}

func (s *TeamTestSuite) SetupTest() {
	s.mockAPI = &api.MockClient{}
	s.mockConfig = &config.MockService{}
	s.mockInput = &input.MockService{}
	s.mockConfig.On("GetConfig").Return(&config.Config{
		UserEmail:      "user@example.com",
		OrganizationID: "org-1",
	}).Maybe()
	s.handler = NewHandler(s.mockInput, s.mockAPI, s.mockConfig)
}

// stubSession loads a session for user@example.com with the given roster entry.
func (s *TeamTestSuite) stubSession(user models.User) {
	user.Email = "user@example.com"
	s.mockAPI.On("GetOrganization", mock.Anything, "org-1").
		Return(models.Organization{
			ID:    "org-1",
			Name:  "Grace Chapel",
			Owner: models.Owner{Email: "owner@example.com"},
		}, nil)
	s.mockAPI.On("GetOrganizationUsers", mock.Anything, "org-1").
		Return([]models.User{user}, nil)
	s.mockAPI.On("GetTeams", mock.Anything, "org-1").
		Return([]models.Team{
			{
				Name:                "Worship",
				Description:         "Sunday band",
				AssignWithOtherTeam: true,
				Positions:           []models.Position{{Name: "Vocals", Quantity: 2}},
			},
			{Name: "Tech", Positions: []models.Position{{Name: "Sound", Quantity: 1}}},
		}, nil)
}

func orgAdmin() models.User {
	return models.User{OrgAdmin: true}
}

func teamAdminOf(team string) models.User {
	return models.User{
		TeamPermissions: []models.TeamPermission{
			{TeamName: team, Permissions: []string{"Admin"}},
		},
	}
}

func (s *TeamTestSuite) TestListNeedsAnyTeamRole() {
	s.stubSession(models.User{})

	err := s.handler.List(context.Background())

	s.Require().ErrorIs(err, ErrNoTeamAccess)
}

func (s *TeamTestSuite) TestListWithSchedulerRole() {
	s.stubSession(models.User{
		TeamPermissions: []models.TeamPermission{
			{TeamName: "Worship", Permissions: []string{"Scheduler"}},
		},
	})

	err := s.handler.List(context.Background())

	s.Require().NoError(err)
}

func (s *TeamTestSuite) TestCreateRejectsDuplicateNameCaseInsensitive() {
	s.stubSession(orgAdmin())

	err := s.handler.Create(context.Background(), CreateFlags{Name: "  WORSHIP "})

	s.Require().Error(err)
	s.Contains(err.Error(), "already exists")
	s.mockAPI.AssertNotCalled(s.T(), "CreateTeam", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TeamTestSuite) TestCreateWithPositionSpecs() {
	s.stubSession(orgAdmin())
	s.mockAPI.On("CreateTeam", mock.Anything, "org-1", mock.MatchedBy(func(team models.Team) bool {
		return team.Name == "Ushers" &&
			!team.AskForAvailability &&
			len(team.Positions) == 2 &&
			team.Positions[0] == models.Position{Name: "Greeter", Quantity: 2} &&
			team.Positions[1] == models.Position{Name: "Door", Quantity: 1, AssignWithOtherPosition: true}
	})).Return(nil)

	err := s.handler.Create(context.Background(), CreateFlags{
		Name:      "Ushers",
		Positions: []string{"Greeter:2", "Door:1:shared"},
	})

	s.Require().NoError(err)
	s.mockAPI.AssertExpectations(s.T())
}

func (s *TeamTestSuite) TestCreateCarriesDescriptionAndSharedAssignment() {
	s.stubSession(orgAdmin())
	s.mockAPI.On("CreateTeam", mock.Anything, "org-1", mock.MatchedBy(func(team models.Team) bool {
		return team.Name == "Ushers" &&
			team.Description == "Front door crew" &&
			team.AssignWithOtherTeam
	})).Return(nil)

	err := s.handler.Create(context.Background(), CreateFlags{
		Name:        "Ushers",
		Description: "Front door crew",
		Shared:      true,
		Positions:   []string{"Greeter"},
	})

	s.Require().NoError(err)
	s.mockAPI.AssertExpectations(s.T())
}

func (s *TeamTestSuite) TestCreateDeniedForTeamAdmin() {
	// Team Admin can edit their team but not create new ones.
	s.stubSession(teamAdminOf("Worship"))

	err := s.handler.Create(context.Background(), CreateFlags{Name: "Ushers"})

	s.Require().ErrorIs(err, ErrPermissionDenied)
}

func (s *TeamTestSuite) TestEditAllowedForTeamAdmin() {
	s.stubSession(teamAdminOf("Worship"))
	s.mockAPI.On("UpdateTeam", mock.Anything, "org-1", "Worship", mock.MatchedBy(func(team models.Team) bool {
		// A rename keeps the description and assignment mode intact.
		return team.Name == "Praise" && len(team.Positions) == 1 &&
			team.Description == "Sunday band" && team.AssignWithOtherTeam
	})).Return(nil)

	err := s.handler.Edit(context.Background(), EditFlags{Name: "worship", NewName: "Praise"})

	s.Require().NoError(err)
	s.mockAPI.AssertExpectations(s.T())
}

func (s *TeamTestSuite) TestEditDeniedForOtherTeam() {
	s.stubSession(teamAdminOf("Worship"))

	err := s.handler.Edit(context.Background(), EditFlags{Name: "Tech", NewName: "AV"})

	s.Require().ErrorIs(err, ErrPermissionDenied)
	s.mockAPI.AssertNotCalled(s.T(), "UpdateTeam",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TeamTestSuite) TestEditUnknownTeam() {
	s.stubSession(orgAdmin())

	err := s.handler.Edit(context.Background(), EditFlags{Name: "Nope", NewName: "Still Nope"})

	s.Require().Error(err)
	s.Contains(err.Error(), `no team named "Nope"`)
}

func (s *TeamTestSuite) TestDeleteConfirms() {
	s.stubSession(orgAdmin())
	s.mockInput.On("Confirm", mock.Anything, mock.Anything, "n").Return(false, nil)

	err := s.handler.Delete(context.Background(), DeleteFlags{Name: "Tech"})

	s.Require().NoError(err)
	s.mockAPI.AssertNotCalled(s.T(), "DeleteTeam", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TeamTestSuite) TestDeleteWithYes() {
	s.stubSession(orgAdmin())
	s.mockAPI.On("DeleteTeam", mock.Anything, "org-1", "Tech").Return(nil)

	err := s.handler.Delete(context.Background(), DeleteFlags{Name: "tech", Yes: true})

	s.Require().NoError(err)
	s.mockAPI.AssertExpectations(s.T())
}

func TestTeamTestSuite(t *testing.T) {
	suite.Run(t, new(TeamTestSuite))
}
