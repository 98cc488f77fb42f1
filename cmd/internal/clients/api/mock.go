package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
)

// MockClient is a testify mock of ClientInterface.
type MockClient struct {
	mock.Mock
}

var _ ClientInterface = (*MockClient)(nil)

func (m *MockClient) RequestOTP(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockClient) VerifyOTP(ctx context.Context, email, code string) (models.OTPVerification, error) {
	args := m.Called(ctx, email, code)
	return args.Get(0).(models.OTPVerification), args.Error(1)
}

func (m *MockClient) GetUserProfile(ctx context.Context, email string) (models.Profile, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *MockClient) UpdateUserProfile(ctx context.Context, email string, profile models.Profile) error {
	args := m.Called(ctx, email, profile)
	return args.Error(0)
}

func (m *MockClient) GetOrganization(ctx context.Context, orgID string) (models.Organization, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(models.Organization), args.Error(1)
}

func (m *MockClient) TransferOwnership(ctx context.Context, orgID string, newOwner models.Owner) error {
	args := m.Called(ctx, orgID, newOwner)
	return args.Error(0)
}

func (m *MockClient) GetOrganizationUsers(ctx context.Context, orgID string) ([]models.User, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockClient) UpdateOrganizationUser(ctx context.Context, orgID, email string, user models.User) error {
	args := m.Called(ctx, orgID, email, user)
	return args.Error(0)
}

func (m *MockClient) RemoveOrganizationUser(ctx context.Context, orgID, email string) error {
	args := m.Called(ctx, orgID, email)
	return args.Error(0)
}

func (m *MockClient) InviteUsers(ctx context.Context, orgID string, invites []models.Invite) error {
	args := m.Called(ctx, orgID, invites)
	return args.Error(0)
}

func (m *MockClient) SetInability(ctx context.Context, orgID, email, date, action string) error {
	args := m.Called(ctx, orgID, email, date, action)
	return args.Error(0)
}

func (m *MockClient) GetTeams(ctx context.Context, orgID string) ([]models.Team, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockClient) CreateTeam(ctx context.Context, orgID string, team models.Team) error {
	args := m.Called(ctx, orgID, team)
	return args.Error(0)
}

func (m *MockClient) UpdateTeam(ctx context.Context, orgID, teamName string, team models.Team) error {
	args := m.Called(ctx, orgID, teamName, team)
	return args.Error(0)
}

func (m *MockClient) DeleteTeam(ctx context.Context, orgID, teamName string) error {
	args := m.Called(ctx, orgID, teamName)
	return args.Error(0)
}

func (m *MockClient) GetServices(ctx context.Context, orgID string) ([]models.Service, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockClient) CreateService(ctx context.Context, orgID string, service models.Service) error {
	args := m.Called(ctx, orgID, service)
	return args.Error(0)
}
