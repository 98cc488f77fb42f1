package api

import (
	"context"
	"net/http"
	"time"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
)

// Interface guard.
var _ ClientInterface = (*Client)(nil)

type Client struct {
	BaseURL    string
	HTTPClient HTTPClientInterface
}

// Inability actions accepted by SetInability.
const (
	InabilityAdd    = "add"
	InabilityRemove = "remove"
)

type ClientInterface interface {
	// Auth + profile.
	RequestOTP(ctx context.Context, email string) (string, error)
	VerifyOTP(ctx context.Context, email, code string) (models.OTPVerification, error)
	GetUserProfile(ctx context.Context, email string) (models.Profile, error)
	UpdateUserProfile(ctx context.Context, email string, profile models.Profile) error

	// Organizations.
	GetOrganization(ctx context.Context, orgID string) (models.Organization, error)
	TransferOwnership(ctx context.Context, orgID string, newOwner models.Owner) error

	// Roster.
	GetOrganizationUsers(ctx context.Context, orgID string) ([]models.User, error)
	UpdateOrganizationUser(ctx context.Context, orgID, email string, user models.User) error
	RemoveOrganizationUser(ctx context.Context, orgID, email string) error
	InviteUsers(ctx context.Context, orgID string, invites []models.Invite) error
	SetInability(ctx context.Context, orgID, email, date, action string) error

	// Teams.
	GetTeams(ctx context.Context, orgID string) ([]models.Team, error)
	CreateTeam(ctx context.Context, orgID string, team models.Team) error
	UpdateTeam(ctx context.Context, orgID, teamName string, team models.Team) error
	DeleteTeam(ctx context.Context, orgID, teamName string) error

	// Services.
	GetServices(ctx context.Context, orgID string) ([]models.Service, error)
	CreateService(ctx context.Context, orgID string, service models.Service) error
}

// HTTPClientInterface wraps the stdlib client so tests can stub transport.
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestConfig holds the retry configuration for a single request.
type RequestConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	Timeout    time.Duration
}

// DefaultRequestConfig returns the standard request configuration.
func DefaultRequestConfig() RequestConfig {
	return RequestConfig{
		MaxRetries: 5,
		BaseDelay:  100 * time.Millisecond,
		Timeout:    30 * time.Second,
	}
}
