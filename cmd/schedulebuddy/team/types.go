package team

import (
	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/clients/api"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/config"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/input"
)

var (
	ErrPermissionDenied = eris.New("you don't have permission to manage this team")
	ErrNoTeamAccess     = eris.New("your roles don't include team access")
)

type Handler struct {
	inputService  input.ServiceInterface
	apiClient     api.ClientInterface
	configService config.ServiceInterface
}

func NewHandler(
	inputService input.ServiceInterface,
	apiClient api.ClientInterface,
	configService config.ServiceInterface,
) *Handler {
	return &Handler{
		inputService:  inputService,
		apiClient:     apiClient,
		configService: configService,
	}
}

// CreateFlags are the non-interactive inputs to the create command.
// Positions take the form "name[:quantity[:shared|solo]]", where shared marks
// a position that may be assigned together with other positions.
type CreateFlags struct {
	Name        string
	Description string
	Shared      bool // the team may be assigned together with other teams
	Positions   []string
}

// EditFlags are the non-interactive inputs to the edit command.
type EditFlags struct {
	Name        string
	NewName     string
	Description string
	Shared      string // "true", "false", or empty to leave unchanged
	Positions   []string
}

// DeleteFlags are the non-interactive inputs to the delete command.
type DeleteFlags struct {
	Name string
	Yes  bool
}
