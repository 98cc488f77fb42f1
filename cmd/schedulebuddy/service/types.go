package service

import (
	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/clients/api"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/config"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/input"
)

var ErrPermissionDenied = eris.New("only the organization owner or an org admin can create services")

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

// CreateFlags are the non-interactive inputs to the create command. Anything
// left empty is prompted for.
type CreateFlags struct {
	Name     string
	Location string
	Start    string // "2006-01-02 15:04", local time
	End      string
	Teams    []string

	Recurring     bool
	Weekdays      []string
	IntervalWeeks int
	Weeks         int
}
