package schedule

import (
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/clients/api"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/config"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/input"
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

// ExportFlags are the non-interactive inputs to the export command.
type ExportFlags struct {
	Output string
}
