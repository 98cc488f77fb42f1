package people

import (
	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/clients/api"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/config"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/input"
)

var (
	ErrPermissionDenied = eris.New("only the organization owner or an org admin can manage people")
	ErrNoPeopleAccess   = eris.New("your roles don't include roster access")
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

// InviteFlags are the non-interactive inputs to the invite command.
type InviteFlags struct {
	Email     string
	FirstName string
	LastName  string
}

// EditFlags are the non-interactive inputs to the edit command. Roles take
// the form "team=permission", e.g. --role "Worship=Scheduler"; an empty
// permission clears the grant. Positions replace the person's position list.
type EditFlags struct {
	Email     string
	Phone     string // empty leaves the stored number unchanged
	OrgAdmin  string // "true", "false", or empty to leave unchanged
	Positions []string
	Roles     []string
}

// RemoveFlags are the non-interactive inputs to the remove command.
type RemoveFlags struct {
	Email string
	Yes   bool
}

// TransferFlags are the non-interactive inputs to the transfer-ownership command.
type TransferFlags struct {
	Email string
	Yes   bool
}
