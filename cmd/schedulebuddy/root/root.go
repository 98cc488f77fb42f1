package root

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/clients/api"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/config"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/services/input"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/schedulebuddy/organization"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/schedulebuddy/people"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/schedulebuddy/schedule"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/schedulebuddy/service"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/schedulebuddy/team"
	"github.com/worshipbuddy/schedulebuddy-cli/common/logger"
	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
	"github.com/worshipbuddy/schedulebuddy-cli/tea/style"
)

// AppVersion is injected at build time via ldflags.
var AppVersion string

const envVarName = "SCHEDULEBUDDY_ENV"

var baseURLByEnv = map[string]string{
	config.EnvLocal: "http://localhost:8000",
	config.EnvDev:   "https://api-dev.worshipbuddy.org",
	config.EnvProd:  "https://api.worshipbuddy.org",
}

func init() {
	// Enable case-insensitive command names
	cobra.EnableCaseInsensitive = true
}

// Execute runs the CLI. Errors are printed once here, not by cobra.
func Execute() {
	rootCmd, err := buildRootCmd()
	if err != nil {
		printer.Errorln(err.Error())
		logger.Errors(err)
		logger.PrintLogs()
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		printer.Errorln(err.Error())
		logger.Errors(err)
		logger.PrintLogs()
		os.Exit(1)
	}

	logger.PrintLogs()
}

func buildRootCmd() (*cobra.Command, error) {
	env := os.Getenv(envVarName)
	if _, ok := baseURLByEnv[env]; !ok {
		env = config.EnvProd
	}

	configService, err := config.NewService(env)
	if err != nil {
		return nil, err
	}
	apiClient := api.NewClient(baseURLByEnv[env])
	inputService := input.NewService()

	// Demo identities never survive a restart.
	if configService.GetConfig().IsDemoUser {
		if err := configService.Clear(); err != nil {
			logger.Errors(err)
		}
	}

	handler := NewHandler(inputService, apiClient, configService)

	rootCmd := &cobra.Command{
		Use:   "schedulebuddy",
		Short: "Schedule services, teams, and people for your organization",
		Long: style.CLIHeader("ScheduleBuddy CLI",
			"Schedule services, teams, and people for your organization"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.SetDebugMode(cmd)
		},
	}
	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "ScheduleBuddy Commands:"})

	rootCmd.AddCommand(
		loginCmd(handler),
		logoutCmd(handler),
		deleteAccountCmd(handler),
		versionCmd(),
		organization.NewCmd(organization.NewHandler(inputService, apiClient, configService)),
		service.NewCmd(service.NewHandler(inputService, apiClient, configService)),
		team.NewCmd(team.NewHandler(inputService, apiClient, configService)),
		people.NewCmd(people.NewHandler(inputService, apiClient, configService)),
		schedule.NewCmd(schedule.NewHandler(inputService, apiClient, configService)),
	)

	logger.AddLogFlag(rootCmd)
	return rootCmd, nil
}

func loginCmd(h *Handler) *cobra.Command {
	return &cobra.Command{
		Use:     "login",
		Short:   "Sign in with a one-time code sent to your email",
		GroupID: "core",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Login(cmd.Context())
		},
	}
}

func logoutCmd(h *Handler) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Sign out of this device",
		GroupID: "core",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Logout(cmd.Context())
		},
	}
}

func deleteAccountCmd(h *Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-account",
		Short: "Remove your ScheduleBuddy data from this device",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.DeleteAccount(cmd.Context())
		},
	}
}
