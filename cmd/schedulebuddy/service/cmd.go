package service

import (
	"github.com/spf13/cobra"
)

// NewCmd wires the service command tree to the handler.
func NewCmd(h *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "service",
		Short:   "View and create services",
		GroupID: "core",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming services",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.List(cmd.Context())
		},
	}

	var flags CreateFlags
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a service, optionally repeating weekly",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Create(cmd.Context(), flags)
		},
	}
	createCmd.Flags().StringVar(&flags.Name, "name", "", "Service name")
	createCmd.Flags().StringVar(&flags.Location, "location", "", "Service location (defaults to the organization address)")
	createCmd.Flags().StringVar(&flags.Start, "start", "", "Start datetime, YYYY-MM-DD HH:MM local time")
	createCmd.Flags().StringVar(&flags.End, "end", "", "End datetime, YYYY-MM-DD HH:MM local time")
	createCmd.Flags().StringSliceVar(&flags.Teams, "team", nil, "Team to schedule (repeatable)")
	createCmd.Flags().BoolVar(&flags.Recurring, "recurring", false, "Repeat the service weekly")
	createCmd.Flags().StringSliceVar(&flags.Weekdays, "on", nil, "Weekdays the service repeats on, e.g. --on sun,wed")
	createCmd.Flags().IntVar(&flags.IntervalWeeks, "interval", 0, "Repeat every N weeks")
	createCmd.Flags().IntVar(&flags.Weeks, "weeks", 0, "Number of weeks to schedule")

	cmd.AddCommand(listCmd, createCmd)
	return cmd
}
