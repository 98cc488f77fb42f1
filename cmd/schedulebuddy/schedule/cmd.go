package schedule

import (
	"github.com/spf13/cobra"
)

// NewCmd wires the schedule command tree to the handler.
func NewCmd(h *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Your assignments and availability",
		GroupID: "core",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the services you are scheduled for",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.List(cmd.Context())
		},
	}

	availabilityCmd := &cobra.Command{
		Use:   "availability",
		Short: "Manage the dates you cannot serve",
	}
	availabilityCmd.AddCommand(
		&cobra.Command{
			Use:   "add [date]",
			Short: "Mark a date (YYYY-MM-DD) as unavailable",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return h.AddUnavailability(cmd.Context(), firstArg(args))
			},
		},
		&cobra.Command{
			Use:   "remove [date]",
			Short: "Clear an unavailable date",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return h.RemoveUnavailability(cmd.Context(), firstArg(args))
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show your unavailable dates",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return h.ShowUnavailability(cmd.Context())
			},
		},
	)

	var exportFlags ExportFlags
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export your upcoming assignments as an iCalendar file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Export(cmd.Context(), exportFlags)
		},
	}
	exportCmd.Flags().StringVarP(&exportFlags.Output, "output", "o", "", "Output file (default schedulebuddy.ics)")

	cmd.AddCommand(listCmd, availabilityCmd, exportCmd)
	return cmd
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
