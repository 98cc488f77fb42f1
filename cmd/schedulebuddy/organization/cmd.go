package organization

import (
	"github.com/spf13/cobra"
)

// NewCmd wires the organization command tree to the handler.
func NewCmd(h *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "organization",
		Aliases: []string{"org"},
		Short:   "Manage your organizations",
		GroupID: "core",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the organizations you belong to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.List(cmd.Context())
		},
	}

	var flags SwitchFlags
	switchCmd := &cobra.Command{
		Use:   "switch",
		Short: "Select the active organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Switch(cmd.Context(), flags)
		},
	}
	switchCmd.Flags().StringVar(&flags.ID, "id", "", "Organization id to switch to")

	cmd.AddCommand(listCmd, switchCmd)
	return cmd
}
