package team

import (
	"github.com/spf13/cobra"
)

// NewCmd wires the team command tree to the handler.
func NewCmd(h *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "team",
		Short:   "Manage the organization's teams",
		GroupID: "core",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List teams and their positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.List(cmd.Context())
		},
	}

	var createFlags CreateFlags
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Create(cmd.Context(), createFlags)
		},
	}
	createCmd.Flags().StringVar(&createFlags.Name, "name", "", "Team name")
	createCmd.Flags().StringVar(&createFlags.Description, "description", "", "Team description")
	createCmd.Flags().BoolVar(&createFlags.Shared, "shared", false,
		"Allow assignment together with other teams")
	createCmd.Flags().StringSliceVar(&createFlags.Positions, "position", nil,
		"Position spec name[:quantity[:shared|solo]] (repeatable)")

	var editFlags EditFlags
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Rename a team or replace its positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Edit(cmd.Context(), editFlags)
		},
	}
	editCmd.Flags().StringVar(&editFlags.Name, "name", "", "Team to edit")
	editCmd.Flags().StringVar(&editFlags.NewName, "new-name", "", "New team name")
	editCmd.Flags().StringVar(&editFlags.Description, "description", "", "New team description")
	editCmd.Flags().StringVar(&editFlags.Shared, "shared", "",
		"Allow assignment together with other teams (true/false)")
	editCmd.Flags().StringSliceVar(&editFlags.Positions, "position", nil,
		"Replacement position spec (repeatable)")

	var deleteFlags DeleteFlags
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a team",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Delete(cmd.Context(), deleteFlags)
		},
	}
	deleteCmd.Flags().StringVar(&deleteFlags.Name, "name", "", "Team to delete")
	deleteCmd.Flags().BoolVar(&deleteFlags.Yes, "yes", false, "Skip the confirmation prompt")

	cmd.AddCommand(listCmd, createCmd, editCmd, deleteCmd)
	return cmd
}
