package people

import (
	"github.com/spf13/cobra"
)

// NewCmd wires the people command tree to the handler.
func NewCmd(h *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Short:   "Manage the organization's roster",
		GroupID: "core",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List everyone in the organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.List(cmd.Context())
		},
	}

	var inviteFlags InviteFlags
	inviteCmd := &cobra.Command{
		Use:   "invite",
		Short: "Invite someone to the organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Invite(cmd.Context(), inviteFlags)
		},
	}
	inviteCmd.Flags().StringVar(&inviteFlags.Email, "email", "", "Email address to invite")
	inviteCmd.Flags().StringVar(&inviteFlags.FirstName, "first-name", "", "First name")
	inviteCmd.Flags().StringVar(&inviteFlags.LastName, "last-name", "", "Last name")

	var editFlags EditFlags
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Change someone's roles and positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Edit(cmd.Context(), editFlags)
		},
	}
	editCmd.Flags().StringVar(&editFlags.Email, "email", "", "Member to edit")
	editCmd.Flags().StringVar(&editFlags.Phone, "phone", "", "New phone number")
	editCmd.Flags().StringVar(&editFlags.OrgAdmin, "org-admin", "", "Set the org admin flag (true/false)")
	editCmd.Flags().StringSliceVar(&editFlags.Positions, "position", nil, "Replacement position list (repeatable)")
	editCmd.Flags().StringSliceVar(&editFlags.Roles, "role", nil,
		"Role grant team=permission, empty permission clears it (repeatable)")

	var removeFlags RemoveFlags
	removeCmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove someone from the organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Remove(cmd.Context(), removeFlags)
		},
	}
	removeCmd.Flags().StringVar(&removeFlags.Email, "email", "", "Member to remove")
	removeCmd.Flags().BoolVar(&removeFlags.Yes, "yes", false, "Skip the confirmation prompt")

	var transferFlags TransferFlags
	transferCmd := &cobra.Command{
		Use:   "transfer-ownership",
		Short: "Hand the organization to another member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.TransferOwnership(cmd.Context(), transferFlags)
		},
	}
	transferCmd.Flags().StringVar(&transferFlags.Email, "email", "", "Member to make owner")
	transferCmd.Flags().BoolVar(&transferFlags.Yes, "yes", false, "Skip the confirmation prompt")

	cmd.AddCommand(listCmd, inviteCmd, editCmd, removeCmd, transferCmd)
	return cmd
}
