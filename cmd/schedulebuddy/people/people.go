package people

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/access"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/orgsession"
	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// List prints the organization roster. A Scheduler grant alone does not open
// the roster; that needs owner, org admin, or a team Admin grant.
func (h *Handler) List(ctx context.Context) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}
	if !session.Access.CanViewPeople() {
		return ErrNoPeopleAccess
	}

	printer.Headerf("  People: %s  \n", session.Org.Name)
	if len(session.Users) == 0 {
		printer.Infoln("Nobody here yet. Invite people with 'schedulebuddy people invite'.")
		return nil
	}

	ownerEmail := models.NormalizeEmail(session.Org.Owner.Email)
	for i := range session.Users {
		person := &session.Users[i]
		tag := ""
		switch {
		case models.NormalizeEmail(person.Email) == ownerEmail:
			tag = "  [owner]"
		case person.OrgAdmin:
			tag = "  [org admin]"
		}
		printer.Infoln(displayName(person) + tag)
		printer.Mutedln("    " + models.NormalizeEmail(person.Email))
		if len(person.Positions) > 0 {
			printer.Mutedln("    positions: " + strings.Join(person.Positions, ", "))
		}
		for _, tp := range person.TeamPermissions {
			if len(tp.Permissions) > 0 {
				printer.Mutedln("    " + tp.TeamName + ": " + strings.Join(tp.Permissions, ", "))
			}
		}
	}
	return nil
}

// Invite emails an invitation and adds the person to the organization.
func (h *Handler) Invite(ctx context.Context, flags InviteFlags) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}
	if !session.Access.CanManageOrg() {
		return ErrPermissionDenied
	}

	email, err := h.promptEmail(ctx, flags.Email)
	if err != nil {
		return err
	}
	if session.FindUser(email) != nil {
		return eris.Errorf("%s is already a member of %s", email, session.Org.Name)
	}

	firstName, err := h.promptRequired(ctx, "First name", flags.FirstName)
	if err != nil {
		return err
	}
	lastName, err := h.promptRequired(ctx, "Last name", flags.LastName)
	if err != nil {
		return err
	}

	invites := []models.Invite{{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}}
	if err := h.apiClient.InviteUsers(ctx, session.OrgID, invites); err != nil {
		return err
	}

	printer.Successf("Invited %s %s <%s> to %s\n", firstName, lastName, email, session.Org.Name)
	return nil
}

// Edit updates a roster entry's org-admin flag, positions, and per-team
// roles.
func (h *Handler) Edit(ctx context.Context, flags EditFlags) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}
	if !session.Access.CanManageOrg() {
		return ErrPermissionDenied
	}

	email, err := h.promptEmail(ctx, flags.Email)
	if err != nil {
		return err
	}
	person := session.FindUser(email)
	if person == nil {
		return eris.Errorf("%s is not a member of %s", email, session.Org.Name)
	}
	updated := *person

	if phone := strings.TrimSpace(flags.Phone); phone != "" {
		updated.Phone = phone
	}

	switch strings.ToLower(strings.TrimSpace(flags.OrgAdmin)) {
	case "":
	case "true", "yes":
		updated.OrgAdmin = true
	case "false", "no":
		updated.OrgAdmin = false
	default:
		return eris.Errorf("invalid --org-admin value %q, expected true or false", flags.OrgAdmin)
	}

	if len(flags.Positions) > 0 {
		positions, err := validatePositions(session, flags.Positions)
		if err != nil {
			return err
		}
		updated.Positions = positions
	}

	if len(flags.Roles) > 0 {
		permissions, err := applyRoleSpecs(session, updated.TeamPermissions, flags.Roles)
		if err != nil {
			return err
		}
		updated.TeamPermissions = permissions
	}

	if err := h.apiClient.UpdateOrganizationUser(ctx, session.OrgID, email, updated); err != nil {
		return err
	}

	printer.Successf("Updated %s\n", displayName(&updated))
	return nil
}

// Remove takes a person off the organization roster.
func (h *Handler) Remove(ctx context.Context, flags RemoveFlags) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}
	if !session.Access.CanManageOrg() {
		return ErrPermissionDenied
	}

	email, err := h.promptEmail(ctx, flags.Email)
	if err != nil {
		return err
	}
	person := session.FindUser(email)
	if person == nil {
		return eris.Errorf("%s is not a member of %s", email, session.Org.Name)
	}
	if models.NormalizeEmail(session.Org.Owner.Email) == email {
		return eris.New("the owner cannot be removed, transfer ownership first")
	}

	if !flags.Yes {
		confirmed, err := h.inputService.Confirm(ctx,
			fmt.Sprintf("Remove %s from %s? (y/n)", displayName(person), session.Org.Name), "n")
		if err != nil {
			return err
		}
		if !confirmed {
			printer.Infoln("Canceled.")
			return nil
		}
	}

	if err := h.apiClient.RemoveOrganizationUser(ctx, session.OrgID, email); err != nil {
		return err
	}

	printer.Successf("Removed %s from %s\n", displayName(person), session.Org.Name)
	return nil
}

// TransferOwnership hands the organization to another member.
func (h *Handler) TransferOwnership(ctx context.Context, flags TransferFlags) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}
	if !session.Access.CanManageOrg() {
		return ErrPermissionDenied
	}

	email, err := h.promptEmail(ctx, flags.Email)
	if err != nil {
		return err
	}
	person := session.FindUser(email)
	if person == nil {
		return eris.Errorf("%s is not a member of %s", email, session.Org.Name)
	}
	if models.NormalizeEmail(session.Org.Owner.Email) == email {
		return eris.Errorf("%s already owns %s", email, session.Org.Name)
	}

	if !flags.Yes {
		confirmed, err := h.inputService.Confirm(ctx,
			fmt.Sprintf("Make %s the owner of %s? (y/n)", displayName(person), session.Org.Name), "n")
		if err != nil {
			return err
		}
		if !confirmed {
			printer.Infoln("Canceled.")
			return nil
		}
	}

	newOwner := models.Owner{
		FirstName: person.FirstName,
		LastName:  person.LastName,
		Email:     email,
	}
	if err := h.apiClient.TransferOwnership(ctx, session.OrgID, newOwner); err != nil {
		return err
	}

	printer.Successf("%s now owns %s\n", displayName(person), session.Org.Name)
	return nil
}

func (h *Handler) promptEmail(ctx context.Context, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		var err error
		value, err = h.inputService.Prompt(ctx, "Email", "")
		if err != nil {
			return "", err
		}
	}
	email := models.NormalizeEmail(value)
	if !emailPattern.MatchString(email) {
		return "", eris.Errorf("invalid email address %q", value)
	}
	return email, nil
}

func (h *Handler) promptRequired(ctx context.Context, label, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		var err error
		value, err = h.inputService.Prompt(ctx, label, "")
		if err != nil {
			return "", err
		}
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", eris.Errorf("%s is required", strings.ToLower(label))
	}
	return value, nil
}

// validatePositions checks the given position names against the teams'
// position catalog.
func validatePositions(session *orgsession.Session, positions []string) ([]string, error) {
	known := map[string]string{}
	for _, name := range session.PositionNames() {
		known[strings.ToLower(name)] = name
	}

	out := make([]string, 0, len(positions))
	for _, raw := range positions {
		name, ok := known[strings.ToLower(strings.TrimSpace(raw))]
		if !ok {
			return nil, eris.Errorf("no team has a position named %q", raw)
		}
		out = append(out, name)
	}
	return out, nil
}

// applyRoleSpecs merges "team=permission" specs into the existing grants.
// An empty permission drops the team's grant.
func applyRoleSpecs(
	session *orgsession.Session,
	existing []models.TeamPermission,
	specs []string,
) ([]models.TeamPermission, error) {
	byTeam := map[string][]string{}
	order := make([]string, 0, len(existing))
	for _, tp := range existing {
		byTeam[tp.TeamName] = tp.Permissions
		order = append(order, tp.TeamName)
	}

	for _, spec := range specs {
		teamName, permission, found := strings.Cut(spec, "=")
		if !found {
			return nil, eris.Errorf("invalid role spec %q, expected team=permission", spec)
		}
		teamName = strings.TrimSpace(teamName)
		permission = strings.TrimSpace(permission)

		var team *models.Team
		for i := range session.Teams {
			if strings.EqualFold(session.Teams[i].Name, teamName) {
				team = &session.Teams[i]
				break
			}
		}
		if team == nil {
			return nil, eris.Errorf("no team named %q", teamName)
		}

		if permission == "" {
			delete(byTeam, team.Name)
			continue
		}
		switch permission {
		case access.PermissionViewer, access.PermissionScheduler, access.PermissionAdmin:
		default:
			return nil, eris.Errorf("invalid permission %q, expected Viewer, Scheduler, or Admin", permission)
		}
		if _, ok := byTeam[team.Name]; !ok {
			order = append(order, team.Name)
		}
		byTeam[team.Name] = []string{permission}
	}

	out := make([]models.TeamPermission, 0, len(byTeam))
	for _, teamName := range order {
		if permissions, ok := byTeam[teamName]; ok {
			out = append(out, models.TeamPermission{TeamName: teamName, Permissions: permissions})
		}
	}
	return out, nil
}

func displayName(person *models.User) string {
	if name := person.FullName(); name != "" {
		return name
	}
	return models.NormalizeEmail(person.Email)
}
