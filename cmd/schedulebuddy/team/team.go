package team

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/orgsession"
	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
)

// List prints the organization's teams with their positions. Visibility needs
// any elevated role; plain members see a hint instead of the roster.
func (h *Handler) List(ctx context.Context) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}
	if !session.Access.CanViewTeams() {
		return ErrNoTeamAccess
	}

	printer.Headerf("  Teams: %s  \n", session.Org.Name)
	if len(session.Teams) == 0 {
		printer.Infoln("No teams yet.")
		return nil
	}
	for _, team := range session.Teams {
		suffix := ""
		if session.Access.CanEditTeam(team.Name) {
			suffix = "  (editable)"
		}
		printer.Infoln(team.Name + suffix)
		if team.Description != "" {
			printer.Mutedln("    " + team.Description)
		}
		if team.AssignWithOtherTeam {
			printer.Mutedln("    Can be assigned with other teams")
		}
		for _, pos := range team.Positions {
			detail := fmt.Sprintf("    %s ×%d", pos.Name, pos.Quantity)
			if pos.AssignWithOtherPosition {
				detail += ", may share assignees"
			}
			printer.Mutedln(detail)
		}
	}
	return nil
}

// Create creates a team. Team names must be unique case-insensitively within
// the organization.
func (h *Handler) Create(ctx context.Context, flags CreateFlags) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}
	if !session.Access.CanManageOrg() {
		return ErrPermissionDenied
	}

	name := strings.TrimSpace(flags.Name)
	prompted := name == ""
	if prompted {
		name, err = h.inputService.Prompt(ctx, "Team name", "")
		if err != nil {
			return err
		}
		name = strings.TrimSpace(name)
	}
	if name == "" {
		return eris.New("team name is required")
	}
	if findTeam(session.Teams, name) != nil {
		return eris.Errorf("a team named %q already exists", name)
	}

	description := strings.TrimSpace(flags.Description)
	if prompted && description == "" {
		description, err = h.inputService.Prompt(ctx, "Description (optional)", "")
		if err != nil {
			return err
		}
		description = strings.TrimSpace(description)
	}

	positions, err := h.collectPositions(ctx, flags.Positions, nil)
	if err != nil {
		return err
	}

	team := models.Team{
		Name:                name,
		Description:         description,
		AssignWithOtherTeam: flags.Shared,
		Positions:           positions,
		AskForAvailability:  false,
	}
	if err := h.apiClient.CreateTeam(ctx, session.OrgID, team); err != nil {
		return err
	}

	printer.Successf("Created team %q with %d positions\n", name, len(positions))
	return nil
}

// Edit renames a team or replaces its positions. Org managers can edit any
// team; otherwise an Admin grant on the team is required.
func (h *Handler) Edit(ctx context.Context, flags EditFlags) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}

	existing, err := h.requireEditableTeam(ctx, session, flags.Name)
	if err != nil {
		return err
	}

	newName := strings.TrimSpace(flags.NewName)
	nothingFlagged := len(flags.Positions) == 0 &&
		strings.TrimSpace(flags.Description) == "" &&
		strings.TrimSpace(flags.Shared) == ""
	if newName == "" && nothingFlagged {
		newName, err = h.inputService.Prompt(ctx, "Team name", existing.Name)
		if err != nil {
			return err
		}
		newName = strings.TrimSpace(newName)
	}
	if newName == "" {
		newName = existing.Name
	}
	if !strings.EqualFold(newName, existing.Name) && findTeam(session.Teams, newName) != nil {
		return eris.Errorf("a team named %q already exists", newName)
	}

	description := existing.Description
	if d := strings.TrimSpace(flags.Description); d != "" {
		description = d
	}

	shared := existing.AssignWithOtherTeam
	switch strings.ToLower(strings.TrimSpace(flags.Shared)) {
	case "":
	case "true", "yes":
		shared = true
	case "false", "no":
		shared = false
	default:
		return eris.Errorf("invalid --shared value %q, expected true or false", flags.Shared)
	}

	positions := existing.Positions
	if len(flags.Positions) > 0 {
		positions, err = h.collectPositions(ctx, flags.Positions, nil)
		if err != nil {
			return err
		}
	}

	updated := models.Team{
		Name:                newName,
		Description:         description,
		AssignWithOtherTeam: shared,
		Positions:           positions,
		AskForAvailability:  existing.AskForAvailability,
	}
	if err := h.apiClient.UpdateTeam(ctx, session.OrgID, existing.Name, updated); err != nil {
		return err
	}

	printer.Successf("Updated team %q\n", newName)
	return nil
}

// Delete removes a team after confirmation.
func (h *Handler) Delete(ctx context.Context, flags DeleteFlags) error {
	session, err := orgsession.Resolve(ctx, h.apiClient, h.configService.GetConfig())
	if err != nil {
		return err
	}

	existing, err := h.requireEditableTeam(ctx, session, flags.Name)
	if err != nil {
		return err
	}

	if !flags.Yes {
		confirmed, err := h.inputService.Confirm(ctx,
			fmt.Sprintf("Delete team %q? This cannot be undone (y/n)", existing.Name), "n")
		if err != nil {
			return err
		}
		if !confirmed {
			printer.Infoln("Canceled.")
			return nil
		}
	}

	if err := h.apiClient.DeleteTeam(ctx, session.OrgID, existing.Name); err != nil {
		return err
	}

	printer.Successf("Deleted team %q\n", existing.Name)
	return nil
}

// requireEditableTeam resolves the named team and checks edit access.
func (h *Handler) requireEditableTeam(
	ctx context.Context,
	session *orgsession.Session,
	name string,
) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		var err error
		name, err = h.inputService.Prompt(ctx, "Team name", "")
		if err != nil {
			return nil, err
		}
	}

	existing := findTeam(session.Teams, name)
	if existing == nil {
		return nil, eris.Errorf("no team named %q", name)
	}
	if !session.Access.CanEditTeam(existing.Name) {
		return nil, ErrPermissionDenied
	}
	return existing, nil
}

// collectPositions parses position specs, prompting interactively when none
// are given. A spec is "name[:quantity[:shared|solo]]".
func (h *Handler) collectPositions(ctx context.Context, specs []string, defaults []models.Position) ([]models.Position, error) {
	if len(specs) > 0 {
		positions := make([]models.Position, 0, len(specs))
		for _, spec := range specs {
			pos, err := parsePositionSpec(spec)
			if err != nil {
				return nil, err
			}
			positions = append(positions, pos)
		}
		return positions, nil
	}

	positions := defaults
	for {
		name, err := h.inputService.Prompt(ctx, "Position name (empty to finish)", "")
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return positions, nil
		}

		quantity, err := h.inputService.Prompt(ctx, "How many are needed", "1")
		if err != nil {
			return nil, err
		}
		qty, err := strconv.Atoi(strings.TrimSpace(quantity))
		if err != nil || qty < 1 {
			return nil, eris.Errorf("invalid quantity %q", quantity)
		}

		shared, err := h.inputService.Confirm(ctx, "Allow assignment with other positions? (y/n)", "n")
		if err != nil {
			return nil, err
		}

		positions = append(positions, models.Position{
			Name:                    name,
			Quantity:                qty,
			AssignWithOtherPosition: shared,
		})
	}
}

func parsePositionSpec(spec string) (models.Position, error) {
	parts := strings.Split(spec, ":")
	pos := models.Position{Quantity: 1}

	pos.Name = strings.TrimSpace(parts[0])
	if pos.Name == "" {
		return pos, eris.Errorf("invalid position spec %q", spec)
	}
	if len(parts) > 1 {
		qty, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || qty < 1 {
			return pos, eris.Errorf("invalid quantity in position spec %q", spec)
		}
		pos.Quantity = qty
	}
	if len(parts) > 2 {
		switch strings.ToLower(strings.TrimSpace(parts[2])) {
		case "shared":
			pos.AssignWithOtherPosition = true
		case "solo":
			pos.AssignWithOtherPosition = false
		default:
			return pos, eris.Errorf("invalid assignment mode in position spec %q", spec)
		}
	}
	return pos, nil
}

// findTeam matches a team by name, case-insensitively and trimmed.
func findTeam(teams []models.Team, name string) *models.Team {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range teams {
		if strings.ToLower(strings.TrimSpace(teams[i].Name)) == needle {
			return &teams[i]
		}
	}
	return nil
}
