// Package access derives what the signed-in user may see and do inside one
// organization from three already-fetched records: the organization, its
// roster, and the requester's email. The server is the authority; this mirror
// only decides which commands and prompts to offer.
package access

import (
	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
)

// Team permission values as they appear on the wire.
const (
	PermissionViewer    = "Viewer"
	PermissionScheduler = "Scheduler"
	PermissionAdmin     = "Admin"
)

// Set is the resolved capability view for one requester in one organization.
type Set struct {
	IsOwner     bool
	IsOrgAdmin  bool
	IsScheduler bool
	IsTeamAdmin bool
	// ByTeam maps team name to the requester's permission values in that team.
	ByTeam map[string][]string
}

// Resolve computes the Set for requesterEmail. Emails are compared
// case-insensitively and trimmed. Ownership comes from the organization
// record, so an owner who is not yet on the roster still resolves as owner;
// everything else requires a roster entry, and a missing entry yields an
// all-false Set rather than an error.
func Resolve(org models.Organization, users []models.User, requesterEmail string) Set {
	set := Set{ByTeam: map[string][]string{}}

	email := models.NormalizeEmail(requesterEmail)
	if email == "" {
		return set
	}
	set.IsOwner = models.NormalizeEmail(org.Owner.Email) == email

	var current *models.User
	for i := range users {
		if models.NormalizeEmail(users[i].Email) == email {
			current = &users[i]
			break
		}
	}
	if current == nil {
		return set
	}

	set.IsOrgAdmin = current.OrgAdmin
	for _, tp := range current.TeamPermissions {
		perms := append([]string(nil), tp.Permissions...)
		set.ByTeam[tp.TeamName] = perms
		for _, p := range perms {
			switch p {
			case PermissionScheduler:
				set.IsScheduler = true
			case PermissionAdmin:
				set.IsTeamAdmin = true
			}
		}
	}
	return set
}

// CanManageOrg reports whether the requester may perform org-wide changes:
// creating services and teams, inviting and editing people.
func (s Set) CanManageOrg() bool {
	return s.IsOwner || s.IsOrgAdmin
}

// CanEditTeam reports whether the requester may edit or delete the named
// team: org managers always, otherwise an Admin grant on that team.
func (s Set) CanEditTeam(teamName string) bool {
	if s.CanManageOrg() {
		return true
	}
	for _, p := range s.ByTeam[teamName] {
		if p == PermissionAdmin {
			return true
		}
	}
	return false
}

// CanViewTeams reports whether the teams command is available. Any elevated
// role qualifies, including plain Scheduler.
func (s Set) CanViewTeams() bool {
	return s.IsOwner || s.IsOrgAdmin || s.IsScheduler || s.IsTeamAdmin
}

// CanViewPeople reports whether the roster command is available. Scheduler
// alone does not grant roster access.
func (s Set) CanViewPeople() bool {
	return s.IsOwner || s.IsOrgAdmin || s.IsTeamAdmin
}
