package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
)

func testOrg() models.Organization {
	return models.Organization{
		ID:   "org-1",
		Name: "Grace Chapel",
		Owner: models.Owner{
			FirstName: "Olivia",
			LastName:  "Owner",
			Email:     "owner@example.com",
		},
	}
}

func TestResolveOwnerMatchIsCaseAndSpaceInsensitive(t *testing.T) {
	org := testOrg()

	for _, email := range []string{
		"owner@example.com",
		"OWNER@Example.COM",
		"  owner@example.com  ",
	} {
		set := Resolve(org, nil, email)
		assert.True(t, set.IsOwner, "email %q", email)
		assert.True(t, set.CanManageOrg())
	}
}

func TestResolveOwnerNotOnRoster(t *testing.T) {
	// A just-created org's owner may not be a roster entry yet. Ownership
	// still resolves; roster-derived flags stay false.
	set := Resolve(testOrg(), []models.User{{Email: "someone@example.com"}}, "owner@example.com")

	assert.True(t, set.IsOwner)
	assert.False(t, set.IsOrgAdmin)
	assert.False(t, set.IsScheduler)
	assert.False(t, set.IsTeamAdmin)
	assert.Empty(t, set.ByTeam)
}

func TestResolveAbsentUser(t *testing.T) {
	users := []models.User{
		{Email: "member@example.com", OrgAdmin: true},
	}

	set := Resolve(testOrg(), users, "stranger@example.com")

	assert.False(t, set.IsOwner)
	assert.False(t, set.IsOrgAdmin)
	assert.False(t, set.IsScheduler)
	assert.False(t, set.IsTeamAdmin)
	assert.Empty(t, set.ByTeam)
	assert.False(t, set.CanViewTeams())
	assert.False(t, set.CanViewPeople())
}

func TestResolveEmptyEmail(t *testing.T) {
	set := Resolve(testOrg(), []models.User{{Email: ""}}, "   ")

	assert.False(t, set.IsOwner)
	assert.Empty(t, set.ByTeam)
}

func TestResolveFlattensTeamPermissions(t *testing.T) {
	users := []models.User{
		{
			Email: "roles@example.com",
			TeamPermissions: []models.TeamPermission{
				{TeamName: "Worship", Permissions: []string{PermissionScheduler}},
				{TeamName: "Tech", Permissions: []string{PermissionAdmin, PermissionViewer}},
			},
		},
	}

	set := Resolve(testOrg(), users, "Roles@Example.com")

	assert.False(t, set.IsOwner)
	assert.False(t, set.IsOrgAdmin)
	assert.True(t, set.IsScheduler)
	assert.True(t, set.IsTeamAdmin)
	assert.Equal(t, []string{PermissionScheduler}, set.ByTeam["Worship"])
	assert.Equal(t, []string{PermissionAdmin, PermissionViewer}, set.ByTeam["Tech"])
}

func TestSchedulerOnlySeesTeamsButNotPeople(t *testing.T) {
	users := []models.User{
		{
			Email: "sched@example.com",
			TeamPermissions: []models.TeamPermission{
				{TeamName: "Worship", Permissions: []string{PermissionScheduler}},
			},
		},
	}

	set := Resolve(testOrg(), users, "sched@example.com")

	assert.True(t, set.CanViewTeams())
	assert.False(t, set.CanViewPeople())
	assert.False(t, set.CanManageOrg())
	assert.False(t, set.CanEditTeam("Worship"))
}

func TestCanEditTeam(t *testing.T) {
	users := []models.User{
		{
			Email: "admin@example.com",
			TeamPermissions: []models.TeamPermission{
				{TeamName: "Tech", Permissions: []string{PermissionAdmin}},
				{TeamName: "Worship", Permissions: []string{PermissionViewer}},
			},
		},
	}

	set := Resolve(testOrg(), users, "admin@example.com")

	assert.True(t, set.CanEditTeam("Tech"))
	assert.False(t, set.CanEditTeam("Worship"))
	assert.False(t, set.CanEditTeam("Nonexistent"))
	assert.True(t, set.CanViewPeople())

	// Org managers can edit any team regardless of per-team grants.
	owner := Resolve(testOrg(), users, "owner@example.com")
	assert.True(t, owner.CanEditTeam("Worship"))
}

func TestResolveOrgAdminFlag(t *testing.T) {
	users := []models.User{
		{Email: "admin@example.com", OrgAdmin: true},
	}

	set := Resolve(testOrg(), users, "admin@example.com")

	assert.False(t, set.IsOwner)
	assert.True(t, set.IsOrgAdmin)
	assert.True(t, set.CanManageOrg())
	assert.True(t, set.CanViewTeams())
	assert.True(t, set.CanViewPeople())
}
