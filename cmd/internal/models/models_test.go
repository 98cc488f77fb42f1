package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamDecodesWirePayload(t *testing.T) {
	payload := `{
		"team_name": "Worship",
		"description": "Sunday band",
		"assign_with_other_team": true,
		"positions": [
			{"position_name": "Vocals", "qty": 2, "assign_with_other_position": true},
			{"position_name": "Drums", "qty": 1, "assign_with_other_position": false}
		],
		"ask_for_availability": false
	}`

	var team Team
	require.NoError(t, json.Unmarshal([]byte(payload), &team))

	assert.Equal(t, "Worship", team.Name)
	assert.Equal(t, "Sunday band", team.Description)
	assert.True(t, team.AssignWithOtherTeam)
	require.Len(t, team.Positions, 2)
	assert.Equal(t, Position{Name: "Vocals", Quantity: 2, AssignWithOtherPosition: true}, team.Positions[0])
	assert.Equal(t, Position{Name: "Drums", Quantity: 1}, team.Positions[1])
}

func TestTeamMarshalsWireKeys(t *testing.T) {
	data, err := json.Marshal(Team{
		Name:      "Ushers",
		Positions: []Position{{Name: "Greeter", Quantity: 2}},
	})
	require.NoError(t, err)

	text := string(data)
	for _, key := range []string{
		`"team_name"`, `"description"`, `"assign_with_other_team"`,
		`"position_name"`, `"qty"`, `"assign_with_other_position"`,
		`"ask_for_availability"`,
	} {
		assert.Contains(t, text, key)
	}
}

func TestUserKeepsPhoneThroughRoundTrip(t *testing.T) {
	var user User
	require.NoError(t, json.Unmarshal([]byte(`{"email":"mia@example.com","phone":"555-0100"}`), &user))
	assert.Equal(t, "555-0100", user.Phone)

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"phone":"555-0100"`)
}

func TestServiceTeamMarshalsAssignWithOtherTeam(t *testing.T) {
	data, err := json.Marshal(ServiceTeam{
		TeamName:  "Worship",
		Positions: map[string]Assignees{},
	})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"assign_with_other_team":false`)
}
