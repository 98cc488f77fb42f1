package models

// Position is one role slot within a team.
type Position struct {
	Name                    string `json:"position_name"`
	Quantity                int    `json:"qty"`
	AssignWithOtherPosition bool   `json:"assign_with_other_position"`
}

// Team is the record behind /schedulebuddy/organizations/{id}/teams.
type Team struct {
	Name                string     `json:"team_name"`
	Description         string     `json:"description"`
	AssignWithOtherTeam bool       `json:"assign_with_other_team"`
	Positions           []Position `json:"positions"`
	AskForAvailability  bool       `json:"ask_for_availability"`
}
