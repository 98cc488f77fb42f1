package models

import (
	"encoding/json"
	"sort"
	"time"
)

// Assignees is a position's assigned emails. The server stores a plain string
// when a position holds a single assignee and a list when it holds several, so
// decoding accepts both shapes.
type Assignees []string

func (a *Assignees) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*a = nil
		return nil
	}
	*a = Assignees{single}
	return nil
}

// ServiceTeam is one team's position assignments within a service.
type ServiceTeam struct {
	TeamName            string               `json:"team_name"`
	Positions           map[string]Assignees `json:"positions"`
	AssignWithOtherTeam bool                 `json:"assign_with_other_team"`
}

// Service is the record behind /schedulebuddy/organizations/{id}/services.
type Service struct {
	ID            string        `json:"_id,omitempty"`
	Name          string        `json:"service_name"`
	StartDatetime time.Time     `json:"start_datetime"`
	EndDatetime   time.Time     `json:"end_datetime"`
	Location      string        `json:"location,omitempty"`
	Teams         []ServiceTeam `json:"teams,omitempty"`
}

// Upcoming reports whether the service has not yet ended. A service whose end
// equals now is already over.
func (s Service) Upcoming(now time.Time) bool {
	return s.EndDatetime.After(now)
}

// Assignment is one position the given person holds in a service.
type Assignment struct {
	TeamName string
	Position string
}

// AssignmentsFor returns the positions across all teams whose assignees
// include the given email, compared case-insensitively.
func (s Service) AssignmentsFor(email string) []Assignment {
	email = NormalizeEmail(email)
	if email == "" {
		return nil
	}
	var out []Assignment
	for _, team := range s.Teams {
		names := make([]string, 0, len(team.Positions))
		for name := range team.Positions {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			for _, assignee := range team.Positions[name] {
				if NormalizeEmail(assignee) == email {
					out = append(out, Assignment{TeamName: team.TeamName, Position: name})
					break
				}
			}
		}
	}
	return out
}

// SortServicesByStart orders services ascending by start time, earliest first.
func SortServicesByStart(services []Service) {
	sort.Slice(services, func(i, j int) bool {
		return services[i].StartDatetime.Before(services[j].StartDatetime)
	})
}
