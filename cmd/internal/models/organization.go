package models

import "strings"

// Owner is the organization owner snapshot embedded in the org record.
type Owner struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Organization is the record behind /schedulebuddy/organizations/{id}.
type Organization struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Owner   Owner  `json:"owner"`
	Pending bool   `json:"pending,omitempty"`
}

// FullAddress joins the populated address parts, used as the default service
// location.
func (o Organization) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{o.Street, o.City, o.State, o.Zip} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
