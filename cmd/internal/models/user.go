package models

import "strings"

// NormalizeEmail lowercases and trims an email address. Email is the join key
// between the roster, service assignments, and the stored identity, so every
// comparison in the client goes through this first.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TeamPermission is one roster entry's role set within a single team.
type TeamPermission struct {
	TeamName    string   `json:"team_name"`
	Permissions []string `json:"permissions"`
}

// User is an organization roster entry.
type User struct {
	Email           string           `json:"email"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Phone           string           `json:"phone"`
	OrgAdmin        bool             `json:"org_admin"`
	Positions       []string         `json:"positions"`
	TeamPermissions []TeamPermission `json:"team_permissions"`
	Inability       []string         `json:"inability"`
}

// FullName joins first and last name, tolerating either being empty.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ScheduleBuddyProfile is the app-specific section of an account record.
type ScheduleBuddyProfile struct {
	Organizations []string `json:"organizations"`
}

// Profile is the account record behind /users/{email}.
type Profile struct {
	Email         string               `json:"email,omitempty"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	Church        string               `json:"church"`
	ScheduleBuddy ScheduleBuddyProfile `json:"schedulebuddy"`
}

// OTPVerification is the response to a verify-otp call.
type OTPVerification struct {
	Message   string `json:"message"`
	IsNewUser bool   `json:"is_new_user"`
}

// Invite is one entry of the invite request body.
type Invite struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
