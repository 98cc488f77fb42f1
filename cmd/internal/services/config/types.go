package config

// Config is the device-local persisted state: the signed-in identity and the
// active organization selection. Everything else is fetched fresh.
type Config struct {
	UserEmail      string   `json:"user_email"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Church         string   `json:"church"`
	Organizations  []string `json:"organizations"`
	OrganizationID string   `json:"organization_id"`
	IsDemoUser     bool     `json:"is_demo_user"`
}

// LoggedIn reports whether an identity is persisted.
func (c *Config) LoggedIn() bool {
	return c.UserEmail != ""
}

type Service struct {
	Env    string
	Config Config
}

type ServiceInterface interface {
	GetConfig() *Config
	Save() error
	Clear() error
}
