package domain

import "strings"

// Session is the whole of the client's authenticated state: one opaque
// bearer token, trusted until the server rejects it.
type Session struct {
	Token string `json:"token"`
}

func (s Session) Valid() bool {
	return strings.TrimSpace(s.Token) != ""
}

type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(c.Email) == "" {
		fields["email"] = "Email is required"
	}
	if c.Password == "" {
		fields["password"] = "Password is required"
	}
	return fields
}

type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (r Registration) Validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.FirstName) == "" {
		fields["first_name"] = "First name is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		fields["last_name"] = "Last name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = "Email is required"
	}
	if r.Password == "" {
		fields["password"] = "Password is required"
	}
	return fields
}
