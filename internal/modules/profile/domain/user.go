package domain

import (
	"strings"
	"unicode"
)

type User struct {
	FirstName string
	LastName  string
	Email     string
	Bio       string
	ImageURL  string
}

// Draft holds profile form input. Password fields are only acted on
// when both are filled, so a lone value is flagged rather than sent.
type Draft struct {
	FirstName   string
	LastName    string
	Bio         string
	ImagePath   string
	OldPassword string
	NewPassword string
}

const maxBioWords = 49

func (d Draft) Validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(d.FirstName) == "" {
		fields["first_name"] = "First name is required"
	}
	if strings.TrimSpace(d.LastName) == "" {
		fields["last_name"] = "Last name is required"
	}
	if len(strings.Fields(d.Bio)) > maxBioWords {
		fields["bio"] = "Bio should not exceed 49 words"
	}
	switch {
	case d.OldPassword == "" && d.NewPassword == "":
		// No password change requested.
	case d.OldPassword == "":
		fields["old_password"] = "Old password is required to change the password"
	case d.NewPassword == "":
		fields["new_password"] = "New password is required to change the password"
	default:
		if msg := ValidatePassword(d.NewPassword); msg != "" {
			fields["new_password"] = msg
		}
	}
	return fields
}

// ChangesPassword reports whether the draft carries a complete
// password-change request.
func (d Draft) ChangesPassword() bool {
	return d.OldPassword != "" && d.NewPassword != ""
}

// ValidatePassword enforces the account password policy: at least six
// characters with an uppercase letter, a lowercase letter, a digit and
// a special character all present.
func ValidatePassword(password string) string {
	if len(password) < 6 {
		return "Password must be at least 6 characters"
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	switch {
	case !upper:
		return "Password must contain an uppercase letter"
	case !lower:
		return "Password must contain a lowercase letter"
	case !digit:
		return "Password must contain a number"
	case !special:
		return "Password must contain a special character"
	}
	return ""
}
