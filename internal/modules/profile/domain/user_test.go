package domain_test

import (
	"strings"
	"testing"

	"gather/internal/modules/profile/domain"
)

func TestPasswordPolicyRequiresAllFourClasses(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"all classes", "Abc1#x", true},
		{"too short", "Ab1#x", false},
		{"no uppercase", "abc1#xyz", false},
		{"no lowercase", "ABC1#XYZ", false},
		{"no digit", "Abcd#xyz", false},
		{"no special", "Abc1xyz", false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			msg := domain.ValidatePassword(tc.password)
			if tc.ok && msg != "" {
				t.Fatalf("expected %q to pass, got %q", tc.password, msg)
			}
			if !tc.ok && msg == "" {
				t.Fatalf("expected %q to fail", tc.password)
			}
		})
	}
}

func TestDraftRequiresNamesAndCapsBio(t *testing.T) {
	t.Parallel()
	fields := domain.Draft{FirstName: "  ", LastName: ""}.Validate()
	if fields["first_name"] != "First name is required" || fields["last_name"] != "Last name is required" {
		t.Fatalf("expected name errors, got %v", fields)
	}

	d := domain.Draft{FirstName: "Ana", LastName: "Costa", Bio: strings.Repeat("word ", 49)}
	if fields := d.Validate(); len(fields) != 0 {
		t.Fatalf("49-word bio must pass, got %v", fields)
	}
	d.Bio = strings.Repeat("word ", 50)
	if fields := d.Validate(); fields["bio"] == "" {
		t.Fatalf("50-word bio must fail")
	}
}

func TestPasswordFieldsMustComeInPairs(t *testing.T) {
	t.Parallel()
	base := domain.Draft{FirstName: "Ana", LastName: "Costa"}

	d := base
	d.OldPassword = "old-secret"
	if fields := d.Validate(); fields["new_password"] == "" {
		t.Fatalf("old password alone must flag the new password field")
	}

	d = base
	d.NewPassword = "Abc1#xyz"
	if fields := d.Validate(); fields["old_password"] == "" {
		t.Fatalf("new password alone must flag the old password field")
	}

	d = base
	d.OldPassword = "old-secret"
	d.NewPassword = "weak"
	if fields := d.Validate(); fields["new_password"] == "" {
		t.Fatalf("weak new password must fail policy")
	}
	if !d.ChangesPassword() {
		t.Fatalf("both fields filled must count as a change request")
	}

	d.NewPassword = "Abc1#xyz"
	if fields := d.Validate(); len(fields) != 0 {
		t.Fatalf("complete change request must pass, got %v", fields)
	}
}
