package entity

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"admin", RoleAdmin, false},
		{"doctor", RoleDoctor, false},
		{"patient", RolePatient, false},
		{"Admin", RoleAdmin, false},
		{"DOCTOR", RoleDoctor, false},
		{"  patient  ", RolePatient, false},
		{"nurse", "", true},
		{"", "", true},
		{"adminn", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error, got %q", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleDoctor, RolePatient} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	if Role("superuser").Valid() {
		t.Error("unknown role should not be valid")
	}
	if Role("Admin").Valid() {
		t.Error("Valid must only accept canonical lowercase values")
	}
}
