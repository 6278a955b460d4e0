package password

import (
	"errors"
	"testing"
)

func TestPolicyValidate(t *testing.T) {
	policy := NewPolicy(8)

	cases := []struct {
		name     string
		password string
		wantWeak bool
	}{
		{"strong enough", "s3cure-pass", false},
		{"exactly min length", "abcd123!", false},
		{"too short", "short1", true},
		{"entirely numeric", "123456789", true},
		{"numeric but long", "1234567890123", true},
		{"empty", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.Validate(tc.password)
			if tc.wantWeak {
				if !errors.Is(err, ErrTooWeak) {
					t.Errorf("expected ErrTooWeak, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
