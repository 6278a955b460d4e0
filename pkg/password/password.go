// Package password holds the pluggable password strength policy used at
// registration time. The default policy mirrors common framework defaults:
// a minimum length and a rejection of fully numeric passwords.
package password

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrTooWeak is the sentinel wrapped by all policy failures.
var ErrTooWeak = errors.New("password is too weak")

// Policy validates candidate passwords.
type Policy interface {
	Validate(password string) error
}

type defaultPolicy struct {
	minLength int
}

// NewPolicy returns the default policy with the given minimum length.
func NewPolicy(minLength int) Policy {
	return &defaultPolicy{minLength: minLength}
}

func (p *defaultPolicy) Validate(password string) error {
	if len(password) < p.minLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrTooWeak, p.minLength)
	}
	if isEntirelyNumeric(password) {
		return fmt.Errorf("%w: must not be entirely numeric", ErrTooWeak)
	}
	return nil
}

func isEntirelyNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
