package mocks

import "errors"

// ErrPasswordMismatch is the default failure returned by MockPasswordVerifier.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordVerifier implements auth.PasswordVerifier. By default every
// comparison fails; set Accept to make it succeed, or CompareFn for full
// control. Calls are recorded for assertions.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error

	Accept bool

	Calls []struct {
		HashedPassword string
		Password       string
	}
}

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.Calls = append(m.Calls, struct {
		HashedPassword string
		Password       string
	}{hashedPassword, password})

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.Accept {
		return nil
	}
	return ErrPasswordMismatch
}
