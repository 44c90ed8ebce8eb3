package auth

import "crypto/subtle"

// PasswordVerifier defines the interface for comparing credentials.
type PasswordVerifier interface {
	// Compare compares a stored credential with the one supplied at login.
	// Returns true on an exact match.
	Compare(storedPassword, password string) bool
}

// ExactVerifier implements PasswordVerifier with an exact, case-sensitive
// comparison of the opaque stored credential. No trimming, no fuzzy
// matching. The comparison is constant-time to avoid leaking how much of
// the credential matched.
type ExactVerifier struct{}

// NewExactVerifier creates a new ExactVerifier.
func NewExactVerifier() *ExactVerifier {
	return &ExactVerifier{}
}

// Compare implements the PasswordVerifier interface.
func (v *ExactVerifier) Compare(storedPassword, password string) bool {
	return subtle.ConstantTimeCompare([]byte(storedPassword), []byte(password)) == 1
}
