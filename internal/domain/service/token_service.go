// Package service declares the domain service contracts implemented by the
// infrastructure layer.
package service

// TokenService issues and validates the opaque session tokens handed to the
// admin surface after a successful credential check.
type TokenService interface {
	// GenerateToken issues a signed token for the given subject.
	GenerateToken(subject string) (string, error)

	// ValidateToken checks a token string and returns its subject.
	ValidateToken(token string) (string, error)
}
