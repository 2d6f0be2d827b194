package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"bakehouse/config"
	"bakehouse/internal/domain/service"
)

// staticVerifier checks credentials against the single configured admin
// account. It is deliberately the weakest CredentialVerifier that satisfies
// the interface; a directory-backed implementation can replace it without
// touching callers.
type staticVerifier struct {
	username string
	password string
}

// NewStaticVerifier is the constructor for staticVerifier.
func NewStaticVerifier(cfg *config.Config) service.CredentialVerifier {
	return &staticVerifier{
		username: cfg.Admin.Username,
		password: cfg.Admin.Password,
	}
}

// Verify compares the pair against the configured credentials. A password
// configured as a bcrypt hash is checked as one; otherwise both fields use
// constant-time comparison.
func (v *staticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	if isBcryptHash(v.password) {
		return userOK && bcrypt.CompareHashAndPassword([]byte(v.password), []byte(password)) == nil
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1

	return userOK && passOK
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
