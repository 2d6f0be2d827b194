package service

// CredentialVerifier checks a username/password pair against the configured
// admin credentials. It exists as an interface so the fixed-credential
// check can be swapped for a real identity backend without touching callers.
type CredentialVerifier interface {
	Verify(username, password string) bool
}
