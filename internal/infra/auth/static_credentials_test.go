package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bakehouse/config"
)

func verifierConfig(username, password string) *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Username = username
	cfg.Admin.Password = password

	return cfg
}

func TestStaticVerifier_Plaintext(t *testing.T) {
	v := NewStaticVerifier(verifierConfig("admin", "admin@123"))

	assert.True(t, v.Verify("admin", "admin@123"))
	assert.False(t, v.Verify("admin", "admin@124"))
	assert.False(t, v.Verify("root", "admin@123"))
	assert.False(t, v.Verify("", ""))
}

func TestStaticVerifier_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin@123"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewStaticVerifier(verifierConfig("admin", string(hash)))

	assert.True(t, v.Verify("admin", "admin@123"))
	assert.False(t, v.Verify("admin", string(hash)), "the hash itself is not the password")
	assert.False(t, v.Verify("admin", "wrong"))
}
