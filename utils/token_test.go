package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret"

func TestAdminTokenRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateAdminToken(testSecret, AdminTokenTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAdminToken(token, testSecret)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "admin", claims.Type)
	assert.WithinDuration(t, time.Now().Add(AdminTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateAdminTokenRejections(t *testing.T) {
	t.Parallel()

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		token, err := GenerateAdminToken(testSecret, AdminTokenTTL)
		require.NoError(t, err)

		_, err = ValidateAdminToken(token, "some-other-secret")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		token, err := GenerateAdminToken(testSecret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateAdminToken(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()
		_, err := ValidateAdminToken("not.a.token", testSecret)
		assert.Error(t, err)
	})
}

func TestVerifyAdminKey(t *testing.T) {
	t.Parallel()

	t.Run("plain key", func(t *testing.T) {
		t.Parallel()
		assert.True(t, VerifyAdminKey("super-secret", "super-secret"))
		assert.False(t, VerifyAdminKey("super-secret", "super-secret "))
		assert.False(t, VerifyAdminKey("super-secret", ""))
	})

	t.Run("bcrypt hashed key", func(t *testing.T) {
		t.Parallel()
		hash, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
		require.NoError(t, err)

		assert.True(t, VerifyAdminKey(string(hash), "super-secret"))
		assert.False(t, VerifyAdminKey(string(hash), "wrong"))
	})
}
