package token

import (
	"testing"
	"time"

	"airline-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateVerify_Roundtrip(t *testing.T) {
	manager := NewManager(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24})

	userID := uuid.New()
	sessionID := uuid.New()

	signed, expiresAt, err := manager.Generate(userID, sessionID, "customer")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := manager.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, sessionID.String(), claims.SessionID)
	assert.Equal(t, "customer", claims.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	manager := NewManager(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24})
	other := NewManager(utils.JWTConfig{Secret: "another-secret", ExpiryHours: 24})

	signed, _, err := manager.Generate(uuid.New(), uuid.New(), "customer")
	assert.NoError(t, err)

	claims, err := other.Verify(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerify_Garbage(t *testing.T) {
	manager := NewManager(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24})

	claims, err := manager.Verify("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
