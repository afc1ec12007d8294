package utils

import (
	"testing"

	"github.com/foodshare-app/foodshare_backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, models.RoleReceiver)
	require.NoError(t, err)

	userID, role, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, models.RoleReceiver, role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, _, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken(7, models.RoleProvider)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, _, err = ParseToken(token)
	assert.Error(t, err)
}
