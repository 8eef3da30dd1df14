package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/dronepost/pkg/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := utils.GenerateToken("secret", "operator", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.UserID)
	assert.Equal(t, "dronepost", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := utils.GenerateToken("secret", "operator", time.Hour)
	require.NoError(t, err)

	_, err = utils.ValidateToken("other-secret", token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()

	token, err := utils.GenerateToken("secret", "operator", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ValidateToken("secret", token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Parallel()

	_, err := utils.ValidateToken("secret", "not.a.token")
	assert.Error(t, err)
}
