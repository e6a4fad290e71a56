package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "alice")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Greater(t, RemainingTTL(claims).Minutes(), 0.0)

	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	token, err := GenerateToken(1, "bob")
	require.NoError(t, err)

	old := JWTSecret
	JWTSecret = "another"
	defer func() { JWTSecret = old }()

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractSignatureMalformed(t *testing.T) {
	_, err := ExtractSignature("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NoError(t, CheckPasswordHash("s3cret-pass", hash))
	assert.Error(t, CheckPasswordHash("wrong", hash))

	_, err = HashPassword("")
	assert.Error(t, err)
}
