package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, CheckPassword(hash, "pw123"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "pw123"))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := MakeSessionToken("user-1", "secret")
	require.NoError(t, err)

	c, err := ParseSessionToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserID)
	assert.NotEmpty(t, c.ID)
}

// Every mint is distinct, so rotation always replaces the stored value.
func TestSessionTokenUnique(t *testing.T) {
	a, err := MakeSessionToken("user-1", "secret")
	require.NoError(t, err)
	b, err := MakeSessionToken("user-1", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseSessionTokenRejects(t *testing.T) {
	tok, err := MakeSessionToken("user-1", "secret")
	require.NoError(t, err)

	_, err = ParseSessionToken(tok, "other-secret")
	assert.Error(t, err)

	_, err = ParseSessionToken("garbage", "secret")
	assert.Error(t, err)

	_, err = ParseSessionToken("", "secret")
	assert.Error(t, err)
}

func TestNewSignalID(t *testing.T) {
	a := NewSignalID()
	b := NewSignalID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
