package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenPairRoundTrip(t *testing.T) {
	access, refresh, err := GenerateTokenPair(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	identity, err := ParseToken(access, TypeAccess)
	require.NoError(t, err)
	require.Equal(t, 42, identity.UserID)
	require.Equal(t, "alice", identity.Username)

	identity, err = ParseToken(refresh, TypeRefresh)
	require.NoError(t, err)
	require.Equal(t, 42, identity.UserID)
	require.Equal(t, "alice", identity.Username)
}

func TestTokenTypeMismatch(t *testing.T) {
	access, refresh, err := GenerateTokenPair(7, "bob")
	require.NoError(t, err)

	_, err = ParseToken(access, TypeRefresh)
	require.Error(t, err)

	_, err = ParseToken(refresh, TypeAccess)
	require.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken(7, "bob", TypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, TypeAccess)
	require.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	_, err := ParseToken("not-a-token", TypeAccess)
	require.Error(t, err)

	_, err = ParseToken("", TypeAccess)
	require.Error(t, err)
}
