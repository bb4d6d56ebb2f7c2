package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndDecode(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.Issue("alice@example.com", ScopeAccess, false)
	require.NoError(t, err)

	email, err := auth.Decode(token, ScopeAccess)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestDecodeScopeMismatch(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.Issue("alice@example.com", ScopeAccess, false)
	require.NoError(t, err)

	_, err = auth.Decode(token, ScopeRefresh)
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestDecodeScopelessToken(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.Issue("alice@example.com", "", true)
	require.NoError(t, err)

	// Tokens without a scope claim fail any scoped decode.
	_, err = auth.Decode(token, ScopeAccess)
	assert.ErrorIs(t, err, ErrInvalidScope)

	// An unscoped decode accepts them.
	email, err := auth.Decode(token, "")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestDecodeExpiredToken(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.sign("alice@example.com", ScopeAccess, -time.Second)
	require.NoError(t, err)

	_, err = auth.Decode(token, ScopeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeWrongSecret(t *testing.T) {
	token, err := SetupAuth("secret-one").Issue("alice@example.com", ScopeAccess, false)
	require.NoError(t, err)

	_, err = SetupAuth("secret-two").Decode(token, ScopeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeGarbage(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.Decode("not-a-jwt", ScopeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
