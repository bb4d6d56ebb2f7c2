package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hashed)

	assert.NoError(t, VerifyPassword("secret", hashed))
	assert.Error(t, VerifyPassword("wrong", hashed))
}
