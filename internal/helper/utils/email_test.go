package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("alice@example.com"))
	assert.True(t, IsEmail("a.b+c@example.io"))

	assert.False(t, IsEmail("alice"))
	assert.False(t, IsEmail("alice@example"))
	assert.False(t, IsEmail("@example.com"))
}
