package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("returns a version 7 uuid", func(t *testing.T) {
		parsed, err := googleuuid.Parse(New())
		require.NoError(t, err)
		assert.Equal(t, googleuuid.Version(7), parsed.Version())
	})

	t.Run("returns distinct values", func(t *testing.T) {
		assert.NotEqual(t, New(), New())
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(New()))
	assert.False(t, IsValid("not-a-uuid"))
	assert.False(t, IsValid(""))
}
