package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterCatalogHasUniqueIDs(t *testing.T) {
	catalog := CharacterCatalog()
	require.NotEmpty(t, catalog)

	seen := map[string]bool{}
	for _, c := range catalog {
		assert.False(t, seen[c.ID], "duplicate character id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.ImagePath)
	}
}

func TestDefaultCharacterIsFirstEntry(t *testing.T) {
	assert.Equal(t, CharacterCatalog()[0], DefaultCharacter())
}

func TestCharacterByID(t *testing.T) {
	c, ok := CharacterByID("leo")
	require.True(t, ok)
	assert.Equal(t, "Leo", c.Name)

	_, ok = CharacterByID("zeus")
	assert.False(t, ok)
}
