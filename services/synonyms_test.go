package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSynonymsNormalizesInput(t *testing.T) {
	assert.Equal(t, GetSynonyms("supino"), GetSynonyms(" Supino "))
	assert.Equal(t, GetSynonyms("supino"), GetSynonyms("SUPINO"))
}

func TestGetSynonymsUnknownTerm(t *testing.T) {
	syns := GetSynonyms("exercicio_inexistente_xyz")
	require.NotNil(t, syns)
	assert.Empty(t, syns)
}

func TestAreSynonymsSymmetric(t *testing.T) {
	// the table lists "bench press" under "supino" but has no reverse entry
	assert.True(t, AreSynonyms("supino", "bench press"))
	assert.True(t, AreSynonyms("bench press", "supino"))

	assert.True(t, AreSynonyms("Barra Fixa", "pull up"))
	assert.True(t, AreSynonyms("pull up", "barra fixa"))
}

func TestAreSynonymsIdenticalAfterNormalization(t *testing.T) {
	assert.True(t, AreSynonyms("  Agachamento", "agachamento "))
}

func TestAreSynonymsUnrelated(t *testing.T) {
	assert.False(t, AreSynonyms("supino", "agachamento"))
	assert.False(t, AreSynonyms("supino", ""))
}

func TestNormalizeMuscleGroupCanonicalTags(t *testing.T) {
	assert.Equal(t, "chest", NormalizeMuscleGroup("Peitoral"))
	assert.Equal(t, "chest", NormalizeMuscleGroup("peito"))
	assert.Equal(t, "chest", NormalizeMuscleGroup(" CHEST "))
	assert.Equal(t, "back", NormalizeMuscleGroup("Costas"))
	assert.Equal(t, "legs", NormalizeMuscleGroup("quadríceps"))
	assert.Equal(t, "shoulders", NormalizeMuscleGroup("Ombros"))
}

func TestNormalizeMuscleGroupOpenWorldFallback(t *testing.T) {
	assert.Equal(t, "unknown_xyz", NormalizeMuscleGroup("unknown_xyz"))
	assert.Equal(t, "unknown_xyz", NormalizeMuscleGroup("  Unknown_XYZ "))
}
