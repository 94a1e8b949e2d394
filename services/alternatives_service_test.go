package services

import (
	"strings"
	"testing"

	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func libEntry(name, group, difficulty string) models.ExerciseLibraryEntry {
	return models.ExerciseLibraryEntry{Name: name, MuscleGroup: group, Difficulty: difficulty}
}

func TestCandidateAlternativesMatchesAcrossLanguages(t *testing.T) {
	entries := []models.ExerciseLibraryEntry{
		libEntry("Crucifixo", "Peitoral", "intermediate"),
		libEntry("Chest Press", "chest", "beginner"),
		libEntry("Remada Curvada", "costas", "intermediate"),
	}
	// "peito" and the stored "Peitoral"/"chest" all normalize to the same tag
	got := candidateAlternatives(entries, "supino", "peito", "")
	require.Len(t, got, 2)
	assert.Equal(t, "Crucifixo", got[0].Name)
	assert.Equal(t, "Chest Press", got[1].Name)
}

func TestCandidateAlternativesExcludesSynonymsOfRequested(t *testing.T) {
	entries := []models.ExerciseLibraryEntry{
		libEntry("Bench Press", "chest", ""),
		libEntry("Crucifixo", "peito", ""),
	}
	// "bench press" is the same exercise as "supino", so only crucifixo survives
	got := candidateAlternatives(entries, "supino", "peitoral", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Crucifixo", got[0].Name)
}

func TestCandidateAlternativesDifficultyFilter(t *testing.T) {
	entries := []models.ExerciseLibraryEntry{
		libEntry("Crucifixo", "chest", "Intermediate"),
		libEntry("Chest Press", "chest", "beginner"),
		libEntry("Flexão", "chest", ""),
	}
	got := candidateAlternatives(entries, "supino", "chest", "intermediate")
	require.Len(t, got, 2)
	// case-insensitive match, and blank library difficulty never filters out
	assert.Equal(t, "Crucifixo", got[0].Name)
	assert.Equal(t, "Flexão", got[1].Name)
}

func TestBuildAlternativesPromptListsCandidates(t *testing.T) {
	req := AlternativesRequest{
		ExerciseName: "supino",
		MuscleGroup:  "peito",
		Reason:       "máquina ocupada",
		Difficulty:   "intermediate",
	}
	candidates := []models.ExerciseLibraryEntry{
		{Name: "Crucifixo", Difficulty: "intermediate", Equipment: "halteres"},
	}
	prompt := buildAlternativesPrompt(req, candidates)
	assert.Contains(t, prompt, `"supino"`)
	assert.Contains(t, prompt, "máquina ocupada")
	assert.Contains(t, prompt, "Crucifixo")
	assert.Contains(t, prompt, "halteres")
}

func TestBuildAlternativesPromptEmptyCatalog(t *testing.T) {
	prompt := buildAlternativesPrompt(AlternativesRequest{ExerciseName: "supino", MuscleGroup: "peito"}, nil)
	assert.True(t, strings.Contains(prompt, "nenhum catalogado"))
}
