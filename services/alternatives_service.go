package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"gorm.io/gorm"
)

// AlternativesService asks a completion model for substitutions when an
// exercise machine is busy or unavailable.
type AlternativesService struct {
	db     *gorm.DB
	client *http.Client
	apiKey string
	apiURL string
	model  string
}

func NewAlternativesService(db *gorm.DB) *AlternativesService {
	apiURL := os.Getenv("AI_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}
	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &AlternativesService{
		db:     db,
		client: &http.Client{Timeout: 30 * time.Second},
		apiKey: os.Getenv("AI_API_KEY"),
		apiURL: apiURL,
		model:  model,
	}
}

type AlternativesRequest struct {
	ExerciseName string `json:"exerciseName" binding:"required"`
	MuscleGroup  string `json:"muscleGroup" binding:"required"`
	Difficulty   string `json:"difficulty"`
	Reason       string `json:"reason"`
}

type Alternative struct {
	ExerciseName    string `json:"exerciseName"`
	Reason          string `json:"reason"`
	Difficulty      string `json:"difficulty,omitempty"`
	EquipmentNeeded string `json:"equipmentNeeded,omitempty"`
}

type AlternativesResult struct {
	Alternatives  []Alternative `json:"alternatives"`
	GeneralAdvice string        `json:"generalAdvice"`
}

func (s *AlternativesService) GetAlternatives(ctx context.Context, userID uint, req AlternativesRequest) (*AlternativesResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI_API_KEY not set")
	}

	var entries []models.ExerciseLibraryEntry
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("db error fetching exercise library: %w", err)
	}
	candidates := candidateAlternatives(entries, req.ExerciseName, req.MuscleGroup, req.Difficulty)

	prompt := buildAlternativesPrompt(req, candidates)

	body := map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": "Você é um personal trainer. Responda somente com JSON no formato {\"alternatives\":[{\"exerciseName\":\"...\",\"reason\":\"...\",\"difficulty\":\"...\",\"equipmentNeeded\":\"...\"}],\"generalAdvice\":\"...\"}."},
			{"role": "user", "content": prompt},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0.3,
	}
	b, _ := json.Marshal(body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ai request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ai response error: %w", err)
	}

	// Rate limit and billing errors still flow through the generic
	// failure path, just with a clearer message.
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("ai rate limit exceeded, try again shortly")
	case http.StatusPaymentRequired:
		return nil, fmt.Errorf("ai credits exhausted, add funds to the workspace")
	default:
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("ai api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("ai api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("decode ai response error: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("empty ai response")
	}

	var result AlternativesResult
	if err := json.Unmarshal([]byte(out.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("ai returned malformed suggestions: %w", err)
	}
	return &result, nil
}

// candidateAlternatives filters the library down to same-muscle-group
// entries, matching groups through the canonical-tag table and dropping
// entries that are really the same exercise under another name.
func candidateAlternatives(entries []models.ExerciseLibraryEntry, exerciseName, muscleGroup, difficulty string) []models.ExerciseLibraryEntry {
	tag := NormalizeMuscleGroup(muscleGroup)
	var out []models.ExerciseLibraryEntry
	for _, e := range entries {
		if NormalizeMuscleGroup(e.MuscleGroup) != tag {
			continue
		}
		if AreSynonyms(e.Name, exerciseName) {
			continue
		}
		if difficulty != "" && e.Difficulty != "" && !strings.EqualFold(e.Difficulty, difficulty) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func buildAlternativesPrompt(req AlternativesRequest, candidates []models.ExerciseLibraryEntry) string {
	var sb bytes.Buffer
	fmt.Fprintf(&sb, "O aluno quer substituir o exercício %q (grupo muscular: %s).\n", req.ExerciseName, req.MuscleGroup)
	if req.Reason != "" {
		fmt.Fprintf(&sb, "Motivo: %s\n", req.Reason)
	}
	if req.Difficulty != "" {
		fmt.Fprintf(&sb, "Nível: %s\n", req.Difficulty)
	}
	sb.WriteString("\nExercícios disponíveis na academia para o mesmo grupo:\n")
	if len(candidates) == 0 {
		sb.WriteString("- (nenhum catalogado; sugira exercícios comuns)\n")
	}
	for _, c := range candidates {
		fmt.Fprintf(&sb, "- %s (%s, equipamento: %s)\n", c.Name, c.Difficulty, c.Equipment)
	}
	sb.WriteString("\nSugira 3 a 5 alternativas priorizando a lista acima, com uma justificativa curta para cada uma e um conselho geral.")
	return sb.String()
}
