package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/maxviazov/cricket-roster-service/internal/model"
)

const (
	GeminiURL          = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// GeminiOptions configure the Gemini client. Empty BaseURL and Model use the public defaults.
type GeminiOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type geminiClient struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewGemini builds a Generator backed by the Gemini generateContent API.
func NewGemini(opts GeminiOptions) (Generator, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultGeminiModel
	}
	if opts.BaseURL == "" {
		opts.BaseURL = GeminiURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 1 * time.Minute
	}
	return &geminiClient{
		apiKey:     opts.APIKey,
		model:      opts.Model,
		url:        strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{Timeout: opts.Timeout},
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generatedPlayer mirrors the response schema. The generator's own id is ignored;
// the pool allocator hands out IDs.
type generatedPlayer struct {
	ID      int64             `json:"id"`
	Name    string            `json:"name"`
	Country string            `json:"country"`
	Role    string            `json:"role"`
	Stats   model.PlayerStats `json:"stats"`
}

func playerSchema() map[string]any {
	roles := make([]string, 0, len(model.Roles))
	for _, r := range model.Roles {
		roles = append(roles, string(r))
	}
	return map[string]any{
		"type": "ARRAY",
		"items": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"id":      map[string]any{"type": "INTEGER", "description": "A unique integer ID for the player."},
				"name":    map[string]any{"type": "STRING", "description": "The player's full name."},
				"country": map[string]any{"type": "STRING", "description": "The player's country of origin."},
				"role":    map[string]any{"type": "STRING", "format": "enum", "enum": roles},
				"stats": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"runs":           map[string]any{"type": "INTEGER", "description": "Total career runs."},
						"wickets":        map[string]any{"type": "INTEGER", "description": "Total career wickets."},
						"battingAverage": map[string]any{"type": "NUMBER", "description": "Career batting average."},
						"highestRun":     map[string]any{"type": "INTEGER", "description": "Highest score in a single match."},
						"highestWicket":  map[string]any{"type": "STRING", "description": "Best bowling figures in a match, e.g., '5/25'."},
						"manOfTheMatch":  map[string]any{"type": "INTEGER", "description": "Number of Man of the Match awards."},
					},
					"required": []string{"runs", "wickets", "battingAverage", "highestRun", "highestWicket", "manOfTheMatch"},
				},
			},
			"required": []string{"id", "name", "country", "role", "stats"},
		},
	}
}

func (c *geminiClient) Generate(ctx context.Context, count int) ([]model.PlayerDraft, error) {
	if count <= 0 {
		return []model.PlayerDraft{}, nil
	}
	prompt := fmt.Sprintf("Generate a list of %d unique, fictional cricket players from different countries. "+
		"Ensure the stats are realistic for their specified role. Provide a unique ID for each player.", count)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   playerSchema(),
		},
	})
	if err != nil {
		return nil, wrapGenerationError("error encoding request", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.url, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, wrapGenerationError("error creating http request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapGenerationError("error sending http request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, generationError("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, wrapGenerationError("error parsing response from gemini", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, generationError("empty response from gemini")
	}

	var text strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return decodePlayers(text.String())
}

func decodePlayers(text string) ([]model.PlayerDraft, error) {
	var players []generatedPlayer
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &players); err != nil {
		return nil, wrapGenerationError("error parsing generated players", err)
	}
	out := make([]model.PlayerDraft, 0, len(players))
	for i, p := range players {
		role, ok := model.ParseRole(p.Role)
		if !ok {
			return nil, generationError("player %d has unknown role %q", i, p.Role)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, generationError("player %d has no name", i)
		}
		out = append(out, model.PlayerDraft{Name: p.Name, Country: p.Country, Role: role, Stats: p.Stats})
	}
	return out, nil
}
