package generator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-roster-service/internal/generator"
	"github.com/maxviazov/cricket-roster-service/internal/model"
)

const twoPlayers = `[
  {"id": 17, "name": "Arjun Mehta", "country": "India", "role": "Batsman",
   "stats": {"runs": 5400, "wickets": 3, "battingAverage": 44.5, "highestRun": 183, "highestWicket": "1/12", "manOfTheMatch": 9}},
  {"id": 17, "name": "Liam Boult", "country": "New Zealand", "role": "bowler",
   "stats": {"runs": 600, "wickets": 250, "battingAverage": 12.1, "highestRun": 41, "highestWicket": "6/30", "manOfTheMatch": 4}}
]`

func fakeGemini(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "generationConfig")

		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
			return
		}
		resp := map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{"parts": []any{map[string]any{"text": text}}},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newClient(t *testing.T, url string) generator.Generator {
	t.Helper()
	g, err := generator.NewGemini(generator.GeminiOptions{APIKey: "test-key", BaseURL: url})
	require.NoError(t, err)
	return g
}

func TestGemini_Generate_Success(t *testing.T) {
	srv := fakeGemini(t, http.StatusOK, twoPlayers)
	defer srv.Close()

	players, err := newClient(t, srv.URL).Generate(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Arjun Mehta", players[0].Name)
	assert.Equal(t, model.RoleBowler, players[1].Role)
	assert.Equal(t, "6/30", players[1].Stats.HighestWicket)
}

func TestGemini_Generate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		text   string
	}{
		{"bad status", http.StatusTooManyRequests, ""},
		{"not json", http.StatusOK, "here are your players!"},
		{"unknown role", http.StatusOK, `[{"name":"X","country":"Y","role":"Coach","stats":{}}]`},
		{"missing name", http.StatusOK, `[{"name":"","country":"Y","role":"Bowler","stats":{}}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := fakeGemini(t, tc.status, tc.text)
			defer srv.Close()

			players, err := newClient(t, srv.URL).Generate(context.Background(), 1)
			assert.ErrorIs(t, err, generator.ErrGeneration)
			assert.Nil(t, players)
		})
	}
}

func TestGemini_Generate_Unreachable(t *testing.T) {
	srv := fakeGemini(t, http.StatusOK, twoPlayers)
	url := srv.URL
	srv.Close()

	_, err := newClient(t, url).Generate(context.Background(), 2)
	assert.ErrorIs(t, err, generator.ErrGeneration)
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := generator.NewGemini(generator.GeminiOptions{})
	assert.Error(t, err)
}

func TestSynthetic_Deterministic(t *testing.T) {
	a, err := generator.NewSynthetic(42).Generate(context.Background(), 10)
	require.NoError(t, err)
	b, err := generator.NewSynthetic(42).Generate(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 10)
	for _, p := range a {
		assert.NotEmpty(t, p.Name)
		_, ok := model.ParseRole(string(p.Role))
		assert.True(t, ok)
		assert.GreaterOrEqual(t, p.Stats.Runs, 0)
		assert.GreaterOrEqual(t, p.Stats.BattingAverage, 0.0)
	}
}

func TestSynthetic_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := generator.NewSynthetic(1).Generate(ctx, 3)
	assert.ErrorIs(t, err, generator.ErrGeneration)
}
