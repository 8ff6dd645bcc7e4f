package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-roster-service/internal/importer"
	"github.com/maxviazov/cricket-roster-service/internal/model"
)

func TestParse_Valid(t *testing.T) {
	payload := `[
		{"name": "Kane Root", "country": "England", "role": "All-Rounder",
		 "stats": {"runs": 3200, "wickets": 90, "battingAverage": 35.2, "highestRun": 150, "highestWicket": "4/22", "manOfTheMatch": 6}},
		{"id": 3, "name": "Minimal"}
	]`
	got, err := importer.Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, model.RoleAllRounder, got[0].Role)
	assert.Equal(t, 90, got[0].Stats.Wickets)
	assert.Equal(t, "4/22", got[0].Stats.HighestWicket)

	assert.Equal(t, "Minimal", got[1].Name)
	assert.Equal(t, model.RoleBatsman, got[1].Role)
}

func TestParse_IgnoresIDValue(t *testing.T) {
	payload := `[{"name": "a", "id": "abc"}, {"name": "b", "id": {"n": 1}}, {"name": "c", "id": null}]`
	got, err := importer.Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestParse_EmptyArray(t *testing.T) {
	got, err := importer.Parse(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", `players!`},
		{"object instead of array", `{"name": "x"}`},
		{"null", `null`},
		{"element not object", `["x"]`},
		{"missing name", `[{"country": "India"}]`},
		{"name not string", `[{"name": 42}]`},
		{"wrong stat type", `[{"name": "x", "stats": {"runs": "many"}}]`},
		{"unknown field", `[{"name": "x", "nickname": "y"}]`},
		{"unknown role", `[{"name": "x", "role": "Captain"}]`},
		{"second element bad", `[{"name": "ok"}, {"nom": "bad"}]`},
		{"upper-case name key", `[{"NAME": "upper"}]`},
		{"mixed-case key next to name", `[{"name": "x", "Country": "India"}]`},
		{"mixed-case stats key", `[{"name": "x", "stats": {"Runs": 10}}]`},
		{"stats not object", `[{"name": "x", "stats": [1]}]`},
		{"null name", `[{"name": null}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := importer.Parse(strings.NewReader(tc.payload))
			assert.ErrorIs(t, err, importer.ErrImportFormat)
			assert.Nil(t, got)
		})
	}
}

func TestParse_TooLarge(t *testing.T) {
	big := `["` + strings.Repeat("a", importer.MaxPayloadBytes) + `"]`
	_, err := importer.Parse(strings.NewReader(big))
	assert.ErrorIs(t, err, importer.ErrImportFormat)
}
