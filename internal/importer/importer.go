// Package importer turns an uploaded JSON document into player drafts.
// The whole batch is accepted or rejected; nothing is merged from a bad file.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/maxviazov/cricket-roster-service/internal/model"
)

// ErrImportFormat marks a payload that is not an array of player objects.
var ErrImportFormat = errors.New("invalid import format")

// MaxPayloadBytes bounds how much of the input is read.
const MaxPayloadBytes = 4 << 20

// record is the accepted element shape. Unknown keys are rejected; "id" is accepted
// so exported pools can be re-imported, but its value is never looked at.
type record struct {
	ID      json.RawMessage `json:"id"`
	Name    *string         `json:"name"`
	Country string          `json:"country"`
	Role    string          `json:"role"`
	Stats   *recordStats    `json:"stats"`
}

type recordStats struct {
	Runs           int     `json:"runs"`
	Wickets        int     `json:"wickets"`
	BattingAverage float64 `json:"battingAverage"`
	HighestRun     int     `json:"highestRun"`
	HighestWicket  string  `json:"highestWicket"`
	ManOfTheMatch  int     `json:"manOfTheMatch"`
}

// encoding/json folds key case, so keys are matched exactly before the struct decode.
var (
	recordKeys = []string{"id", "name", "country", "role", "stats"}
	statsKeys  = []string{"runs", "wickets", "battingAverage", "highestRun", "highestWicket", "manOfTheMatch"}
)

func formatError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrImportFormat, fmt.Sprintf(format, args...))
}

// Parse reads a JSON array of players. Each element must be an object with a string
// "name"; present fields must have the right JSON types and a known role. A missing
// role defaults to Batsman.
func Parse(r io.Reader) ([]model.PlayerDraft, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read failed: %w", ErrImportFormat, err)
	}
	if len(data) > MaxPayloadBytes {
		return nil, formatError("payload larger than %d bytes", MaxPayloadBytes)
	}
	return ParseBytes(data)
}

// ParseBytes is Parse over an in-memory payload.
func ParseBytes(data []byte) ([]model.PlayerDraft, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, formatError("expected an array of player objects")
	}
	if elems == nil {
		// literal null
		return nil, formatError("expected an array of player objects")
	}

	out := make([]model.PlayerDraft, 0, len(elems))
	for i, raw := range elems {
		d, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("%w (element %d)", err, i)
		}
		out = append(out, d)
	}
	return out, nil
}

func decodeRecord(raw json.RawMessage) (model.PlayerDraft, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.PlayerDraft{}, formatError("element is not an object")
	}
	fields, err := exactKeys(trimmed, recordKeys)
	if err != nil {
		return model.PlayerDraft{}, err
	}
	if name, ok := fields["name"]; !ok || !isJSONString(name) {
		return model.PlayerDraft{}, formatError("missing string field \"name\"")
	}
	if stats, ok := fields["stats"]; ok && !isJSONNull(stats) {
		if _, err := exactKeys(stats, statsKeys); err != nil {
			return model.PlayerDraft{}, fmt.Errorf("%w in \"stats\"", err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	var rec record
	if err := dec.Decode(&rec); err != nil {
		return model.PlayerDraft{}, formatError("%v", err)
	}
	if rec.Name == nil {
		return model.PlayerDraft{}, formatError("missing string field \"name\"")
	}

	role := model.RoleBatsman
	if rec.Role != "" {
		parsed, ok := model.ParseRole(rec.Role)
		if !ok {
			return model.PlayerDraft{}, formatError("unknown role %q", rec.Role)
		}
		role = parsed
	}

	d := model.PlayerDraft{Name: *rec.Name, Country: rec.Country, Role: role}
	if rec.Stats != nil {
		d.Stats = model.PlayerStats(*rec.Stats)
	}
	return d, nil
}

// exactKeys splits an object into its members and rejects any key not spelled
// exactly as one of allowed.
func exactKeys(raw json.RawMessage, allowed []string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, formatError("expected an object")
	}
	for key := range fields {
		if !slices.Contains(allowed, key) {
			return nil, formatError("unknown field %q", key)
		}
	}
	return fields, nil
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
