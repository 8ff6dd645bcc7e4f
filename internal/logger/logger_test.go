package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/maxviazov/cricket-roster-service/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName: "test-service",
				Env:         "prod",
				Level:       "info",
				TimeFormat:  "unix",
				Fields:      map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:        "invalid configuration - wrong env",
			config:      &logpkg.LoggerConfig{Env: "wrong-env", Level: "debug"},
			expectError: true,
		},
		{
			name:        "invalid log level",
			config:      &logpkg.LoggerConfig{Env: "prod", Level: "invalid-level"},
			expectError: true,
		},
		{
			name:        "invalid time format",
			config:      &logpkg.LoggerConfig{Env: "prod", TimeFormat: "kitchen"},
			expectError: true,
		},
		{
			name:      "valid staging environment",
			config:    &logpkg.LoggerConfig{Env: "staging", Level: "warn", TimeField: "time", Stacktrace: true},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "valid development environment without debug",
			config:    &logpkg.LoggerConfig{Env: "dev", Level: "info"},
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.config.Output = &bytes.Buffer{}
			_, err := logpkg.New(test.config)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNew_ProdWritesServiceFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := logpkg.New(&logpkg.LoggerConfig{Env: "prod", Level: "info", Output: &buf, ServiceVersion: "9.9.9"})
	require.NoError(t, err)

	l.Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cricket-roster-service", line["service"])
	assert.Equal(t, "9.9.9", line["version"])
	assert.Equal(t, "prod", line["env"])
	assert.Equal(t, "hello", line["message"])
	assert.Contains(t, line, "ts")
}

func TestNew_DevDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	l, err := logpkg.New(&logpkg.LoggerConfig{Env: "dev", Level: "debug", DebugFile: path, Output: &bytes.Buffer{}})
	require.NoError(t, err)

	l.Debug().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNew_StacktraceFromMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := logpkg.New(&logpkg.LoggerConfig{Env: "prod", Level: "info", Output: &buf, Stacktrace: true, StacktraceMinLevel: "warn"})
	require.NoError(t, err)

	l.Info().Msg("quiet")
	l.Warn().Msg("loud")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info, warn map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	require.NoError(t, json.Unmarshal(lines[1], &warn))
	assert.NotContains(t, info, "stack")
	require.Contains(t, warn, "stack")
	assert.Contains(t, warn["stack"], "goroutine")
}

func TestNew_InvalidStacktraceMinLevel(t *testing.T) {
	_, err := logpkg.New(&logpkg.LoggerConfig{Env: "prod", StacktraceMinLevel: "loud", Output: &bytes.Buffer{}})
	assert.Error(t, err)
}
