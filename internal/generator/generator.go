// Package generator produces the initial player pool. Implementations either succeed
// with the full batch or fail with ErrGeneration; partial batches are never returned.
package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/maxviazov/cricket-roster-service/internal/model"
)

// ErrGeneration marks any failure of the generation collaborator.
var ErrGeneration = errors.New("player generation failed")

// Generator creates count fictional players.
type Generator interface {
	Generate(ctx context.Context, count int) ([]model.PlayerDraft, error)
}

func generationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrGeneration, fmt.Sprintf(format, args...))
}

func wrapGenerationError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrGeneration, msg, err)
}
