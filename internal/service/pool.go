package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-roster-service/internal/generator"
	"github.com/maxviazov/cricket-roster-service/internal/model"
)

// GenerationFailedMessage is shown to the user when the initial pool cannot be fetched.
const GenerationFailedMessage = "Failed to generate players. Please check the API key and try again."

type poolService struct {
	s     *Session
	gen   generator.Generator
	count int
	log   zerolog.Logger
}

// NewPoolService wires the generation collaborator. count is the initial pool size.
func NewPoolService(s *Session, gen generator.Generator, count int, logger zerolog.Logger) PoolService {
	l := logger.With().Str("module", "service").Str("component", "pool").Logger()
	return &poolService{s: s, gen: gen, count: count, log: l}
}

// Load fetches the initial pool. The generator runs outside the session lock so reads
// keep working while it is pending. A second Load while one is in flight is rejected,
// and Load after success does nothing.
func (p *poolService) Load(ctx context.Context) error {
	start := time.Now()
	skip := false
	err := p.s.do(ctx, func() error {
		if p.s.inFlight {
			return ErrPoolNotReady
		}
		if p.s.pool.Status == model.PoolReady {
			skip = true
			return nil
		}
		p.s.inFlight = true
		p.s.pool = model.PoolState{Status: model.PoolLoading}
		return nil
	})
	if err != nil || skip {
		return err
	}

	drafts, genErr := p.gen.Generate(ctx, p.count)

	// the outcome must be recorded even if ctx was canceled meanwhile
	err = p.s.do(context.WithoutCancel(ctx), func() error {
		p.s.inFlight = false
		if genErr != nil {
			p.s.pool = model.PoolState{Status: model.PoolFailed, Error: GenerationFailedMessage, Size: p.s.store.Len()}
			return nil
		}
		p.s.store.Append(drafts)
		p.s.pool = model.PoolState{Status: model.PoolReady, Size: p.s.store.Len()}
		return nil
	})
	if err != nil {
		return err
	}
	if genErr != nil {
		p.log.Error().Err(genErr).Int("count", p.count).Msg("initial pool generation failed")
		return genErr
	}
	p.log.Info().Dur("took", time.Since(start)).Int("count", len(drafts)).Msg("player pool ready")
	return nil
}

// Retry re-invokes the same generation call. There is no automatic retry.
func (p *poolService) Retry(ctx context.Context) error {
	p.log.Info().Msg("retrying pool generation")
	return p.Load(ctx)
}

func (p *poolService) State(ctx context.Context) (model.PoolState, error) {
	var out model.PoolState
	err := p.s.do(ctx, func() error {
		out = p.s.pool
		return nil
	})
	return out, err
}

// Ping reports readiness: team building is only possible once the pool is loaded.
func (p *poolService) Ping(ctx context.Context) error {
	st, err := p.State(ctx)
	if err != nil {
		return err
	}
	if st.Status != model.PoolReady {
		return ErrPoolNotReady
	}
	return nil
}
