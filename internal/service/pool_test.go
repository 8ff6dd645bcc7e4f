package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
	"github.com/maxviazov/cricket-roster-service/internal/service"
)

func TestPool_StartsLoading(t *testing.T) {
	h := newHarness(t, 6, nil)
	st, err := h.pool.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.PoolLoading, st.Status)
	assert.ErrorIs(t, h.pool.Ping(context.Background()), service.ErrPoolNotReady)
}

func TestPool_FailureThenRetry(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 6, nil)
	h.fail(t)

	st, err := h.pool.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PoolFailed, st.Status)
	assert.Equal(t, service.GenerationFailedMessage, st.Error)
	assert.Equal(t, 0, st.Size)

	h.gen.On("Generate", mock.Anything, 3).Return(drafts(3), nil).Once()
	require.NoError(t, h.pool.Retry(ctx))

	st, err = h.pool.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PoolReady, st.Status)
	assert.Empty(t, st.Error)
	assert.Equal(t, 3, st.Size)
	assert.NoError(t, h.pool.Ping(ctx))
	h.gen.AssertExpectations(t)
}

func TestPool_LoadAfterReadyIsNoOp(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 6, nil)
	h.ready(t, 3)

	require.NoError(t, h.pool.Retry(ctx))
	h.gen.AssertNumberOfCalls(t, "Generate", 1)

	page, err := h.players.ListPool(ctx, repository.Page{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
}

func TestPool_ConcurrentLoadRejected(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 6, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	h.gen.On("Generate", mock.Anything, 3).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(drafts(3), nil).Once()

	done := make(chan error, 1)
	go func() { done <- h.pool.Load(ctx) }()
	<-started

	assert.ErrorIs(t, h.pool.Load(ctx), service.ErrPoolNotReady)

	// reads are not blocked by the pending fetch
	st, err := h.pool.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PoolLoading, st.Status)

	close(release)
	require.NoError(t, <-done)
	st, err = h.pool.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PoolReady, st.Status)
}
