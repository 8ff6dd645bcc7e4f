package memory

import (
	"context"
	"sync"

	"github.com/maxviazov/cricket-roster-service/internal/repository"
)

type txKey struct{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, true)
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// txManager is a single-writer lock. Nested WithinTx calls on the same context run inline.
type txManager struct{ mu sync.Mutex }

func NewTxManager() repository.TxManager { return &txManager{} }

func (m *txManager) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(withTx(ctx))
}

// ensure interfaces are satisfied at compile time
var _ repository.TxManager = (*txManager)(nil)
