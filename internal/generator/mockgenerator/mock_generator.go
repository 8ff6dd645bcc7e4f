package mockgenerator

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/maxviazov/cricket-roster-service/internal/model"
)

type Generator struct {
	mock.Mock
}

func (g *Generator) Generate(ctx context.Context, count int) ([]model.PlayerDraft, error) {
	args := g.Called(ctx, count)

	var res []model.PlayerDraft
	if args.Get(0) != nil {
		res = args.Get(0).([]model.PlayerDraft)
	}

	return res, args.Error(1)
}
