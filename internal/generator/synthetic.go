package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/maxviazov/cricket-roster-service/internal/model"
)

var (
	firstNames = []string{"Arjun", "Liam", "Kane", "Rashid", "Babar", "Joe", "Quinton", "Shakib", "Trent", "Kusal", "Andre", "Pat", "Imad", "Rohan", "Dwayne", "Marnus"}
	lastNames  = []string{"Sharma", "Taylor", "Khan", "Root", "de Kock", "Hasan", "Boult", "Mendis", "Russell", "Cummins", "Wasim", "Patel", "Bravo", "Smith", "Williams", "Perera"}
	countries  = []string{"India", "Australia", "England", "New Zealand", "Pakistan", "South Africa", "Sri Lanka", "Bangladesh", "West Indies", "Afghanistan"}
)

// synthetic produces plausible players offline. The same seed yields the same sequence.
type synthetic struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthetic returns a deterministic local Generator.
func NewSynthetic(seed uint64) Generator {
	return &synthetic{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *synthetic) Generate(ctx context.Context, count int) ([]model.PlayerDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapGenerationError("canceled", err)
	}
	if count < 0 {
		return nil, generationError("count must not be negative, got %d", count)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.PlayerDraft, 0, count)
	for i := 0; i < count; i++ {
		role := model.Roles[s.rng.IntN(len(model.Roles))]
		out = append(out, model.PlayerDraft{
			Name:    fmt.Sprintf("%s %s", firstNames[s.rng.IntN(len(firstNames))], lastNames[s.rng.IntN(len(lastNames))]),
			Country: countries[s.rng.IntN(len(countries))],
			Role:    role,
			Stats:   s.stats(role),
		})
	}
	return out, nil
}

func (s *synthetic) stats(role model.Role) model.PlayerStats {
	var runs, wickets, highest int
	var avg float64
	switch role {
	case model.RoleBatsman, model.RoleWicketKeeper:
		runs = 1500 + s.rng.IntN(9000)
		wickets = s.rng.IntN(10)
		avg = 28 + s.rng.Float64()*27
		highest = 90 + s.rng.IntN(180)
	case model.RoleBowler:
		runs = 100 + s.rng.IntN(1500)
		wickets = 80 + s.rng.IntN(400)
		avg = 8 + s.rng.Float64()*14
		highest = 20 + s.rng.IntN(60)
	default:
		runs = 1000 + s.rng.IntN(5000)
		wickets = 40 + s.rng.IntN(250)
		avg = 22 + s.rng.Float64()*18
		highest = 60 + s.rng.IntN(140)
	}
	bestWkts := 1 + s.rng.IntN(4)
	if wickets >= 50 {
		bestWkts = 3 + s.rng.IntN(5)
	}
	return model.PlayerStats{
		Runs:           runs,
		Wickets:        wickets,
		BattingAverage: math.Round(avg*100) / 100,
		HighestRun:     highest,
		HighestWicket:  fmt.Sprintf("%d/%d", bestWkts, 10+s.rng.IntN(50)),
		ManOfTheMatch:  s.rng.IntN(25),
	}
}
