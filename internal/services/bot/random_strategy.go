package bot

import (
	"github.com/mcoot/stackline/internal/dependencies/random"
	"github.com/mcoot/stackline/internal/engine"
	"github.com/mcoot/stackline/internal/model"
)

// RandomStrategy picks a random column that still has room
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseColumn picks uniformly among open columns
func (s *RandomStrategy) ChooseColumn(b *engine.Board, side model.Side) (model.PlacementRequest, bool) {
	open := openColumns(b)
	if len(open) == 0 {
		return model.PlacementRequest{}, false
	}
	req := open[s.random.Intn(len(open))]
	req.Side = side
	return req, true
}
