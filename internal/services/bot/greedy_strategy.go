package bot

import (
	"github.com/mcoot/stackline/internal/engine"
	"github.com/mcoot/stackline/internal/model"
)

// GreedyStrategy completes its own line when it can, blocks the opponent's
// when it must, and otherwise defers to a fallback strategy
type GreedyStrategy struct {
	fallback Strategy
}

// NewGreedyStrategy creates a GreedyStrategy
func NewGreedyStrategy(fallback Strategy) *GreedyStrategy {
	return &GreedyStrategy{fallback: fallback}
}

// ChooseColumn looks one move ahead for either side
func (s *GreedyStrategy) ChooseColumn(b *engine.Board, side model.Side) (model.PlacementRequest, bool) {
	open := openColumns(b)
	if len(open) == 0 {
		return model.PlacementRequest{}, false
	}

	if req, ok := completingMove(b, open, side); ok {
		req.Side = side
		return req, true
	}
	if req, ok := completingMove(b, open, side.Opponent()); ok {
		req.Side = side
		return req, true
	}
	return s.fallback.ChooseColumn(b, side)
}

// completingMove finds the first open column where a piece of side would win
func completingMove(b *engine.Board, open []model.PlacementRequest, side model.Side) (model.PlacementRequest, bool) {
	detector := engine.Detector{WinLen: b.Config().WinLen}
	for _, req := range open {
		// The landing piece is not on the board yet; the walk only reads its neighbours
		candidate, err := model.NewPlacedPiece(side, req.X, req.Y, b.ColumnLen(req.X, req.Y))
		if err != nil {
			continue
		}
		if detector.CheckSingle(b, candidate).HasWinner() {
			return req, true
		}
	}
	return model.PlacementRequest{}, false
}
