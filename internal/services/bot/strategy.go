package bot

import (
	"github.com/mcoot/stackline/internal/engine"
	"github.com/mcoot/stackline/internal/model"
)

// Strategy defines how a bot chooses a column to drop into
type Strategy interface {
	// ChooseColumn returns the move to make for side, or false if every column is full
	ChooseColumn(b *engine.Board, side model.Side) (model.PlacementRequest, bool)
}

// openColumns lists columns with room left, ordered by x then y
func openColumns(b *engine.Board) []model.PlacementRequest {
	cfg := b.Config()
	var open []model.PlacementRequest
	for x := -cfg.XRad; x <= cfg.XRad; x++ {
		for y := -cfg.YRad; y <= cfg.YRad; y++ {
			if b.ColumnLen(x, y) < cfg.MaxHeight {
				open = append(open, model.PlacementRequest{X: x, Y: y})
			}
		}
	}
	return open
}
