package engine

import "github.com/mcoot/stackline/internal/model"

// ColumnSnapshot is the content of one non-empty column
type ColumnSnapshot struct {
	X      int           `json:"x"`
	Y      int           `json:"y"`
	Pieces []model.Piece `json:"pieces"` // Bottom to top
}

// Snapshot is a structural dump of a board, enough for a renderer to rebuild
// what it shows
type Snapshot struct {
	XRad       int              `json:"xrad"`
	YRad       int              `json:"yrad"`
	MaxHeight  int              `json:"max_height"`
	WinLen     int              `json:"win_len"`
	PieceCount int              `json:"piece_count"`
	Columns    []ColumnSnapshot `json:"columns"`
	Status     model.Status     `json:"status"`
}

// Snapshot dumps the non-empty columns ordered by x, then y
func (b *Board) Snapshot() Snapshot {
	columns := []ColumnSnapshot{}
	for x := -b.cfg.XRad; x <= b.cfg.XRad; x++ {
		for y := -b.cfg.YRad; y <= b.cfg.YRad; y++ {
			col := &b.grid[x+b.cfg.XRad][y+b.cfg.YRad]
			if col.Len() == 0 {
				continue
			}
			columns = append(columns, ColumnSnapshot{X: x, Y: y, Pieces: col.Pieces()})
		}
	}

	return Snapshot{
		XRad:       b.cfg.XRad,
		YRad:       b.cfg.YRad,
		MaxHeight:  b.cfg.MaxHeight,
		WinLen:     b.cfg.WinLen,
		PieceCount: len(b.history),
		Columns:    columns,
		Status:     b.status,
	}
}

// ColumnAt returns the snapshot of column (x, y), or nil if it is empty
func (s Snapshot) ColumnAt(x, y int) *ColumnSnapshot {
	for i := range s.Columns {
		if s.Columns[i].X == x && s.Columns[i].Y == y {
			return &s.Columns[i]
		}
	}
	return nil
}
