package engine

import (
	"fmt"

	"github.com/mcoot/stackline/internal/model"
)

// Board is the grid of columns plus the global placement history
type Board struct {
	cfg      model.BoardConfig
	grid     [][]Column // grid[x+XRad][y+YRad]
	history  []model.Piece
	ids      IDIssuer
	detector Detector
	status   model.Status
}

// New creates an empty board
func New(cfg model.BoardConfig) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := make([][]Column, cfg.Width())
	for i := range grid {
		grid[i] = make([]Column, cfg.Depth())
	}

	return &Board{
		cfg:      cfg,
		grid:     grid,
		detector: Detector{WinLen: cfg.WinLen},
		status:   model.Undetermined(),
	}, nil
}

// Load creates a board and replays the given requests through Place, in order.
// It fails on the first request that cannot be placed.
func Load(cfg model.BoardConfig, requests []model.PlacementRequest) (*Board, error) {
	b, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for i, req := range requests {
		if _, err := b.Place(req); err != nil {
			return nil, fmt.Errorf("replaying placement %d: %w", i, err)
		}
	}
	return b, nil
}

// Place drops a piece into column (req.X, req.Y). The returned piece carries
// its assigned height and identity. On error the board is unchanged.
func (b *Board) Place(req model.PlacementRequest) (model.Piece, error) {
	col, err := b.column(req.X, req.Y)
	if err != nil {
		return model.Piece{}, err
	}
	if col.Len() >= b.cfg.MaxHeight {
		return model.Piece{}, fmt.Errorf("%w: column (%d, %d) holds %d", model.ErrHeightExceeded, req.X, req.Y, b.cfg.MaxHeight)
	}

	height, err := model.PlacedAt(col.Len())
	if err != nil {
		return model.Piece{}, err
	}

	piece := model.Piece{
		ID:     b.ids.Issue(),
		Side:   req.Side,
		X:      req.X,
		Y:      req.Y,
		Height: height,
	}
	col.push(piece)
	b.history = append(b.history, piece)
	b.status = b.detector.Check(b)

	return piece, nil
}

// Get returns the piece at (x, y, z). An empty cell is not an error; a column
// outside the board is.
func (b *Board) Get(x, y, z int) (model.Piece, bool, error) {
	col, err := b.column(x, y)
	if err != nil {
		return model.Piece{}, false, err
	}
	p, ok := col.At(z)
	return p, ok, nil
}

// Top returns the highest piece in column (x, y). Out-of-range columns are
// reported as empty.
func (b *Board) Top(x, y int) (model.Piece, bool) {
	col, err := b.column(x, y)
	if err != nil {
		return model.Piece{}, false
	}
	return col.Top()
}

// ColumnLen returns the stack height at (x, y), or 0 outside the board
func (b *Board) ColumnLen(x, y int) int {
	col, err := b.column(x, y)
	if err != nil {
		return 0
	}
	return col.Len()
}

// InBounds reports whether (x, y) is a column on this board
func (b *Board) InBounds(x, y int) bool {
	return b.cfg.InBounds(x, y)
}

// Config returns the board dimensions and win rule
func (b *Board) Config() model.BoardConfig {
	return b.cfg
}

// Len returns the number of pieces placed
func (b *Board) Len() int {
	return len(b.history)
}

// History returns every placed piece in placement order
func (b *Board) History() []model.Piece {
	result := make([]model.Piece, len(b.history))
	copy(result, b.history)
	return result
}

// Status returns the result of the win scan run after the last placement
func (b *Board) Status() model.Status {
	return b.status
}

// at is the lookup used by the line walk: anything off the board is just absent
func (b *Board) at(x, y, z int) (model.Piece, bool) {
	col, err := b.column(x, y)
	if err != nil {
		return model.Piece{}, false
	}
	return col.At(z)
}

func (b *Board) column(x, y int) (*Column, error) {
	if !b.cfg.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d)", model.ErrOutOfBounds, x, y)
	}
	return &b.grid[x+b.cfg.XRad][y+b.cfg.YRad], nil
}

// Rescan runs a full-history win scan. The stored status is not changed.
func (b *Board) Rescan() model.Status {
	return b.detector.CheckAll(b)
}
