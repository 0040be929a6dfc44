package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/stackline/internal/model"
)

func newBoard(t *testing.T, cfg model.BoardConfig) *Board {
	t.Helper()
	b, err := New(cfg)
	require.NoError(t, err)
	return b
}

func place(t *testing.T, b *Board, side model.Side, x, y int) model.Piece {
	t.Helper()
	p, err := b.Place(model.PlacementRequest{Side: side, X: x, Y: y})
	require.NoError(t, err)
	return p
}

func zOf(t *testing.T, p model.Piece) int {
	t.Helper()
	z, ok := p.Z()
	require.True(t, ok, "piece %v is not placed", p)
	return z
}

func smallConfig() model.BoardConfig {
	return model.BoardConfig{XRad: 2, YRad: 2, MaxHeight: 4, WinLen: 5}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(model.BoardConfig{XRad: 1, YRad: 1, MaxHeight: 0, WinLen: 5})
	assert.ErrorIs(t, err, model.ErrInvalidBoardConfig)
}

func TestPlaceAssignsColumnHeight(t *testing.T) {
	b := newBoard(t, smallConfig())

	moves := []model.PlacementRequest{
		{Side: model.White, X: 0, Y: 0},
		{Side: model.Black, X: 0, Y: 0},
		{Side: model.White, X: 1, Y: -1},
		{Side: model.Black, X: 0, Y: 0},
		{Side: model.White, X: 1, Y: -1},
		{Side: model.Black, X: -2, Y: 2},
	}

	for _, req := range moves {
		before := b.ColumnLen(req.X, req.Y)
		p, err := b.Place(req)
		require.NoError(t, err)
		assert.Equal(t, before, zOf(t, p))
		assert.Equal(t, before+1, b.ColumnLen(req.X, req.Y))
	}

	total := 0
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			n := b.ColumnLen(x, y)
			total += n
			for z := 0; z < n; z++ {
				p, ok, err := b.Get(x, y, z)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, z, zOf(t, p))
			}
		}
	}
	assert.Equal(t, total, b.Len())
	assert.Len(t, b.History(), len(moves))
}

func TestHistoryKeepsGlobalOrder(t *testing.T) {
	b := newBoard(t, smallConfig())
	first := place(t, b, model.White, 1, 1)
	second := place(t, b, model.Black, -1, 0)
	third := place(t, b, model.White, 1, 1)

	history := b.History()
	require.Len(t, history, 3)
	assert.True(t, history[0].Equal(first))
	assert.True(t, history[1].Equal(second))
	assert.True(t, history[2].Equal(third))
}

func TestPlaceIssuesDistinctIDs(t *testing.T) {
	b := newBoard(t, smallConfig())

	seen := map[model.PieceID]bool{}
	for i := 0; i < 6; i++ {
		p := place(t, b, model.White, i%3-1, 0)
		assert.False(t, seen[p.ID], "id %d reused", p.ID)
		assert.Equal(t, model.PieceID(i), p.ID)
		seen[p.ID] = true
	}
}

func TestPlaceOutOfBounds(t *testing.T) {
	b := newBoard(t, smallConfig())
	place(t, b, model.White, 0, 0)

	for _, pos := range [][2]int{{3, 0}, {-3, 0}, {0, 3}, {0, -3}, {5, 5}} {
		_, err := b.Place(model.PlacementRequest{Side: model.Black, X: pos[0], Y: pos[1]})
		assert.ErrorIs(t, err, model.ErrOutOfBounds, "position %v", pos)
	}
	assert.Equal(t, 1, b.Len())
}

func TestPlaceHeightExceeded(t *testing.T) {
	cfg := smallConfig()
	b := newBoard(t, cfg)

	for i := 0; i < cfg.MaxHeight; i++ {
		place(t, b, model.Side(i%2 == 0), 0, 0)
	}

	_, err := b.Place(model.PlacementRequest{Side: model.White, X: 0, Y: 0})
	assert.ErrorIs(t, err, model.ErrHeightExceeded)
	assert.Equal(t, cfg.MaxHeight, b.ColumnLen(0, 0))
	assert.Equal(t, cfg.MaxHeight, b.Len())

	// Other columns are unaffected
	p := place(t, b, model.White, 1, 0)
	assert.Equal(t, 0, zOf(t, p))
}

func TestGet(t *testing.T) {
	b := newBoard(t, smallConfig())
	placed := place(t, b, model.White, 1, 2)

	p, ok, err := b.Get(1, 2, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, p.Equal(placed))

	_, ok, err = b.Get(1, 2, 1)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = b.Get(1, 2, -1)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = b.Get(3, 0, 0)
	assert.ErrorIs(t, err, model.ErrOutOfBounds)
}

func TestTop(t *testing.T) {
	b := newBoard(t, smallConfig())

	_, ok := b.Top(0, 0)
	assert.False(t, ok)

	place(t, b, model.White, 0, 0)
	second := place(t, b, model.Black, 0, 0)

	top, ok := b.Top(0, 0)
	require.True(t, ok)
	assert.True(t, top.Equal(second))

	_, ok = b.Top(10, -10)
	assert.False(t, ok)
}

func TestLoadReplaysPlacements(t *testing.T) {
	requests := []model.PlacementRequest{
		{Side: model.White, X: 0, Y: 0},
		{Side: model.Black, X: 0, Y: 0},
		{Side: model.White, X: -1, Y: 2},
	}

	b, err := Load(smallConfig(), requests)
	require.NoError(t, err)

	history := b.History()
	require.Len(t, history, 3)
	assert.Equal(t, 1, zOf(t, history[1]))
	assert.Equal(t, model.PieceID(2), history[2].ID)

	// Replaying the same log yields identical pieces, identities included
	again, err := Load(smallConfig(), requests)
	require.NoError(t, err)
	assert.Equal(t, history, again.History())
}

func TestLoadFailsOnBadPlacement(t *testing.T) {
	requests := []model.PlacementRequest{
		{Side: model.White, X: 0, Y: 0},
		{Side: model.Black, X: 9, Y: 0},
	}

	_, err := Load(smallConfig(), requests)
	assert.ErrorIs(t, err, model.ErrOutOfBounds)
}

func TestSnapshot(t *testing.T) {
	b := newBoard(t, smallConfig())
	place(t, b, model.White, 1, 0)
	place(t, b, model.Black, -1, 2)
	place(t, b, model.White, 1, 0)

	snap := b.Snapshot()
	assert.Equal(t, 2, snap.XRad)
	assert.Equal(t, 2, snap.YRad)
	assert.Equal(t, 4, snap.MaxHeight)
	assert.Equal(t, 5, snap.WinLen)
	assert.Equal(t, 3, snap.PieceCount)
	require.Len(t, snap.Columns, 2)

	assert.Equal(t, -1, snap.Columns[0].X)
	assert.Equal(t, 2, snap.Columns[0].Y)
	assert.Equal(t, 1, snap.Columns[1].X)
	assert.Len(t, snap.Columns[1].Pieces, 2)

	assert.NotNil(t, snap.ColumnAt(1, 0))
	assert.Nil(t, snap.ColumnAt(0, 0))
	assert.False(t, snap.Status.HasWinner())
}
