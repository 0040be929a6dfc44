package engine

import "github.com/mcoot/stackline/internal/model"

// Detector scans a board for a line of WinLen same-side pieces
type Detector struct {
	WinLen int
}

// CheckSingle looks for a winning line through p. Each direction is walked at
// most WinLen-1 steps either way, stopping at the first empty, off-board or
// opposing cell. The first direction that reaches WinLen is returned; later
// directions are not examined. An unplaced piece never wins.
func (d Detector) CheckSingle(b *Board, p model.Piece) model.Status {
	z, ok := p.Z()
	if !ok || d.WinLen <= 0 {
		return model.Undetermined()
	}

	for _, dir := range Directions {
		forward := d.walk(b, p, z, dir)
		backward := d.walk(b, p, z, dir.Reverse())

		if 1+len(forward)+len(backward) < d.WinLen {
			continue
		}

		line := make([]model.Piece, 0, 1+len(forward)+len(backward))
		for i := len(backward) - 1; i >= 0; i-- {
			line = append(line, backward[i])
		}
		line = append(line, p)
		line = append(line, forward...)
		return model.Status{Line: line}
	}

	return model.Undetermined()
}

// Check runs CheckSingle over the last 2*WinLen pieces of the history, oldest
// first, and returns the first line found.
//
// This assumes a new line can only be completed by a recently placed piece.
// A line built entirely from older pieces is not reported, so the result is
// unreliable for boards bulk-loaded out of causal order or scanned with a
// different WinLen than they were played with. Use CheckAll there.
func (d Detector) Check(b *Board) model.Status {
	window := 2 * d.WinLen
	start := len(b.history) - window
	if start < 0 {
		start = 0
	}
	return d.scan(b, b.history[start:])
}

// CheckAll runs CheckSingle over the whole history, oldest first
func (d Detector) CheckAll(b *Board) model.Status {
	return d.scan(b, b.history)
}

func (d Detector) scan(b *Board, pieces []model.Piece) model.Status {
	for _, p := range pieces {
		if !p.IsPlaced() {
			continue
		}
		if status := d.CheckSingle(b, p); status.HasWinner() {
			return status
		}
	}
	return model.Undetermined()
}

// walk collects matching pieces from the origin outward along dir
func (d Detector) walk(b *Board, origin model.Piece, z int, dir Direction) []model.Piece {
	var matched []model.Piece
	for i := 1; i < d.WinLen; i++ {
		p, ok := b.at(origin.X+i*dir.DX, origin.Y+i*dir.DY, z+i*dir.DZ)
		if !ok || p.Side != origin.Side {
			break
		}
		matched = append(matched, p)
	}
	return matched
}
