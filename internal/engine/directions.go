package engine

// Direction is a unit step through the lattice
type Direction struct {
	DX, DY, DZ int
}

// Reverse returns the antipodal direction
func (d Direction) Reverse() Direction {
	return Direction{-d.DX, -d.DY, -d.DZ}
}

// Directions holds one representative of each of the 13 antipodal pairs of
// non-zero vectors in {-1,0,1}^3. The scan order is fixed: axes, then planar
// diagonals, then space diagonals. When several lines qualify at once the
// first direction in this order wins.
var Directions = [13]Direction{
	// Axes
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},

	// Planar diagonals
	{1, 1, 0},
	{1, -1, 0},
	{1, 0, 1},
	{1, 0, -1},
	{0, 1, 1},
	{0, 1, -1},

	// Space diagonals
	{1, 1, 1},
	{1, 1, -1},
	{1, -1, 1},
	{1, -1, -1},
}
