package model

// Status is the outcome of a win scan: no winner yet, or the first winning line found
type Status struct {
	Line []Piece `json:"line,omitempty"`
}

// Undetermined returns a status with no winner
func Undetermined() Status {
	return Status{}
}

// HasWinner reports whether a winning line was found
func (s Status) HasWinner() bool {
	return len(s.Line) > 0
}

// Winner returns the side owning the winning line
func (s Status) Winner() (Side, bool) {
	if !s.HasWinner() {
		return Black, false
	}
	return s.Line[0].Side, true
}
