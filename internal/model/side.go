package model

import (
	"fmt"
	"strings"
)

// Side is the colour a piece belongs to
type Side bool

const (
	White Side = true
	Black Side = false
)

// ParseSide accepts "w", "white", "b" or "black" in any case
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White, nil
	case "b", "black":
		return Black, nil
	default:
		return Black, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	return !s
}

// Letter returns the single-character form used in text dumps
func (s Side) Letter() string {
	if s == White {
		return "W"
	}
	return "B"
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// MarshalText encodes the side as "white" or "black"
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes any form accepted by ParseSide
func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}
