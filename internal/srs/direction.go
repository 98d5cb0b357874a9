package srs

import "fmt"

// Direction identifies which translation direction a review state tracks.
// The same vocabulary item is scheduled independently per direction.
type Direction string

const (
	// BgToDe shows the Bulgarian word and asks for the German translation.
	BgToDe Direction = "bg-de"
	// DeToBg shows the German word and asks for the Bulgarian translation.
	DeToBg Direction = "de-bg"
)

// MultiplierTableVersion tags the interval multiplier table below.
// Bump it whenever the table values change.
const MultiplierTableVersion = 1

// DefaultMultipliers returns the canonical per-direction interval
// multipliers. Producing German (bg-de) is the harder direction for a
// Bulgarian-speaking learner, so a pass there earns a slightly faster
// interval growth.
func DefaultMultipliers() map[Direction]float64 {
	return map[Direction]float64{
		BgToDe: 1.2,
		DeToBg: 1.1,
	}
}

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == BgToDe || d == DeToBg
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == BgToDe {
		return DeToBg
	}
	return BgToDe
}

// Label returns a human-readable form of the direction.
func (d Direction) Label() string {
	if d == DeToBg {
		return "Немски → Български"
	}
	return "Български → Немски"
}

// ParseDirection parses a direction tag.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown direction %q (want %q or %q)", s, BgToDe, DeToBg)
	}
	return d, nil
}
