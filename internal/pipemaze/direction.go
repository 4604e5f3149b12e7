package pipemaze

import "github.com/aocgo/aoc2023"

// Position is a grid cell; x grows east, y grows south.
type Position = aoc.Pt

// Direction is a direction of travel between neighbouring cells.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Axis collapses a Direction to the line it travels along.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (d Direction) Axis() Axis {
	if d == East || d == West {
		return Horizontal
	}
	return Vertical
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Step returns the neighbour of p one cell in direction d.
func (d Direction) Step(p Position) Position {
	switch d {
	case North:
		return p.North()
	case East:
		return p.East()
	case South:
		return p.South()
	default:
		return p.West()
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "invalid"
}

// Connection means "travelling in Dir lands on Pos". The element at Pos
// must accept an arrival in Dir.
type Connection struct {
	Pos Position
	Dir Direction
}
