package pipemaze

import "fmt"

// Element is a piece of the maze a walk can pass through: a *Pipe or a
// *Corner. The start cell is not an Element.
type Element interface {
	// At is the cell the element is keyed at in Maze.Elements.
	At() Position
	// Accepts reports whether a walk arriving in direction d may enter.
	Accepts(d Direction) bool
	// Next returns where a walk that arrived in direction d leaves to.
	Next(d Direction) (Connection, bool)
	// Len is the number of cells the element covers.
	Len() int
	Rune() rune

	element()
}

// Pipe is a straight run of cells from Start to End, travelled in Dir.
// Every run is stored once per travel direction, keyed at the cell the
// walk enters by, so a run of length 1 is a single Pipe.
type Pipe struct {
	Start, End Position
	Dir        Direction
}

func (p *Pipe) element() {}

func (p *Pipe) At() Position { return p.Start }

func (p *Pipe) Len() int { return p.Start.MDist(p.End) + 1 }

func (p *Pipe) Accepts(d Direction) bool { return d.Axis() == p.Dir.Axis() }

func (p *Pipe) Next(d Direction) (Connection, bool) {
	switch d {
	case p.Dir:
		return Connection{Pos: d.Step(p.End), Dir: d}, true
	case p.Dir.Opposite():
		// Only reachable on a single-cell run, where Start == End.
		return Connection{Pos: d.Step(p.Start), Dir: d}, true
	}
	return Connection{}, false
}

func (p *Pipe) Rune() rune {
	if p.Dir.Axis() == Horizontal {
		return '-'
	}
	return '|'
}

func (p *Pipe) String() string {
	return fmt.Sprintf("%c%v->%v", p.Rune(), p.Start, p.End)
}

// Shape is one of the four 90° bends, named by its glyph.
type Shape rune

const (
	SouthWest Shape = '7'
	NorthWest Shape = 'J'
	NorthEast Shape = 'L'
	SouthEast Shape = 'F'
)

// Ports returns the two sides of a cell the bend opens onto.
func (s Shape) Ports() [2]Direction {
	switch s {
	case SouthWest:
		return [2]Direction{West, South}
	case NorthWest:
		return [2]Direction{West, North}
	case NorthEast:
		return [2]Direction{North, East}
	case SouthEast:
		return [2]Direction{East, South}
	}
	panic(fmt.Sprintf("pipemaze: invalid shape %q", rune(s)))
}

// shapeOf returns the bend opening onto a and b, which must be
// perpendicular.
func shapeOf(a, b Direction) Shape {
	for _, s := range []Shape{SouthWest, NorthWest, NorthEast, SouthEast} {
		p := s.Ports()
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return s
		}
	}
	panic(fmt.Sprintf("pipemaze: no bend joins %v and %v", a, b))
}

// Corner is a single-cell bend.
type Corner struct {
	Pos   Position
	Shape Shape
}

func (c *Corner) element() {}

func (c *Corner) At() Position { return c.Pos }

func (c *Corner) Len() int { return 1 }

func (c *Corner) Rune() rune { return rune(c.Shape) }

// Ports returns the corner's two outgoing connections.
func (c *Corner) Ports() [2]Connection {
	d := c.Shape.Ports()
	return [2]Connection{
		{Pos: d[0].Step(c.Pos), Dir: d[0]},
		{Pos: d[1].Step(c.Pos), Dir: d[1]},
	}
}

// Other returns the port that is not conn. It is false if conn is not one
// of the corner's ports.
func (c *Corner) Other(conn Connection) (Connection, bool) {
	p := c.Ports()
	switch conn {
	case p[0]:
		return p[1], true
	case p[1]:
		return p[0], true
	}
	return Connection{}, false
}

// Accepts reports whether arriving in direction d enters through a port:
// moving east enters by the west side.
func (c *Corner) Accepts(d Direction) bool {
	p := c.Shape.Ports()
	return p[0] == d.Opposite() || p[1] == d.Opposite()
}

func (c *Corner) Next(d Direction) (Connection, bool) {
	if !c.Accepts(d) {
		return Connection{}, false
	}
	// The port the walk came in by, seen from this cell.
	in := Connection{Pos: d.Opposite().Step(c.Pos), Dir: d.Opposite()}
	return c.Other(in)
}

func (c *Corner) String() string {
	return fmt.Sprintf("%c%v", c.Shape, c.Pos)
}
