package pipemaze

import "strconv"

// Len is the number of cells on the loop, the start included.
func (l *Loop) Len() int {
	n := 1
	for _, e := range l.Elements {
		n += e.Len()
	}
	return n
}

// Farthest is the number of steps along the loop from the start to the
// cell farthest from it.
func (l *Loop) Farthest() int {
	return l.Len() / 2
}

// CheckParity returns ErrOddLoop if the loop has an odd number of cells.
func (l *Loop) CheckParity() error {
	if n := l.Len(); n%2 != 0 {
		return &StructureError{Pos: l.Start, Err: ErrOddLoop, Detail: "length " + strconv.Itoa(n)}
	}
	return nil
}

// StartShape returns the glyph the start cell stands in for.
func (l *Loop) StartShape() rune {
	a, b := l.Entrance, l.Exit.Opposite()
	if a.Axis() == b.Axis() {
		if a.Axis() == Horizontal {
			return '-'
		}
		return '|'
	}
	return rune(shapeOf(a, b))
}

// Vertices returns the polygon the loop traces: the start followed by
// every corner, in walk order.
func (l *Loop) Vertices() []Position {
	vs := []Position{l.Start}
	for _, e := range l.Elements {
		if c, ok := e.(*Corner); ok {
			vs = append(vs, c.Pos)
		}
	}
	return vs
}

// Cells returns every cell of the loop in walk order, starting with the
// start.
func (l *Loop) Cells() []Position {
	cells := make([]Position, 0, l.Len())
	cells = append(cells, l.Start)
	for _, e := range l.Elements {
		switch e := e.(type) {
		case *Corner:
			cells = append(cells, e.Pos)
		case *Pipe:
			p := e.Start
			cells = append(cells, p)
			for p != e.End {
				p = p.Toward(e.End)
				cells = append(cells, p)
			}
		}
	}
	return cells
}
