package pipemaze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Enclosed counts the grid points strictly inside the loop by testing
// every point strictly inside the bounding box of its vertices.
//
// Time: O(W·H·V) for a W×H bounding box and V vertices.
func (l *Loop) Enclosed() int {
	vs := l.Vertices()
	minX, minY, maxX, maxY := bounds(vs)
	n := 0
	for y := minY + 1; y < maxY; y++ {
		for x := minX + 1; x < maxX; x++ {
			if contains(vs, Position{X: x, Y: y}) {
				n++
			}
		}
	}
	return n
}

// EnclosedPick counts the same points as Enclosed using the shoelace area
// and Pick's theorem, A = I + B/2 - 1, where the loop's cells are the
// boundary points B.
//
// Time: O(V).
func (l *Loop) EnclosedPick() int {
	vs := l.Vertices()
	twiceArea := 0
	for i := range vs {
		a, b := vs[i], vs[(i+1)%len(vs)]
		twiceArea += a.X*b.Y - b.X*a.Y
	}
	if twiceArea < 0 {
		twiceArea = -twiceArea
	}
	return (twiceArea - l.Len() + 2) / 2
}

// EnclosedFill counts the same points as Enclosed by flood filling a
// doubled-resolution copy of the width×height maze, in which the loop is a
// solid wall. Cells that join the border are outside; so is the gap
// between two parallel pipes, which the doubling opens up.
//
// Time: O(W·H·α(W·H)).
func (l *Loop) EnclosedFill(width, height int) (int, error) {
	w2, h2 := 2*width+1, 2*height+1
	wall := make([]bool, w2*h2)
	at := func(x, y int) int { return y*w2 + x }

	cells := l.Cells()
	for i, c := range cells {
		if c.X < 0 || c.Y < 0 || c.X >= width || c.Y >= height {
			return 0, fmt.Errorf("pipemaze: loop cell %v outside %dx%d maze", c, width, height)
		}
		n := cells[(i+1)%len(cells)]
		wall[at(2*c.X+1, 2*c.Y+1)] = true
		wall[at(c.X+n.X+1, c.Y+n.Y+1)] = true
	}

	outside := disjoint.NewElement()
	sets := make([]*disjoint.Element, w2*h2)
	for y := 0; y < h2; y++ {
		for x := 0; x < w2; x++ {
			i := at(x, y)
			if wall[i] {
				continue
			}
			sets[i] = disjoint.NewElement()
			if x == 0 || y == 0 || x == w2-1 || y == h2-1 {
				disjoint.Union(sets[i], outside)
			}
			if x > 0 && sets[at(x-1, y)] != nil {
				disjoint.Union(sets[i], sets[at(x-1, y)])
			}
			if y > 0 && sets[at(x, y-1)] != nil {
				disjoint.Union(sets[i], sets[at(x, y-1)])
			}
		}
	}

	n := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s := sets[at(2*x+1, 2*y+1)]
			if s != nil && s.Find() != outside.Find() {
				n++
			}
		}
	}
	return n, nil
}

// Inside reports whether p lies strictly inside the loop.
func (l *Loop) Inside(p Position) bool {
	return contains(l.Vertices(), p)
}

func bounds(vs []Position) (minX, minY, maxX, maxY int) {
	for i, v := range vs {
		if i == 0 {
			minX, maxX, minY, maxY = v.X, v.X, v.Y, v.Y
			continue
		}
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	return
}

// contains is an even-odd ray cast towards +x. Points on an edge are not
// inside.
func contains(poly []Position, p Position) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if onSegment(a, b, p) {
			return false
		}
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// Does the edge cross the ray right of p? Compare
		// p.X < a.X + (p.Y-a.Y)(b.X-a.X)/(b.Y-a.Y) without dividing.
		dy := b.Y - a.Y
		lhs := (p.X - a.X) * dy
		rhs := (p.Y - a.Y) * (b.X - a.X)
		if (dy > 0 && lhs < rhs) || (dy < 0 && lhs > rhs) {
			in = !in
		}
	}
	return in
}

func onSegment(a, b, p Position) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if cross != 0 {
		return false
	}
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}
