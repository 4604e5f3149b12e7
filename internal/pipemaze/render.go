package pipemaze

import (
	"io"

	"github.com/aocgo/aoc2023"
)

const (
	loopColor   = "green"
	insideColor = "yellow"
)

// Render draws input with S replaced by the start's real shape, loop cells
// coloured, cells enclosed by the loop drawn as 'I', and every other cell
// drawn as ground. With color false no escape codes are written.
func Render(w io.Writer, input string, l *Loop, color bool) error {
	onLoop := make(map[Position]bool, l.Len())
	for _, c := range l.Cells() {
		onLoop[c] = true
	}
	vs := l.Vertices()
	minX, minY, maxX, maxY := bounds(vs)

	paint := func(name string) string {
		if !color {
			return ""
		}
		return name
	}
	return aoc.GridFromString(input).Render(w, func(p Position, r rune) (rune, string) {
		switch {
		case p == l.Start:
			return l.StartShape(), paint(loopColor)
		case onLoop[p]:
			return r, paint(loopColor)
		case p.X > minX && p.X < maxX && p.Y > minY && p.Y < maxY && contains(vs, p):
			return 'I', paint(insideColor)
		}
		return '.', ""
	})
}
