package pipemaze

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the package logger. It is quiet unless the caller raises its
// level or replaces it.
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.WarnLevel)
}

// Maze is the parsed topology: every pipe and corner keyed by the cell a
// walk enters it by, plus the start. It is not modified after Parse.
type Maze struct {
	Start    Position
	Elements map[Position]Element
	Width    int
	Height   int
}

// builder accumulates a Maze during Parse.
type builder struct {
	start    Position
	hasStart bool
	elements map[Position]Element
}

func (b *builder) insert(e Element) error {
	p := e.At()
	if old, ok := b.elements[p]; ok {
		return &StructureError{Pos: p, Err: ErrConflict, Detail: string([]rune{old.Rune(), e.Rune()})}
	}
	b.elements[p] = e
	return nil
}

// addRun stores a straight run of n cells beginning at first, travelling
// in fwd, under both of its ends.
func (b *builder) addRun(first Position, n int, fwd Direction) error {
	last := first
	for i := 1; i < n; i++ {
		last = fwd.Step(last)
	}
	if err := b.insert(&Pipe{Start: first, End: last, Dir: fwd}); err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	return b.insert(&Pipe{Start: last, End: first, Dir: fwd.Opposite()})
}

// addRow takes the start, the corners and the horizontal runs of row y.
func (b *builder) addRow(y int, row string) error {
	toks, err := Tokenize(row)
	if err != nil {
		err.(*ParseError).Line = y + 1
		return err
	}
	for _, t := range toks {
		p := Position{X: t.Offset, Y: y}
		switch t.Kind {
		case TokStart:
			if b.hasStart {
				return &StructureError{Pos: p, Err: ErrManyStarts, Detail: "first at " + b.start.String()}
			}
			b.start, b.hasStart = p, true
		case TokHorizontal:
			err = b.addRun(p, t.Len, East)
		case TokCorner:
			err = b.insert(&Corner{Pos: p, Shape: t.Shape})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// addColumn takes the vertical runs of column x; everything else in it was
// already seen by addRow.
func (b *builder) addColumn(x int, col string) error {
	toks, err := Tokenize(col)
	if err != nil {
		pe := err.(*ParseError)
		pe.Line, pe.Col = pe.Col, x+1
		return pe
	}
	for _, t := range toks {
		if t.Kind != TokVertical {
			continue
		}
		if err := b.addRun(Position{X: x, Y: t.Offset}, t.Len, South); err != nil {
			return err
		}
	}
	return nil
}

// Parse builds a Maze from its text. Rows are separated by newlines; a
// trailing newline and carriage returns are ignored.
func Parse(input string) (*Maze, error) {
	input = strings.ReplaceAll(input, "\r", "")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil, &ParseError{Err: ErrEmptyInput}
	}
	rows := strings.Split(input, "\n")
	width := len(rows[0])

	b := &builder{elements: make(map[Position]Element)}
	cols := make([][]byte, width)
	for y, row := range rows {
		if len(row) != width {
			return nil, &ParseError{Line: y + 1, Err: ErrRagged}
		}
		for x := 0; x < width; x++ {
			cols[x] = append(cols[x], row[x])
		}
		if err := b.addRow(y, row); err != nil {
			return nil, err
		}
	}
	for x, col := range cols {
		if err := b.addColumn(x, string(col)); err != nil {
			return nil, err
		}
	}
	if !b.hasStart {
		return nil, &StructureError{Err: ErrNoStart}
	}

	m := &Maze{
		Start:    b.start,
		Elements: b.elements,
		Width:    width,
		Height:   len(rows),
	}
	Log.WithFields(logrus.Fields{
		"width":    m.Width,
		"height":   m.Height,
		"start":    m.Start,
		"elements": len(m.Elements),
	}).Debug("parsed maze")
	return m, nil
}
