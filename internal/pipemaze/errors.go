package pipemaze

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the input has no rows.
	ErrEmptyInput = errors.New("pipemaze: input has no rows")
	// ErrRagged indicates rows of differing widths.
	ErrRagged = errors.New("pipemaze: all rows must have the same width")
	// ErrBadChar indicates a character outside the maze alphabet.
	ErrBadChar = errors.New("pipemaze: unrecognized character")

	// ErrNoStart indicates the maze has no S.
	ErrNoStart = errors.New("pipemaze: no start marker")
	// ErrManyStarts indicates the maze has more than one S.
	ErrManyStarts = errors.New("pipemaze: more than one start marker")
	// ErrConflict indicates two elements were built for one position.
	ErrConflict = errors.New("pipemaze: conflicting elements at one position")
	// ErrEntrances indicates the start has fewer than two connecting neighbours.
	ErrEntrances = errors.New("pipemaze: start needs two connecting neighbours")
	// ErrDeadEnd indicates a connection points at a position with no element.
	ErrDeadEnd = errors.New("pipemaze: connection leads to no element")
	// ErrRejected indicates an element cannot be entered the way the walk arrived.
	ErrRejected = errors.New("pipemaze: element does not accept connection")
	// ErrUnclosed indicates the walk never returned to the start.
	ErrUnclosed = errors.New("pipemaze: walk does not return to start")
	// ErrOddLoop indicates a loop whose length is odd, which no closed
	// rectilinear loop can have.
	ErrOddLoop = errors.New("pipemaze: loop length is odd")
)

// ParseError reports input that does not tokenize.
// Line and Col are 1-based; Line is 0 when the error is not tied to a row.
type ParseError struct {
	Line, Col int
	Char      rune
	Err       error
}

func (e *ParseError) Error() string {
	switch {
	case e.Char != 0:
		return fmt.Sprintf("%v: %q at line %d, column %d", e.Err, e.Char, e.Line, e.Col)
	case e.Line != 0:
		return fmt.Sprintf("%v: line %d", e.Err, e.Line)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// StructureError reports a maze whose pieces do not form a loop through
// the start.
type StructureError struct {
	Pos    Position
	Err    error
	Detail string
}

func (e *StructureError) Error() string {
	if e.Err == ErrNoStart {
		return e.Err.Error()
	}
	if e.Detail != "" {
		return fmt.Sprintf("%v at %v: %s", e.Err, e.Pos, e.Detail)
	}
	return fmt.Sprintf("%v at %v", e.Err, e.Pos)
}

func (e *StructureError) Unwrap() error { return e.Err }
