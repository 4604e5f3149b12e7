// Package pipemaze traces the loop of pipes running through the start of
// a pipe maze and measures it.
//
// What:
//
//   - Tokenize splits a row or column of maze text into runs of ground,
//     pipe, corner and start cells.
//   - Parse folds the tokens of every row, then of every column, into a
//     Maze: the start plus a map from position to Element (*Pipe or *Corner).
//     Each straight run is stored under both of its ends, one Pipe per
//     direction of travel.
//   - Maze.Trace finds the start's two entrances and walks element to
//     element until it is back at the start, producing a Loop.
//   - Loop.Farthest is half the loop's length; Loop.Enclosed counts the
//     grid points strictly inside it. EnclosedPick and EnclosedFill count
//     the same points by Pick's theorem and by flood fill.
//
// Maze text:
//
//	.  ground        S  start
//	-  east-west     |  north-south
//	L  north-east    J  north-west
//	7  south-west    F  south-east
//
// Errors:
//
//   - *ParseError wraps ErrEmptyInput, ErrRagged or ErrBadChar.
//   - *StructureError wraps ErrNoStart, ErrManyStarts, ErrConflict,
//     ErrEntrances, ErrDeadEnd, ErrRejected, ErrUnclosed or ErrOddLoop.
//
// Nothing here panics on bad input, and a Maze or Loop is never modified
// once returned.
package pipemaze
