package pipemaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimal(t *testing.T) {
	m, err := Parse(minimalMaze)
	require.NoError(t, err)

	assert.Equal(t, Position{X: 0, Y: 0}, m.Start)
	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 3, m.Height)
	// Every cell but S and the middle ground; single-cell runs once each.
	assert.Len(t, m.Elements, 7)

	assert.Equal(t, &Corner{Pos: Position{X: 2, Y: 0}, Shape: SouthWest}, m.Elements[Position{X: 2, Y: 0}])
	assert.Equal(t, &Pipe{Start: Position{X: 0, Y: 1}, End: Position{X: 0, Y: 1}, Dir: South}, m.Elements[Position{X: 0, Y: 1}])
	assert.NotContains(t, m.Elements, Position{X: 1, Y: 1})
}

// TestParseRunsBothEnds checks that a run is keyed under each end with
// opposite directions of travel.
func TestParseRunsBothEnds(t *testing.T) {
	m, err := Parse("S--7\n|..|\n|..|\nL--J\n")
	require.NoError(t, err)

	assert.Equal(t, &Pipe{Start: Position{X: 1, Y: 0}, End: Position{X: 2, Y: 0}, Dir: East}, m.Elements[Position{X: 1, Y: 0}])
	assert.Equal(t, &Pipe{Start: Position{X: 2, Y: 0}, End: Position{X: 1, Y: 0}, Dir: West}, m.Elements[Position{X: 2, Y: 0}])
	assert.Equal(t, &Pipe{Start: Position{X: 3, Y: 1}, End: Position{X: 3, Y: 2}, Dir: South}, m.Elements[Position{X: 3, Y: 1}])
	assert.Equal(t, &Pipe{Start: Position{X: 3, Y: 2}, End: Position{X: 3, Y: 1}, Dir: North}, m.Elements[Position{X: 3, Y: 2}])

	l, err := m.Trace()
	require.NoError(t, err)
	assert.Equal(t, 12, l.Len())
	assert.Equal(t, 6, l.Farthest())
	assert.Equal(t, 4, l.Enclosed())
}

func TestParseGroundOnly(t *testing.T) {
	m, err := Parse(".....\n..S..\n.....")
	require.NoError(t, err)
	assert.Empty(t, m.Elements)
	assert.Equal(t, Position{X: 2, Y: 1}, m.Start)
}

func TestParseCarriageReturns(t *testing.T) {
	m, err := Parse("S-7\r\n|.|\r\nL-J\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width)
	assert.Len(t, m.Elements, 7)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		parse   bool // *ParseError rather than *StructureError
		line    int
	}{
		{"empty", "", ErrEmptyInput, true, 0},
		{"blank lines", "\n\n", ErrEmptyInput, true, 0},
		{"ragged", "S-7\n|.|\nL-", ErrRagged, true, 3},
		{"bad char", "S-7\n|#|\nL-J", ErrBadChar, true, 2},
		{"no start", ".-7\n|.|\nL-J", ErrNoStart, false, 0},
		{"two starts", "S-7\n|.|\nL-S", ErrManyStarts, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.input)
			assert.Nil(t, m)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.parse {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, tt.line, pe.Line)
			} else {
				var se *StructureError
				require.ErrorAs(t, err, &se)
			}
		})
	}
}

func TestParseManyStartsPosition(t *testing.T) {
	_, err := Parse("S-7\n|.|\nL-S")
	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, Position{X: 2, Y: 2}, se.Pos)
	assert.Contains(t, se.Error(), "first at (0,0)")
}

func TestBuilderConflict(t *testing.T) {
	b := &builder{elements: make(map[Position]Element)}
	p := Position{X: 1, Y: 1}
	require.NoError(t, b.insert(&Corner{Pos: p, Shape: SouthEast}))

	err := b.insert(&Pipe{Start: p, End: p, Dir: East})
	require.ErrorIs(t, err, ErrConflict)
	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, p, se.Pos)
	assert.Equal(t, "F-", se.Detail)
}
