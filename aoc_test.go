package aoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyevs/ansi"
)

const samplesSrc = `package main

// part1 counts things.
/*
want=8

..F7.
.FJ|.
*/
func part1() (any, error) { return nil, nil }

// part2 reuses part1's sample.
/*
want=1
*/
func part2() (any, error) { return nil, nil }

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	t.Cleanup(func() {
		sampleInput = map[string]string{}
		sampleWant = map[string]string{}
	})
	ExtractSamples([]byte(samplesSrc))

	assert.Equal(t, map[string]string{"part1": "8", "part2": "1"}, sampleWant)
	assert.Equal(t, "..F7.\n.FJ|.\n", sampleInput["part1"])
	assert.Equal(t, sampleInput["part1"], sampleInput["part2"])
	assert.NotContains(t, sampleInput, "helper")
}

func TestInputSample(t *testing.T) {
	altInput = []byte("S-7\n")
	t.Cleanup(func() { altInput = nil })

	assert.True(t, InSample())
	b, err := Input()
	require.NoError(t, err)
	assert.Equal(t, "S-7\n", string(b))
}

func TestInputMissingFile(t *testing.T) {
	inputPath = t.TempDir() + "/10.input"
	t.Cleanup(func() { inputPath = "" })

	assert.False(t, InSample())
	_, err := Input()
	assert.ErrorContains(t, err, "reading input")
}

func TestOr(t *testing.T) {
	assert.Equal(t, "b", Or("", "b", "c"))
	assert.Equal(t, 0, Or(0, 0))
	assert.Equal(t, 3, Or(3))
}

func TestPt(t *testing.T) {
	p := Pt{X: 2, Y: 5}
	assert.Equal(t, Pt{X: 2, Y: 4}, p.North())
	assert.Equal(t, Pt{X: 2, Y: 6}, p.South())
	assert.Equal(t, Pt{X: 1, Y: 5}, p.West())
	assert.Equal(t, Pt{X: 3, Y: 5}, p.East())
	assert.Equal(t, 7, p.MDist(Pt{X: -1, Y: 9}))
	assert.Equal(t, Pt{X: 3, Y: 4}, p.Toward(Pt{X: 9, Y: 0}))
	assert.Equal(t, p, p.Toward(p))
	assert.Equal(t, "(2,5)", p.String())
	assert.Equal(t, int8(3), AbsInt[int8](-1, 2))
}

func TestGridBounds(t *testing.T) {
	g := GridFromString("..\n.S.\n")
	assert.Len(t, g, 5)
	assert.Equal(t, 'S', g[Pt{X: 1, Y: 1}])

	minX, minY, maxX, maxY := g.Bounds()
	assert.Equal(t, [4]int{0, 0, 2, 1}, [4]int{minX, minY, maxX, maxY})
}

func TestGridRender(t *testing.T) {
	g := GridFromString("ab\nc")

	var plain strings.Builder
	require.NoError(t, g.Render(&plain, nil))
	assert.Equal(t, "ab\nc?\n", plain.String())

	var styled strings.Builder
	err := g.Render(&styled, func(p Pt, r rune) (rune, string) {
		if r == 'b' {
			return 'B', "red"
		}
		return r, ""
	})
	require.NoError(t, err)
	assert.Equal(t, "a"+ansi.FGColorName("red")+"B"+ansi.Clear+"\nc?\n", styled.String())
}
