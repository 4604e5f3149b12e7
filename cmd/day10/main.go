// Command day10 solves Advent of Code 2023 day 10, "Pipe Maze".
//
// Part 1 is the number of steps along the loop through S to the point
// farthest from S; part 2 is the number of tiles the loop encloses.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"github.com/aocgo/aoc2023"
	"github.com/aocgo/aoc2023/internal/pipemaze"
)

//go:embed main.go
var src []byte

var (
	flagDraw = flag.Bool("draw", false, "draw the traced loop to stderr")
	flagArea = flag.String("area", "", "part 2 method: raycast, pick or fill (default from config)")
)

func main() {
	aoc.ExtractSamples(src)
	pipemaze.Log = aoc.Log
	aoc.Add(day10part1, day10part2)
	aoc.Main()
}

func traceInput() (*pipemaze.Maze, *pipemaze.Loop, error) {
	in, err := aoc.Input()
	if err != nil {
		return nil, nil, err
	}
	m, err := pipemaze.Parse(string(in))
	if err != nil {
		return nil, nil, err
	}
	l, err := m.Trace()
	if err != nil {
		return nil, nil, err
	}
	return m, l, nil
}

// day10part1 is the distance along the loop to its farthest point.
/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func day10part1() (any, error) {
	_, l, err := traceInput()
	if err != nil {
		return nil, err
	}
	if err := l.CheckParity(); err != nil {
		return nil, err
	}
	return l.Farthest(), nil
}

// day10part2 is the number of tiles enclosed by the loop.
/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func day10part2() (any, error) {
	m, l, err := traceInput()
	if err != nil {
		return nil, err
	}
	conf := aoc.CurrentConfig()
	if *flagDraw && !aoc.InSample() {
		in := aoc.MustGet(aoc.Input())
		if err := pipemaze.Render(os.Stderr, string(in), l, conf.Color); err != nil {
			return nil, err
		}
	}
	switch method := aoc.Or(*flagArea, conf.AreaMethod); method {
	case "raycast":
		return l.Enclosed(), nil
	case "pick":
		return l.EnclosedPick(), nil
	case "fill":
		return l.EnclosedFill(m.Width, m.Height)
	default:
		return nil, fmt.Errorf("unknown area method %q", method)
	}
}
