package pipemaze

// Mazes shared by the tests in this package. The larger ones are the
// puzzle's published examples.
const (
	minimalMaze = `S-7
|.|
L-J
`

	junkMaze = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`

	windingMaze = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

	roomyMaze = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

	squeezedMaze = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

	largeMaze = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

	junkyMaze = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`
)

type sample struct {
	name      string
	input     string
	cells     int
	farthest  int
	enclosed  int
	vertices  int
	shape     rune
	entrances [2]Direction
}

var samples = []sample{
	{"minimal", minimalMaze, 8, 4, 1, 4, 'F', [2]Direction{East, South}},
	{"junk", junkMaze, 8, 4, 1, 4, 'F', [2]Direction{East, South}},
	{"winding", windingMaze, 16, 8, 1, 12, 'F', [2]Direction{East, South}},
	{"roomy", roomyMaze, 46, 23, 4, 12, 'F', [2]Direction{East, South}},
	{"squeezed", squeezedMaze, 44, 22, 4, 12, 'F', [2]Direction{East, South}},
	{"large", largeMaze, 140, 70, 8, 88, 'F', [2]Direction{East, South}},
	{"junky", junkyMaze, 160, 80, 10, 100, '7', [2]Direction{West, South}},
}
