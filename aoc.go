// Package aoc are quick & dirty utilities for running Advent of Code
// solutions: registering puzzle funcs, checking them against the samples
// embedded in their doc comments, and a few point and grid helpers.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/vyevs/ansi"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Log is the runner's logger. Days may share it with their own packages.
var Log = logrus.New()

// Puzzle is a registered solution. It reads its input via Input.
type Puzzle func() (any, error)

var (
	flagDay     *string
	flagConfig  *string
	flagInput   *string
	flagVerbose *bool
)

var (
	puzzles      []string
	puzzleByName = map[string]Puzzle{} // func name -> func
	sampleInput  = map[string]string{}
	sampleWant   = map[string]string{}
)

var (
	curDay    int
	altInput  []byte // non-nil to run a sample
	inputPath string
	conf      = DefaultConfig()
)

func init() {
	Log.SetLevel(logrus.WarnLevel)
}

func Main() {
	flagDay = flag.String("day", "", "func name to run; empty string means latest registered. If it starts with a digit, then \"day\" prefix is assumed.")
	flagConfig = flag.String("config", "", "optional YAML config file")
	flagInput = flag.String("input", "", "input file; default is <input_dir>/<day>.input")
	flagVerbose = flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *flagConfig != "" {
		c, err := LoadConfig(*flagConfig)
		if err != nil {
			Log.Fatalf("loading config: %v", err)
		}
		conf = c
	}
	if *flagVerbose {
		conf.LogLevel = "debug"
	}
	lvl, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		Log.Fatalf("bad log_level %q: %v", conf.LogLevel, err)
	}
	Log.SetLevel(lvl)

	if len(puzzles) == 0 {
		Log.Fatal("no puzzle funcs registered")
	}
	funcName := *flagDay
	if funcName == "" {
		last := puzzles[len(puzzles)-1]
		funcName = Or(regexp.MustCompile(`^day\d+`).FindString(last), last)
	}
	if unicode.IsDigit(rune(funcName[0])) {
		funcName = "day" + funcName
	}

	var toRun []string
	if _, ok := puzzleByName[funcName]; ok {
		toRun = []string{funcName}
	} else {
		// A bare day ("day10") runs every part registered for it.
		for _, name := range puzzles {
			if strings.HasPrefix(name, funcName+"part") {
				toRun = append(toRun, name)
			}
		}
	}
	if len(toRun) == 0 {
		Log.Fatalf("puzzle func %v not registered (have %v)", funcName, registered())
	}
	getDay := regexp.MustCompile(`\d+`)
	if m := getDay.FindString(funcName); m == "" {
		Log.Fatalf("no digits in func name %q from which to extract day number", funcName)
	} else {
		curDay = MustGet(strconv.Atoi(m))
	}
	inputPath = *flagInput
	if inputPath == "" {
		inputPath = filepath.Join(conf.InputDir, fmt.Sprintf("%d.input", curDay))
	}

	for _, name := range toRun {
		if err := run(name); err != nil {
			Log.WithField("puzzle", name).Error(err)
			os.Exit(1)
		}
	}
}

func run(name string) error {
	f := puzzleByName[name]
	if want, ok := sampleWant[name]; ok && !conf.SkipSample {
		altInput = []byte(sampleInput[name])
		v, err := f()
		altInput = nil
		if err != nil {
			return fmt.Errorf("sample: %w", err)
		}
		if got := fmt.Sprint(v); got != want {
			return fmt.Errorf("❌ for %v sample, got=%v; want %v", name, got, want)
		}
		fmt.Fprintf(os.Stderr, "OK sample result for %v.\n", name)
	} else if !ok {
		fmt.Fprintf(os.Stderr, "⚠️ no sample for %v\n", name)
	}
	v, err := f()
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

// registered returns the registered puzzle names, sorted.
func registered() []string {
	names := maps.Keys(puzzleByName)
	slices.Sort(names)
	return names
}

// ExtractSamples scans the Go source src for funcs whose doc comments
// contain a "want=" line, optionally followed by the sample input. A func
// with a want= line but no input reuses the previous func's input.
func ExtractSamples(src []byte) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		Log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	wantRx := regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			if m := wantRx.FindStringSubmatch(text); m != nil {
				sampleWant[funcName] = m[1]
				in := Or(m[2], lastInput)
				sampleInput[funcName] = in
				lastInput = in
			}
		}
	}
}

func funcName(f Puzzle) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	return strings.TrimPrefix(rf.Name(), "main.")
}

func Add(puzFuncs ...Puzzle) {
	for _, f := range puzFuncs {
		name := funcName(f)
		puzzles = append(puzzles, name)
		puzzleByName[name] = f
	}
}

// Input returns the sample while one is being checked, and the day's input
// file otherwise.
func Input() ([]byte, error) {
	if altInput != nil {
		return altInput, nil
	}
	b, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

// InSample reports whether the running puzzle func is being fed its sample.
func InSample() bool { return altInput != nil }

// CurrentConfig returns the configuration Main is running with.
func CurrentConfig() Config { return conf }

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

func (p Pt2[T]) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func AbsInt[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsInt[T](a.X, b.X) + AbsInt[T](a.Y, b.Y)
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

type Grid map[Pt]rune

func GridFromString(s string) Grid {
	g := Grid{}
	for y, line := range strings.Split(s, "\n") {
		for x, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			g[Pt{x, y}] = r
		}
	}
	return g
}

func (g Grid) Bounds() (minX, minY, maxX, maxY int) {
	n := 0
	for p := range g {
		if n == 0 {
			minX = p.X
			maxX = p.X
			minY = p.Y
			maxY = p.Y
		}
		n++
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

// Render writes g to w row by row. style may replace each rune and name an
// ansi colour for it; an empty colour name leaves the rune unstyled.
// Missing cells are drawn as '?'.
func (g Grid) Render(w io.Writer, style func(p Pt, r rune) (rune, string)) error {
	var b strings.Builder
	minX, minY, maxX, maxY := g.Bounds()
	colored := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Pt{x, y}
			r, ok := g[p]
			if !ok {
				r = '?'
			}
			color := ""
			if style != nil {
				r, color = style(p, r)
			}
			if color != "" {
				b.WriteString(ansi.FGColorName(color))
				colored = true
			} else if colored {
				b.WriteString(ansi.Clear)
				colored = false
			}
			b.WriteRune(r)
		}
		if colored {
			b.WriteString(ansi.Clear)
			colored = false
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
