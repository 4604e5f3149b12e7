package pipemaze

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// startProbes is the order the start's neighbours are tried in.
var startProbes = [...]Direction{East, West, South, North}

// Loop is the closed sequence of elements walked from the start back to
// it. Entrance is the direction the walk left the start in; Exit is the
// direction it arrived back in.
type Loop struct {
	Start    Position
	Elements []Element
	Entrance Direction
	Exit     Direction
}

// Entrances returns the connections from the start to each neighbour
// whose element accepts a walk coming from the start.
func (m *Maze) Entrances() []Connection {
	var out []Connection
	for _, d := range startProbes {
		c := Connection{Pos: d.Step(m.Start), Dir: d}
		if e, ok := m.Elements[c.Pos]; ok && e.Accepts(d) {
			out = append(out, c)
		}
	}
	return out
}

// Trace walks the loop through the start, leaving by its first entrance.
func (m *Maze) Trace() (*Loop, error) {
	ents := m.Entrances()
	if len(ents) < 2 {
		return nil, &StructureError{
			Pos:    m.Start,
			Err:    ErrEntrances,
			Detail: fmt.Sprintf("found %d", len(ents)),
		}
	}
	return m.TraceFrom(ents[0])
}

// TraceFrom walks the loop leaving the start by entrance. Either of the
// start's two entrances yields the same loop, walked the other way round.
func (m *Maze) TraceFrom(entrance Connection) (*Loop, error) {
	if entrance.Dir.Step(m.Start) != entrance.Pos {
		return nil, &StructureError{
			Pos:    entrance.Pos,
			Err:    ErrRejected,
			Detail: "entrance is not next to the start",
		}
	}
	l := &Loop{Start: m.Start, Entrance: entrance.Dir}
	log := Log.WithField("start", m.Start)
	c := entrance
	for c.Pos != m.Start {
		// Each element appears at most once on a loop.
		if len(l.Elements) > len(m.Elements) {
			return nil, &StructureError{Pos: c.Pos, Err: ErrUnclosed}
		}
		e, ok := m.Elements[c.Pos]
		if !ok {
			return nil, &StructureError{Pos: c.Pos, Err: ErrDeadEnd, Detail: "arriving " + c.Dir.String()}
		}
		next, ok := e.Next(c.Dir)
		if !ok {
			return nil, &StructureError{
				Pos:    c.Pos,
				Err:    ErrRejected,
				Detail: fmt.Sprintf("%c entered going %v", e.Rune(), c.Dir),
			}
		}
		log.WithFields(logrus.Fields{
			"at":   c.Pos,
			"elem": string(e.Rune()),
			"next": next.Pos,
		}).Trace("step")
		l.Elements = append(l.Elements, e)
		c = next
	}
	l.Exit = c.Dir
	if n := l.Len(); n < 4 {
		return nil, &StructureError{Pos: m.Start, Err: ErrUnclosed, Detail: fmt.Sprintf("loop of %d cells", n)}
	}
	log.WithFields(logrus.Fields{
		"elements": len(l.Elements),
		"cells":    l.Len(),
		"shape":    string(l.StartShape()),
	}).Debug("traced loop")
	return l, nil
}
