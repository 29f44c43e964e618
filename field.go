package chipcore

import "fmt"

// Conn is a directed connection wiring a trigger tile to an actuated tile:
// brown button -> bear trap, red button -> clone machine, or one leg of a
// teleporter pair.
type Conn struct {
	Src  Vec2i
	Dest Vec2i
}

// Field is the fixed-size terrain grid plus the wiring and rules that go
// with it.
type Field struct {
	Width, Height int
	Terrain       []Terrain
	Connections   []Conn
	TimeLimit     int32
	RequiredChips int32
}

// NewField allocates a blank width x height field.
func NewField(width, height int) *Field {
	f := &Field{
		Width:   width,
		Height:  height,
		Terrain: make([]Terrain, width*height),
	}
	return f
}

func (f *Field) index(p Vec2i) int {
	return p.Y*f.Width + p.X
}

// At returns the terrain at p. Out-of-bounds reads return Wall so that
// callers which forget a bounds check fail closed rather than open.
func (f *Field) At(p Vec2i) Terrain {
	if !p.InBounds(f.Width, f.Height) {
		return Wall
	}
	return f.Terrain[f.index(p)]
}

// Set overwrites the terrain at p, firing no event — callers that need a
// TerrainUpdated event (button/clone/lock side effects) fire it themselves
// with the old and new kinds.
func (f *Field) Set(p Vec2i, t Terrain) {
	if !p.InBounds(f.Width, f.Height) {
		return
	}
	f.Terrain[f.index(p)] = t
}

// Validate checks the structural invariants spec.md §3 places on Field:
// terrain length matches width*height and every connection endpoint is
// in-bounds.
func (f *Field) Validate() error {
	if len(f.Terrain) != f.Width*f.Height {
		return fmt.Errorf("%w: terrain length %d != %d*%d", ErrMalformedLevel, len(f.Terrain), f.Width, f.Height)
	}
	for i, c := range f.Connections {
		if !c.Src.InBounds(f.Width, f.Height) {
			return fmt.Errorf("%w: connection %d src %v out of bounds", ErrMalformedLevel, i, c.Src)
		}
		if !c.Dest.InBounds(f.Width, f.Height) {
			return fmt.Errorf("%w: connection %d dest %v out of bounds", ErrMalformedLevel, i, c.Dest)
		}
	}
	return nil
}

// ConnFrom returns the first connection whose Src matches p, used by
// button/teleporter/clone-machine lookups. Scanning in field (slice) order
// matches spec.md §4.6's "scans connections in field-order."
func (f *Field) ConnFrom(p Vec2i) (Conn, bool) {
	for _, c := range f.Connections {
		if c.Src == p {
			return c, true
		}
	}
	return Conn{}, false
}

// ConnsFrom returns every connection whose Src matches p (a button may
// wire to more than one trap/clone machine in a faithful Lynx ruleset).
func (f *Field) ConnsFrom(p Vec2i) []Conn {
	var out []Conn
	for _, c := range f.Connections {
		if c.Src == p {
			out = append(out, c)
		}
	}
	return out
}
