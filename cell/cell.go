package cell

import (
	"fmt"
	"strings"

	"github.com/gasbank/GeoSeg/topology"
)

// MaxDepth is the deepest subdivision level a Cell (and its ID) can name.
const MaxDepth = 29

const (
	methodRoot     = "Root"
	methodFromPath = "FromPath"
	methodChild    = "Child"
	methodFromID   = "FromID"
	methodLocate   = "Locate"
	methodExpand   = "Expand"
)

// Selector picks one of the four children of a cell.
type Selector uint8

const (
	Corner0 Selector = iota // keeps the parent's corner 0
	Corner1                 // keeps the parent's corner 1
	Corner2                 // keeps the parent's corner 2
	Center                  // the three edge midpoints
)

// Selectors lists the four children in selector order.
var Selectors = [4]Selector{Corner0, Corner1, Corner2, Center}

// CornerSelector returns the selector of the corner child keeping corner pos.
func CornerSelector(pos int) Selector { return Selector(pos) }

// Valid reports whether s names a child.
func (s Selector) Valid() bool { return s <= Center }

// IsCorner reports whether s is one of the three corner children.
func (s Selector) IsCorner() bool { return s < Center }

// Corner returns the parent corner position kept by a corner selector.
func (s Selector) Corner() int { return int(s) }

// String returns "0", "1", "2" or "c".
func (s Selector) String() string {
	switch s {
	case Corner0, Corner1, Corner2:
		return string(rune('0' + s))
	case Center:
		return "c"
	default:
		return fmt.Sprintf("Selector(%d)", uint8(s))
	}
}

// Cell is a triangle of the grid: a base face plus a path of selectors.
// The zero value is the root cell of face 0.
type Cell struct {
	face  uint8
	depth uint8
	path  uint64 // level k (1-based) at bits 2(k-1)..2k-1
}

// Root returns the depth-0 cell of face.
func Root(face int) (Cell, error) {
	if face < 0 || face >= topology.NumFaces {
		return Cell{}, fmt.Errorf("%s: face %d: %w", methodRoot, face, topology.ErrInvalidIndex)
	}
	return Cell{face: uint8(face)}, nil
}

// FromPath returns the cell reached from face by following path.
func FromPath(face int, path ...Selector) (Cell, error) {
	c, err := Root(face)
	if err != nil {
		return Cell{}, fmt.Errorf("%s: %w", methodFromPath, err)
	}
	if len(path) > MaxDepth {
		return Cell{}, fmt.Errorf("%s: depth %d exceeds %d: %w", methodFromPath, len(path), MaxDepth, topology.ErrInvalidIndex)
	}
	for i, s := range path {
		if !s.Valid() {
			return Cell{}, fmt.Errorf("%s: level %d: %s: %w", methodFromPath, i+1, s, topology.ErrInvalidIndex)
		}
		c = c.child(s)
	}
	return c, nil
}

// child appends s without checks.
func (c Cell) child(s Selector) Cell {
	c.path |= uint64(s) << (2 * uint(c.depth))
	c.depth++
	return c
}

// Face returns the base face id.
func (c Cell) Face() int { return int(c.face) }

// Depth returns the subdivision depth (path length).
func (c Cell) Depth() int { return int(c.depth) }

// IsRoot reports whether c is a base face.
func (c Cell) IsRoot() bool { return c.depth == 0 }

// Selector returns the selector taken at level (1..Depth).
// The result is undefined outside that range.
func (c Cell) Selector(level int) Selector {
	return Selector(c.path >> (2 * uint(level-1)) & 3)
}

// Last returns the final selector of the path; ok is false for a root.
func (c Cell) Last() (s Selector, ok bool) {
	if c.depth == 0 {
		return 0, false
	}
	return c.Selector(int(c.depth)), true
}

// Path returns a copy of the selector path.
func (c Cell) Path() []Selector {
	out := make([]Selector, c.depth)
	for i := range out {
		out[i] = c.Selector(i + 1)
	}
	return out
}

// Parent returns the cell one level up; ok is false for a root.
func (c Cell) Parent() (p Cell, ok bool) {
	if c.depth == 0 {
		return c, false
	}
	c.depth--
	c.path &^= 3 << (2 * uint(c.depth))
	return c, true
}

// Child returns the child of c chosen by s.
func (c Cell) Child(s Selector) (Cell, error) {
	if !s.Valid() {
		return Cell{}, fmt.Errorf("%s: %v %s: %w", methodChild, c, s, topology.ErrInvalidIndex)
	}
	if c.depth >= MaxDepth {
		return Cell{}, fmt.Errorf("%s: %v at depth %d: %w", methodChild, c, MaxDepth, topology.ErrInvalidIndex)
	}
	return c.child(s), nil
}

// Children returns the four children of c in selector order.
func (c Cell) Children() ([4]Cell, error) {
	var out [4]Cell
	if c.depth >= MaxDepth {
		return out, fmt.Errorf("%s: %v at depth %d: %w", methodChild, c, MaxDepth, topology.ErrInvalidIndex)
	}
	for _, s := range Selectors {
		out[s] = c.child(s)
	}
	return out, nil
}

// Ancestor returns the ancestor of c at depth d (0 ≤ d ≤ Depth).
func (c Cell) Ancestor(d int) (Cell, bool) {
	if d < 0 || d > int(c.depth) {
		return c, false
	}
	c.depth = uint8(d)
	c.path &= 1<<(2*uint(d)) - 1
	return c, true
}

// Winding returns the winding of c. Quadrisection preserves the parent's
// winding for all four children, so it is the base face's.
func (c Cell) Winding() topology.Winding {
	w, _ := topology.Default().Winding(int(c.face))
	return w
}

// String renders c as "F<face>" followed by "/<selectors>" when not a root.
func (c Cell) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "F%d", c.face)
	if c.depth > 0 {
		b.WriteByte('/')
		for i := 1; i <= int(c.depth); i++ {
			b.WriteString(c.Selector(i).String())
		}
	}
	return b.String()
}

// Compare orders cells by face, then lexicographically by path; a cell sorts
// before its descendants. It returns -1, 0 or +1.
func Compare(a, b Cell) int {
	switch {
	case a.face < b.face:
		return -1
	case a.face > b.face:
		return 1
	}
	n := a.depth
	if b.depth < n {
		n = b.depth
	}
	for i := 1; i <= int(n); i++ {
		sa, sb := a.Selector(i), b.Selector(i)
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
	}
	switch {
	case a.depth < b.depth:
		return -1
	case a.depth > b.depth:
		return 1
	}
	return 0
}
