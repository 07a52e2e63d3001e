package cell

import (
	"fmt"
	"math/bits"

	"github.com/gasbank/GeoSeg/topology"
)

// ID is a packed cell address:
//
//	bits 63..59  face (0..19)
//	then         2 bits per level, level 1 first
//	then         a single 1 bit marking the end of the path
//	then         zeros
//
// The zero ID names no cell. As with s2 cell ids, the descendants of a cell
// occupy the closed interval [RangeMin, RangeMax] around its id, and all ids
// of one depth sort in Compare order.
type ID uint64

const posBits = 2*MaxDepth + 1 // bits below the face field

// ID returns the packed id of c.
func (c Cell) ID() ID {
	id := uint64(c.face) << posBits
	for k := 1; k <= int(c.depth); k++ {
		id |= uint64(c.Selector(k)) << (posBits - 2*uint(k))
	}
	id |= 1 << (posBits - 1 - 2*uint(c.depth))
	return ID(id)
}

// FromID unpacks id.
func FromID(id ID) (Cell, error) {
	if !id.Valid() {
		return Cell{}, fmt.Errorf("%s: %#x: %w", methodFromID, uint64(id), topology.ErrInvalidIndex)
	}
	c := Cell{face: uint8(id >> posBits)}
	d := id.Depth()
	for k := 1; k <= d; k++ {
		c = c.child(Selector(uint64(id) >> (posBits - 2*uint(k)) & 3))
	}
	return c, nil
}

// Valid reports whether id names a cell.
func (id ID) Valid() bool {
	if int(id>>posBits) >= topology.NumFaces {
		return false
	}
	low := uint64(id) & (1<<posBits - 1)
	if low == 0 {
		return false
	}
	return (posBits-1-bits.TrailingZeros64(low))%2 == 0
}

// Depth returns the depth encoded in a valid id.
func (id ID) Depth() int {
	return (posBits - 1 - bits.TrailingZeros64(uint64(id))) / 2
}

// Face returns the face encoded in id.
func (id ID) Face() int { return int(id >> posBits) }

func (id ID) lsb() uint64 { return uint64(id) & -uint64(id) }

// RangeMin returns the smallest id among the descendants of id.
func (id ID) RangeMin() ID { return ID(uint64(id) - (id.lsb() - 1)) }

// RangeMax returns the largest id among the descendants of id.
func (id ID) RangeMax() ID { return ID(uint64(id) + (id.lsb() - 1)) }

// Contains reports whether other is id or one of its descendants.
func (id ID) Contains(other ID) bool {
	return other >= id.RangeMin() && other <= id.RangeMax()
}

// String returns the id as fixed-width hex.
func (id ID) String() string { return fmt.Sprintf("%016x", uint64(id)) }
