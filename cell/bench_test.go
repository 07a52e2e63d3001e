package cell_test

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/gasbank/GeoSeg/cell"
)

// BenchmarkCorners measures corner realization of a depth-20 cell.
// Complexity: O(depth)
func BenchmarkCorners(b *testing.B) {
	c := randomCell(b, rand.New(rand.NewSource(42)), 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Corners()
	}
}

// BenchmarkExpand measures one quadrisection at depth 10.
func BenchmarkExpand(b *testing.B) {
	c := randomCell(b, rand.New(rand.NewSource(42)), 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cell.Expand(c)
	}
}

// BenchmarkLocate measures point location at depth 12.
func BenchmarkLocate(b *testing.B) {
	p := r3.Vector{X: 0.3, Y: -0.7, Z: 0.2}
	for i := 0; i < b.N; i++ {
		_, _ = cell.Locate(p, 12)
	}
}
