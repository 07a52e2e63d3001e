package topology_test

import (
	"testing"

	"github.com/gasbank/GeoSeg/topology"
)

// BenchmarkNew measures full validation of the shipped table.
func BenchmarkNew(b *testing.B) {
	src := topology.BaseSource()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := topology.New(src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNeighbor measures a single record lookup.
func BenchmarkNeighbor(b *testing.B) {
	tb := topology.Default()
	for i := 0; i < b.N; i++ {
		_, _ = tb.Neighbor(i%topology.NumFaces, topology.Edges[i%3])
	}
}
