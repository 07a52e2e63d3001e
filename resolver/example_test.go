package resolver_test

import (
	"fmt"

	"github.com/gasbank/GeoSeg/cell"
	"github.com/gasbank/GeoSeg/resolver"
	"github.com/gasbank/GeoSeg/topology"
)

// ExampleCrossEdge shows a base seam, two half-edge seams and a sibling seam.
func ExampleCrossEdge() {
	f0, _ := cell.Root(0)
	f01, _ := f0.Child(cell.Corner1)
	f00, _ := f0.Child(cell.Corner0)
	f0c, _ := f0.Child(cell.Center)

	for _, q := range []struct {
		c cell.Cell
		e topology.Edge
	}{
		{f0, topology.EdgeO},
		{f01, topology.EdgeO},
		{f00, topology.EdgeB},
		{f0c, topology.EdgeO},
	} {
		x, _ := resolver.CrossEdge(q.c, q.e)
		fmt.Printf("%v %s -> %v %s %s\n", q.c, q.e, x.Cell, x.Edge, x.Map)
	}

	// Output:
	// F0 O -> F6 A identity
	// F0/1 O -> F6/0 A identity
	// F0/0 B -> F1/0 A identity
	// F0/c O -> F0/0 O reverse
}

// ExampleVertexNeighbors counts the cells touching a root face.
func ExampleVertexNeighbors() {
	f0, _ := cell.Root(0)
	vn, _ := resolver.VertexNeighbors(f0)
	ring, _ := resolver.AroundCorner(f0, 0)
	fmt.Println(len(vn), len(ring))

	// Output:
	// 9 5
}
