// SPDX-License-Identifier: MIT
// Package topology holds the frozen base level of the icosahedral grid:
// 12 unit-sphere vertices, 20 triangular faces, the winding of every face
// and, for every edge of every face, the record of the face lying across it.
//
// The table is exact, vetted data. Vertex coordinates are the golden-ratio
// icosahedron vertices as shipped; faces and neighbor rows are stored in the
// order they were generated and must not be renumbered or re-wound.
//
// Local frame of a face:
//
//	corner 0 (O) is the origin
//	axis A runs from corner 0 toward corner 1
//	axis B runs from corner 0 toward corner 2
//
//	          B (2)
//	         /  \
//	 edge A /    \ edge O
//	       /      \
//	  O (0)────────A (1)
//	         edge B
//
// Edges are named after the corner they are opposite to. Edge e is
// parametrized by t ∈ [0,1] from the lower to the higher of its two corner
// positions (O: 1→2, A: 0→2, B: 0→1), so edges B and A coincide with axes A
// and B.
//
// Neighbor rows carry an origin variant telling where the neighbor's corner
// 0 sits in the current frame: on the shared edge at corner X (plain X), or
// at the apex mirrored across edge X (primed Xp). Construction derives from
// the vertex ids the edge label on the neighbor and the EdgeMap (Identity or
// Reverse) that carries t from one frame into the other.
//
// Errors:
//
//	ErrInvalidIndex      - face, vertex or edge id out of range.
//	ErrMalformedTopology - a table failed validation in New.
//
// Concurrency: a *Table is immutable after New returns and may be read from
// any number of goroutines without locking. Default() is built once at
// package init.
package topology
