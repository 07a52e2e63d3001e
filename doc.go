// Package geoseg addresses the sphere as a recursively subdivided
// icosahedron and finds the neighbors of any cell across face seams.
//
// What is GeoSeg?
//
//	A pure-Go geodesic grid built on golang/geo vectors:
//		• Topology: 12 vertices, 20 faces, windings and per-edge neighbor records
//		• Cells: face + quadrisection path, packed uint64 ids, point location
//		• Subdivision: great-circle midpoints, bit-identical shared corners
//		• Edge crossing: neighbor cell, neighbor edge and t ↦ t / t ↦ 1−t map
//		• Mesh: every cell of a depth, walks, components, bridges, V−E+F checks
//
// Packages:
//
//	topology/ — base icosahedron table, validated at construction
//	cell/     — Cell, ID, Expand, Subdivide, Locate
//	resolver/ — CrossEdge, Neighbors, Translate, AroundCorner
//	mesh/     — depth-d cell graph built concurrently through the resolver
//
// Face 0 subdivided once:
//
//	          p2
//	          /\
//	         /2 \
//	     m1 /____\ m0
//	       /\ c  /\
//	      /0 \  / 1\
//	     /____\/____\
//	   p0     m2     p1
//
// A corner child keeps its parent's corner; the center child (m0, m1, m2)
// borders all three corner children.
//
//	go get github.com/gasbank/GeoSeg
package geoseg
