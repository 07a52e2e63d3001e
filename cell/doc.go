// Package cell names the triangular cells of the subdivided icosahedron and
// realizes them on the unit sphere.
//
// A Cell is a base face (0..19) plus a path of child selectors. Each level
// quadrisects its parent through the great-circle midpoints of its edges:
//
//	            p2
//	           /  \
//	          / C2 \
//	        m1──────m0
//	        / \ Cc / \
//	       / C0\  / C1\
//	     p0─────m2─────p1
//
// With m_k the midpoint of the parent edge opposite p_k:
//
//	Corner0 = (p0, m2, m1)   Corner1 = (m2, p1, m0)
//	Corner2 = (m1, m0, p2)   Center  = (m0, m1, m2)
//
// Corner child i keeps the parent's corner i at position i and its edges j≠i
// lie on the parent's edges j. The center child is the medial triangle turned
// half a turn, so all four children keep the parent's winding and every
// sibling seam is traversed in opposite directions by the two cells.
//
// Cells are small comparable values: two cells are equal iff they have the
// same face and the same path. Corners recomputes positions from the path on
// demand with the exact function Expand uses, so both give bit-identical
// results. A midpoint depends only on its two endpoints, so cells meeting
// across a seam compute bit-identical shared corners whatever path reaches
// them.
//
// IDs pack a cell into a uint64 (5 bits face, 2 bits per level, 1 sentinel
// bit), which caps the depth at MaxDepth = 29.
package cell
