// SPDX-License-Identifier: MIT
// Package resolver finds the cell across an edge of any cell of the grid and
// the map carrying an edge-parametric coordinate over the seam.
//
// CrossEdge(c, e) distinguishes three cases:
//
//	depth 0            the base table's neighbor record for (face, e).
//	sibling edge       the center child's edge e borders corner child e, and
//	                   corner child i's edge i borders the center; both
//	                   cells run the shared edge in opposite directions, so
//	                   the map is always Reverse.
//	parent edge        corner child i's edge e (e ≠ i) is half of the
//	                   parent's edge e. The parent is crossed first
//	                   (recursively); parent corner i lands on some corner k
//	                   of the parent's neighbor, whose corner child k is the
//	                   answer. Half-edges run in the same direction as the
//	                   edge they split, so the parent's map carries over.
//
// Every cell owns all three edge labels. A corner child has one sibling edge
// and two parent edges; the center child has three sibling edges.
//
// Guarantees:
//
//   - the target has the source's depth;
//   - crossing back over the returned edge returns the source, and the two
//     maps compose to Identity;
//   - source and target share exactly the two endpoints of the crossed edge,
//     bit for bit (midpoints only depend on their two endpoints, which are
//     themselves bit-identical by induction from the shared base vertices).
//
// Complexity: O(depth) per crossing, no allocation. All functions are pure
// and safe for concurrent use.
package resolver
