// SPDX-License-Identifier: MIT
// Package: GeoSeg/topology
//
// data.go — the shipped base table, reproduced bit-for-bit.
//
// Design:
//   • Single source of truth for the icosahedron used by every other package.
//   • Stored as fixed-size arrays indexed by dense ids; copied by BaseSource.
//   • Never mutate or reorder: face ids, corner order and neighbor rows are
//     part of the public contract (cell ids embed face ids).

package topology

import "github.com/golang/geo/r3"

// baseVertices are the 12 golden-ratio icosahedron vertices.
var baseVertices = [NumVertices]r3.Vector{
	{X: 0, Y: -0.5257311, Z: -0.8506508}, // 0
	{X: 0, Y: 0.5257311, Z: -0.8506508}, // 1
	{X: 0, Y: 0.5257311, Z: 0.8506508}, // 2
	{X: 0, Y: -0.5257311, Z: 0.8506508}, // 3
	{X: -0.8506508, Y: 0, Z: -0.5257311}, // 4
	{X: -0.8506508, Y: 0, Z: 0.5257311}, // 5
	{X: 0.8506508, Y: 0, Z: 0.5257311}, // 6
	{X: 0.8506508, Y: 0, Z: -0.5257311}, // 7
	{X: -0.5257311, Y: -0.8506508, Z: 0}, // 8
	{X: 0.5257311, Y: -0.8506508, Z: 0}, // 9
	{X: 0.5257311, Y: 0.8506508, Z: 0}, // 10
	{X: -0.5257311, Y: 0.8506508, Z: 0}, // 11
}

// baseFaces lists the corner vertex ids of every face (O, A, B order).
var baseFaces = [NumFaces][3]int{
	{0, 1, 7}, // 0
	{0, 4, 1}, // 1
	{0, 7, 9}, // 2
	{0, 8, 4}, // 3
	{0, 9, 8}, // 4
	{1, 11, 10}, // 5
	{1, 10, 7}, // 6
	{1, 4, 11}, // 7
	{2, 3, 6}, // 8
	{2, 5, 3}, // 9
	{2, 6, 10}, // 10
	{2, 10, 11}, // 11
	{2, 11, 5}, // 12
	{3, 5, 8}, // 13
	{3, 8, 9}, // 14
	{3, 9, 6}, // 15
	{4, 5, 11}, // 16
	{4, 8, 5}, // 17
	{6, 7, 10}, // 18
	{6, 9, 7}, // 19
}

// baseWindings is the recorded winding of every face.
var baseWindings = [NumFaces]Winding{
	CW, CW, CW, CW, CW,
	CW, CW, CW, CW, CW,
	CW, CW, CW, CW, CW,
	CW, CW, CW, CW, CW,
}

// baseLinks is the neighbor table: one row per (face, edge) in O, A, B order.
var baseLinks = [NumFaces][3]Link{
	{ // 0
		{Face: 6, Edge: EdgeO, Origin: OriginA, Winding: CW},
		{Face: 2, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 1, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 1
		{Face: 7, Edge: EdgeO, Origin: OriginB, Winding: CW},
		{Face: 0, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 3, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 2
		{Face: 19, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 4, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 0, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 3
		{Face: 17, Edge: EdgeO, Origin: OriginB, Winding: CW},
		{Face: 1, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 4, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 4
		{Face: 14, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 3, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 2, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 5
		{Face: 11, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 6, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 7, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 6
		{Face: 18, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 0, Edge: EdgeA, Origin: OriginAp, Winding: CW},
		{Face: 5, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 7
		{Face: 16, Edge: EdgeO, Origin: OriginA, Winding: CW},
		{Face: 5, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 1, Edge: EdgeB, Origin: OriginBp, Winding: CW},
	},
	{ // 8
		{Face: 15, Edge: EdgeO, Origin: OriginA, Winding: CW},
		{Face: 10, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 9, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 9
		{Face: 13, Edge: EdgeO, Origin: OriginB, Winding: CW},
		{Face: 8, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 12, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 10
		{Face: 18, Edge: EdgeO, Origin: OriginA, Winding: CW},
		{Face: 11, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 8, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 11
		{Face: 5, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 12, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 10, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 12
		{Face: 16, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 9, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 11, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 13
		{Face: 17, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 14, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 9, Edge: EdgeB, Origin: OriginBp, Winding: CW},
	},
	{ // 14
		{Face: 4, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 15, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 13, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 15
		{Face: 19, Edge: EdgeO, Origin: OriginB, Winding: CW},
		{Face: 8, Edge: EdgeA, Origin: OriginAp, Winding: CW},
		{Face: 14, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 16
		{Face: 12, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 7, Edge: EdgeA, Origin: OriginAp, Winding: CW},
		{Face: 17, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 17
		{Face: 13, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 16, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 3, Edge: EdgeB, Origin: OriginBp, Winding: CW},
	},
	{ // 18
		{Face: 6, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 10, Edge: EdgeA, Origin: OriginAp, Winding: CW},
		{Face: 19, Edge: EdgeB, Origin: OriginO, Winding: CW},
	},
	{ // 19
		{Face: 2, Edge: EdgeO, Origin: OriginOp, Winding: CW},
		{Face: 18, Edge: EdgeA, Origin: OriginO, Winding: CW},
		{Face: 15, Edge: EdgeB, Origin: OriginBp, Winding: CW},
	},
}
