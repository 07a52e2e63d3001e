// SPDX-License-Identifier: MIT
// Package: GeoSeg/mesh
//
// components.go — regions of kept cells and minimal bridges between them.

package mesh

import (
	"container/list"
	"fmt"

	"github.com/gasbank/GeoSeg/cell"
)

// ConnectedComponents finds the contiguous regions of cells accepted by keep
// (nil keeps every cell) under the mesh's connectivity.
// Components are ordered by their lowest index; each lists cell indices in
// breadth-first order from that cell.
//
// Time:   O(N·k), k = neighbors per cell.
// Memory: O(N).
func (m *Mesh) ConnectedComponents(keep func(cell.Cell) bool) [][]int {
	if keep == nil {
		keep = func(cell.Cell) bool { return true }
	}
	seen := make([]bool, len(m.cells))
	var comps [][]int

	for i0, c := range m.cells {
		if seen[i0] || !keep(c) {
			continue
		}
		seen[i0] = true
		queue := []int{i0}
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range m.adjacent(queue[qi]) {
				if !seen[v] && keep(m.cells[v]) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Bridge finds the cheapest chain of cells joining component srcComp to
// component dstComp, as numbered by ConnectedComponents(keep). Stepping onto
// a kept cell costs 0 and onto any other cell costs 1.
// Returns the path (kept endpoints included) and the number of cells that
// would have to be added to join the two regions.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from every srcComp cell.
//  3. Stop at the first dstComp cell popped.
//  4. Rebuild the path from predecessors.
//
// Time:   O(N·k).
// Memory: O(N).
func (m *Mesh) Bridge(keep func(cell.Cell) bool, srcComp, dstComp int) (path []int, cost int, err error) {
	if keep == nil {
		keep = func(cell.Cell) bool { return true }
	}
	comps := m.ConnectedComponents(keep)
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%s: %d -> %d of %d: %w", methodBridge, srcComp, dstComp, len(comps), ErrComponentIndex)
	}
	dst := make([]bool, len(m.cells))
	for _, i := range comps[dstComp] {
		dst[i] = true
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, len(m.cells))
	prev := make([]int, len(m.cells))
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 steps at the front, cost-1 steps at the back.
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if dst[u] {
			target = u
			break
		}
		for _, v := range m.adjacent(u) {
			step := 0
			if !keep(m.cells[v]) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, fmt.Errorf("%s: %d -> %d: %w", methodBridge, srcComp, dstComp, ErrNoPath)
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
