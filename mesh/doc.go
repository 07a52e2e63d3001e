// SPDX-License-Identifier: MIT
// Package mesh materializes every cell of one subdivision depth as an
// indexed graph, stitched across face and sibling seams by the resolver.
//
// What:
//
//   - New enumerates the 20·4^depth cells in id order and resolves their
//     neighbors on a worker pool.
//   - Edge connectivity (3 neighbors) or vertex connectivity (up to 12).
//   - Breadth-first walks with hooks, hop limits and filtering; shortest
//     paths and hop distances.
//   - Connected components of a cell subset and minimal 0-1 BFS bridges
//     between them.
//   - Topology statistics (V, E, F) and an adjacency self-check.
//
// Complexity:
//
//   - New:                 O(N·depth), Memory: O(N).
//   - Walk, Path:          O(N·k),     Memory: O(N)   (k = 3 or ≤ 12).
//   - ConnectedComponents: O(N·k),     Memory: O(N).
//   - Bridge:              O(N·k),     Memory: O(N).
//   - Stats:               O(N·depth), Memory: O(N).
//
// Options:
//
//   - WithContext: cancellation for New and Walk.
//   - WithWorkers: size of New's worker pool (default GOMAXPROCS).
//   - WithConnectivity: ConnEdge (default) or ConnVertex.
//   - WithMaxHops, WithOnVisit, WithFilterNeighbor: Walk tuning.
//
// Errors:
//
//   - ErrOptionViolation: an invalid option was supplied.
//   - ErrCellIndex: index or cell outside the mesh.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: the target cannot be reached.
//   - ErrAsymmetric: Validate found broken adjacency.
//   - topology.ErrInvalidIndex: depth outside [0, MaxMeshDepth].
package mesh
