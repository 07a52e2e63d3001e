package mesh_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasbank/GeoSeg/cell"
	"github.com/gasbank/GeoSeg/mesh"
	"github.com/gasbank/GeoSeg/topology"
)

func mustMesh(t testing.TB, depth int, opts ...mesh.Option) *mesh.Mesh {
	m, err := mesh.New(depth, opts...)
	require.NoError(t, err)
	return m
}

func TestNew_Sizes(t *testing.T) {
	for d, want := range []int{20, 80, 320, 1280} {
		m := mustMesh(t, d)
		assert.Equal(t, d, m.Depth())
		assert.Equal(t, want, m.Len())
		assert.Equal(t, mesh.ConnEdge, m.Connectivity())
	}
}

// TestNew_IDOrder: cells are listed in Compare order and Index inverts Cell.
func TestNew_IDOrder(t *testing.T) {
	m := mustMesh(t, 3)
	var prev cell.Cell
	for i := 0; i < m.Len(); i++ {
		c, err := m.Cell(i)
		require.NoError(t, err)
		require.Equal(t, 3, c.Depth())
		if i > 0 {
			require.Equal(t, -1, cell.Compare(prev, c))
			require.Less(t, prev.ID(), c.ID())
		}
		j, err := m.Index(c)
		require.NoError(t, err)
		require.Equal(t, i, j)
		prev = c
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := mesh.New(-1)
	require.ErrorIs(t, err, topology.ErrInvalidIndex)
	_, err = mesh.New(mesh.MaxMeshDepth + 1)
	require.ErrorIs(t, err, topology.ErrInvalidIndex)

	_, err = mesh.New(1, mesh.WithWorkers(0))
	require.ErrorIs(t, err, mesh.ErrOptionViolation)
	_, err = mesh.New(1, mesh.WithConnectivity(mesh.Connectivity(5)))
	require.ErrorIs(t, err, mesh.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = mesh.New(3, mesh.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestAccessors_OutOfRange(t *testing.T) {
	m := mustMesh(t, 1)
	for _, i := range []int{-1, m.Len()} {
		_, err := m.Cell(i)
		assert.ErrorIs(t, err, mesh.ErrCellIndex)
		_, err = m.EdgeNeighbors(i)
		assert.ErrorIs(t, err, mesh.ErrCellIndex)
		_, err = m.Neighbors(i)
		assert.ErrorIs(t, err, mesh.ErrCellIndex)
		_, err = m.Corners(i)
		assert.ErrorIs(t, err, mesh.ErrCellIndex)
	}

	deeper, _ := cell.FromPath(0, cell.Center, cell.Center)
	_, err := m.Index(deeper)
	assert.ErrorIs(t, err, mesh.ErrCellIndex)
	root, _ := cell.Root(0)
	_, err = m.Index(root)
	assert.ErrorIs(t, err, mesh.ErrCellIndex)
}

// TestNew_WorkersAgree builds the same mesh with one and several workers.
func TestNew_WorkersAgree(t *testing.T) {
	one := mustMesh(t, 4, mesh.WithWorkers(1))
	many := mustMesh(t, 4, mesh.WithWorkers(7))
	require.Equal(t, one.Len(), many.Len())
	for i := 0; i < one.Len(); i++ {
		a, _ := one.EdgeNeighbors(i)
		b, _ := many.EdgeNeighbors(i)
		require.Equal(t, a, b, "cell %d", i)
	}
}

// TestNeighbors_MatchCells: every listed neighbor shares two corners.
func TestNeighbors_MatchCells(t *testing.T) {
	m := mustMesh(t, 2)
	for i := 0; i < m.Len(); i++ {
		nb, err := m.Neighbors(i)
		require.NoError(t, err)
		require.Len(t, nb, 3)
		p, _ := m.Corners(i)
		for _, j := range nb {
			q, _ := m.Corners(j)
			shared := 0
			for _, u := range p {
				for _, v := range q {
					if u == v {
						shared++
					}
				}
			}
			require.Equal(t, 2, shared)
		}
	}
}

// TestNeighbors_VertexRing: cells touching a base vertex have 11 ring
// neighbors, all others 12.
func TestNeighbors_VertexRing(t *testing.T) {
	m := mustMesh(t, 2, mesh.WithConnectivity(mesh.ConnVertex))
	count := map[int]int{}
	for i := 0; i < m.Len(); i++ {
		nb, err := m.Neighbors(i)
		require.NoError(t, err)
		count[len(nb)]++

		edge, _ := m.EdgeNeighbors(i)
		for _, j := range edge {
			require.Contains(t, nb, j)
		}
	}
	require.Equal(t, map[int]int{11: 60, 12: 260}, count)

	m0 := mustMesh(t, 0, mesh.WithConnectivity(mesh.ConnVertex))
	nb, _ := m0.Neighbors(0)
	require.Len(t, nb, 9)
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	m := mustMesh(t, 1)
	nb, _ := m.Neighbors(0)
	nb[0] = -5
	again, _ := m.Neighbors(0)
	require.NotEqual(t, -5, again[0])
}

func TestLocate(t *testing.T) {
	m := mustMesh(t, 3)
	for i := 0; i < m.Len(); i += 7 {
		c, _ := m.Cell(i)
		j, err := m.Locate(c.Centroid())
		require.NoError(t, err)
		require.Equal(t, i, j)
	}
}

func TestConnectivity_String(t *testing.T) {
	assert.Equal(t, "edge", mesh.ConnEdge.String())
	assert.Equal(t, "vertex", mesh.ConnVertex.String())
	assert.Equal(t, "Connectivity(9)", mesh.Connectivity(9).String())
}
