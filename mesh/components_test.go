package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gasbank/GeoSeg/cell"
	"github.com/gasbank/GeoSeg/mesh"
)

// farFace returns the face five hops from face 0.
func farFace(t *testing.T) int {
	m := mustMesh(t, 0)
	res, err := m.Walk(0)
	require.NoError(t, err)
	return res.Order[len(res.Order)-1]
}

func TestConnectedComponents_All(t *testing.T) {
	m := mustMesh(t, 2)
	comps := m.ConnectedComponents(nil)
	require.Len(t, comps, 1)
	require.Len(t, comps[0], m.Len())

	require.Empty(t, m.ConnectedComponents(func(cell.Cell) bool { return false }))
}

func TestConnectedComponents_TwoCaps(t *testing.T) {
	far := farFace(t)
	keep := func(c cell.Cell) bool { return c.Face() == 0 || c.Face() == far }

	m := mustMesh(t, 2)
	comps := m.ConnectedComponents(keep)
	require.Len(t, comps, 2)
	require.Len(t, comps[0], 16)
	require.Len(t, comps[1], 16)
	require.Equal(t, 0, comps[0][0])
}

// TestConnectedComponents_Diagonal: two root faces touching at one vertex
// are separate under edge connectivity and joined under vertex connectivity.
func TestConnectedComponents_Diagonal(t *testing.T) {
	edge := mustMesh(t, 0)
	vertex := mustMesh(t, 0, mesh.WithConnectivity(mesh.ConnVertex))

	en, _ := edge.Neighbors(0)
	vn, _ := vertex.Neighbors(0)
	corner := -1
	for _, j := range vn {
		if !contains(en, j) {
			corner = j
			break
		}
	}
	require.GreaterOrEqual(t, corner, 0)

	keep := func(c cell.Cell) bool { return c.Face() == 0 || c.Face() == corner }
	require.Len(t, edge.ConnectedComponents(keep), 2)
	require.Len(t, vertex.ConnectedComponents(keep), 1)
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// TestBridge_AcrossSphere joins two antipodal root faces: five hops, four
// cells to add.
func TestBridge_AcrossSphere(t *testing.T) {
	far := farFace(t)
	keep := func(c cell.Cell) bool { return c.Face() == 0 || c.Face() == far }

	m := mustMesh(t, 0)
	path, cost, err := m.Bridge(keep, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 4, cost)
	require.Len(t, path, 6)
	require.Equal(t, 0, path[0])
	require.Equal(t, far, path[len(path)-1])
	for k := 1; k < len(path); k++ {
		nb, _ := m.Neighbors(path[k-1])
		require.Contains(t, nb, path[k])
	}
}

// TestBridge_Subdivided: at depth 2 the cost counts only cells outside the
// kept caps.
func TestBridge_Subdivided(t *testing.T) {
	far := farFace(t)
	keep := func(c cell.Cell) bool { return c.Face() == 0 || c.Face() == far }

	m := mustMesh(t, 2)
	path, cost, err := m.Bridge(keep, 0, 1)
	require.NoError(t, err)
	outside := 0
	for _, i := range path {
		c, _ := m.Cell(i)
		if !keep(c) {
			outside++
		}
	}
	require.Equal(t, outside, cost)
	require.Positive(t, cost)

	_, _, err = m.Bridge(keep, 0, 2)
	require.ErrorIs(t, err, mesh.ErrComponentIndex)
	_, _, err = m.Bridge(keep, -1, 0)
	require.ErrorIs(t, err, mesh.ErrComponentIndex)
}
