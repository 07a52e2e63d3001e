package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gasbank/GeoSeg/mesh"
)

// TestStats_Euler: V = 10·4^d + 2, E = 30·4^d, F = 20·4^d at every depth,
// which only holds if seams share bit-identical corners.
func TestStats_Euler(t *testing.T) {
	for d := 0; d <= 4; d++ {
		s := mustMesh(t, d).Stats()
		p := 1 << (2 * d)
		require.Equal(t, mesh.Stats{Vertices: 10*p + 2, Edges: 30 * p, Faces: 20 * p}, s, "depth %d", d)
		require.Equal(t, 2, s.Euler())
	}
}

func TestValidate(t *testing.T) {
	for d := 0; d <= 3; d++ {
		require.NoError(t, mustMesh(t, d).Validate())
		require.NoError(t, mustMesh(t, d, mesh.WithConnectivity(mesh.ConnVertex)).Validate())
	}
}
