package cell_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gasbank/GeoSeg/cell"
	"github.com/gasbank/GeoSeg/topology"
)

func TestID_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		c := randomCell(t, rng, rng.Intn(cell.MaxDepth+1))
		id := c.ID()
		require.True(t, id.Valid(), "%v", c)
		require.Equal(t, c.Depth(), id.Depth())
		require.Equal(t, c.Face(), id.Face())
		back, err := cell.FromID(id)
		require.NoError(t, err)
		require.Equal(t, c, back)
	}
}

func TestID_Layout(t *testing.T) {
	r, _ := cell.Root(0)
	require.Equal(t, cell.ID(1<<58), r.ID())

	r19, _ := cell.Root(19)
	require.Equal(t, cell.ID(19<<59|1<<58), r19.ID())

	c, _ := cell.FromPath(1, cell.Center)
	require.Equal(t, cell.ID(1<<59|3<<57|1<<56), c.ID())
}

func TestID_Invalid(t *testing.T) {
	bad := []cell.ID{
		0,
		cell.ID(20 << 59),       // face out of range, no sentinel
		cell.ID(20<<59 | 1<<58), // face out of range
		cell.ID(1 << 57),        // sentinel at an odd offset
	}
	for _, id := range bad {
		require.False(t, id.Valid(), "%s", id)
		_, err := cell.FromID(id)
		require.ErrorIs(t, err, topology.ErrInvalidIndex)
	}

	// Sentinel at bit 0 is depth 29.
	deepest := cell.ID(3<<59 | 1<<57 | 1)
	require.True(t, deepest.Valid())
	require.Equal(t, cell.MaxDepth, deepest.Depth())
}

func TestID_SameDepthOrderMatchesCompare(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		d := rng.Intn(12)
		a, b := randomCell(t, rng, d), randomCell(t, rng, d)
		want := cell.Compare(a, b)
		var got int
		switch {
		case a.ID() < b.ID():
			got = -1
		case a.ID() > b.ID():
			got = 1
		}
		require.Equal(t, want, got, "%v vs %v", a, b)
	}
}

func TestID_RangeContainsDescendants(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		c := randomCell(t, rng, rng.Intn(10))
		d := c
		for k, n := 0, 1+rng.Intn(5); k < n; k++ {
			d, _ = d.Child(cell.Selectors[rng.Intn(4)])
		}
		require.True(t, c.ID().Contains(d.ID()), "%v ⊇ %v", c, d)
		require.True(t, c.ID().Contains(c.ID()))

		if p, ok := c.Parent(); ok {
			require.False(t, c.ID().Contains(p.ID()))
		}
		other, _ := cell.Root((c.Face() + 1) % topology.NumFaces)
		require.False(t, c.ID().Contains(other.ID()))
	}
}
