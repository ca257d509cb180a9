package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/multigrid-lab/symgs/coloring"
	"github.com/multigrid-lab/symgs/ellpack"
)

// TestOrdering_NotColored rejects a coloring with no rows.
func TestOrdering_NotColored(t *testing.T) {
	var c coloring.Coloring
	_, err := c.Ordering()
	require.ErrorIs(t, err, coloring.ErrNotColored)
}

// TestOrdering_BijectionAndGrouping sorts a real coloring and checks
// the permutation contract: Perm and Order invert each other, sorted
// positions group by ascending color exactly as the block table says,
// and rows keep their relative order inside each block.
func TestOrdering_BijectionAndGrouping(t *testing.T) {
	A, err := ellpack.FivePointStencil(6, 6)
	require.NoError(t, err)
	c, err := coloring.Color(A, newWorkspace(t), coloring.DefaultOptions())
	require.NoError(t, err)

	ord, err := c.Ordering()
	require.NoError(t, err)
	require.Len(t, ord.Order, A.Rows)
	require.Len(t, ord.Perm, A.Rows)

	for pos, row := range ord.Order {
		require.Equal(t, int32(pos), ord.Perm[row], "Perm must invert Order")
	}

	for _, b := range c.Blocks {
		for p := b.Offset; p < b.Offset+b.Size; p++ {
			require.Equal(t, b.Color, c.Colors[ord.Order[p]],
				"position %d must hold a row of color %d", p, b.Color)
			if p > b.Offset {
				require.Less(t, ord.Order[p-1], ord.Order[p],
					"the sort must be stable within a block")
			}
		}
	}
}

// TestOrdering_WideLabels exercises more than one radix digit. Labels
// ascend past a full byte, so a single-pass sort would scramble them.
func TestOrdering_WideLabels(t *testing.T) {
	const m = 300
	c := coloring.Coloring{
		Colors: make([]int32, m),
		Blocks: make([]ellpack.Block, m),
	}
	for i := 0; i < m; i++ {
		c.Colors[i] = int32(m - 1 - i)
		c.Blocks[i] = ellpack.Block{Color: int32(i), Size: 1, Offset: i}
	}
	ord, err := c.Ordering()
	require.NoError(t, err)
	for pos := 0; pos < m; pos++ {
		require.Equal(t, int32(m-1-pos), ord.Order[pos])
		require.Equal(t, int32(m-1-pos), ord.Perm[pos])
	}
}
