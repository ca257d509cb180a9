package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/multigrid-lab/symgs/coloring"
	"github.com/multigrid-lab/symgs/ellpack"
)

// TestSetup_Invariants runs the full pipeline on the 4×4 grid and
// checks the reordered matrix: block metadata written back, rows of one
// block mutually independent, slots still sorted with padding last.
func TestSetup_Invariants(t *testing.T) {
	A, err := ellpack.FivePointStencil(4, 4)
	require.NoError(t, err)
	require.NoError(t, coloring.Setup(A, newWorkspace(t), coloring.DefaultOptions()))

	require.NotEmpty(t, A.Blocks)
	require.Equal(t, A.NumBlocks()-1, A.UpperBlocks)
	require.Len(t, A.Perm, A.Rows)
	require.Len(t, A.Order, A.Rows)
	requireCanonicalBlocks(t, A.Blocks, A.Rows)

	for _, b := range A.Blocks {
		for row := b.Offset; row < b.Offset+b.Size; row++ {
			prev := int32(-1)
			for s := 0; s < A.Width; s++ {
				col := A.ColInd[s*A.Rows+row]
				if s < int(A.NonzerosInRow[row]) {
					require.Greater(t, col, prev, "row %d slots must stay sorted", row)
					prev = col
				} else {
					require.Equal(t, ellpack.InvalidCol, col, "row %d padding slot %d", row, s)
					continue
				}
				if int(col) == row || col >= int32(A.Rows) {
					continue
				}
				inBlock := int(col) >= b.Offset && int(col) < b.Offset+b.Size
				require.False(t, inBlock,
					"rows %d and %d of one block must not be coupled", row, col)
			}
		}
	}
}

// TestTerminalBlockSkippable_Checkerboard: after a red-black split of
// the grid no row of the terminal block couples forward, so the
// optimized backward sweep may skip it.
func TestTerminalBlockSkippable_Checkerboard(t *testing.T) {
	A, err := ellpack.FivePointStencil(4, 4)
	require.NoError(t, err)
	A.Hash = checkerboardHash(4, 4)
	require.NoError(t, coloring.Setup(A, newWorkspace(t), coloring.DefaultOptions()))
	require.Len(t, A.Blocks, 2)

	ok, err := coloring.TerminalBlockSkippable(A)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestTerminalBlockSkippable_Errors covers the guard clauses.
func TestTerminalBlockSkippable_Errors(t *testing.T) {
	_, err := coloring.TerminalBlockSkippable(nil)
	require.ErrorIs(t, err, coloring.ErrNilMatrix)

	A, err := ellpack.FivePointStencil(2, 2)
	require.NoError(t, err)
	_, err = coloring.TerminalBlockSkippable(A)
	require.ErrorIs(t, err, coloring.ErrNotColored)
}
