package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/multigrid-lab/symgs/coloring"
	"github.com/multigrid-lab/symgs/ellpack"
	"github.com/multigrid-lab/symgs/parallel"
)

func newWorkspace(t *testing.T) *parallel.Workspace {
	t.Helper()
	ws, err := parallel.NewWorkspace(parallel.DefaultWorkers())
	require.NoError(t, err)
	return ws
}

// checkerboardHash returns hash keys for an nx×ny grid in which every
// "black" cell dominates every "white" neighbor, so the Jones-
// Plassmann-Luby loop colors the whole grid in a single round.
func checkerboardHash(nx, ny int) []int32 {
	hash := make([]int32, nx*ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			row := y*nx + x
			hash[row] = int32(row)
			if (x+y)%2 == 0 {
				hash[row] += int32(nx*ny) * 16
			}
		}
	}
	return hash
}

// requireValidColoring asserts that no off-diagonal nonzero connects
// two rows of the same color and that every row is colored.
func requireValidColoring(t *testing.T, A *ellpack.Matrix, colors []int32) {
	t.Helper()
	for row := 0; row < A.Rows; row++ {
		require.NotEqual(t, coloring.Uncolored, colors[row], "row %d left uncolored", row)
		for s := 0; s < A.Width; s++ {
			col := int(A.ColInd[s*A.Rows+row])
			if col < 0 || col >= A.Rows || col == row {
				continue
			}
			require.NotEqual(t, colors[row], colors[col],
				"adjacent rows %d and %d share color %d", row, col, colors[row])
		}
	}
}

// requireCanonicalBlocks asserts ascending color ids, prefix-sum
// offsets and sizes summing to the row count.
func requireCanonicalBlocks(t *testing.T, blocks []ellpack.Block, rows int) {
	t.Helper()
	require.NotEmpty(t, blocks)
	require.Equal(t, 0, blocks[0].Offset)
	total := 0
	for i, b := range blocks {
		require.Equal(t, total, b.Offset, "block %d offset", i)
		require.GreaterOrEqual(t, b.Size, 0)
		if i > 0 {
			require.Greater(t, b.Color, blocks[i-1].Color, "block colors must ascend")
		}
		total += b.Size
	}
	require.Equal(t, rows, total, "block sizes must cover every row")
}

// TestColor_Errors covers the nil guards.
func TestColor_Errors(t *testing.T) {
	ws := newWorkspace(t)
	_, err := coloring.Color(nil, ws, coloring.DefaultOptions())
	require.ErrorIs(t, err, coloring.ErrNilMatrix)

	A, err := ellpack.FivePointStencil(2, 2)
	require.NoError(t, err)
	_, err = coloring.Color(A, nil, coloring.DefaultOptions())
	require.ErrorIs(t, err, coloring.ErrNilWorkspace)
}

// TestColor_ValidityAndBlocks colors the 16-row five-point stencil with
// the benchmark-default options and checks the coloring contract.
func TestColor_ValidityAndBlocks(t *testing.T) {
	A, err := ellpack.FivePointStencil(4, 4)
	require.NoError(t, err)
	c, err := coloring.Color(A, newWorkspace(t), coloring.DefaultOptions())
	require.NoError(t, err)

	requireValidColoring(t, A, c.Colors)
	requireCanonicalBlocks(t, c.Blocks, A.Rows)
}

// TestColor_Reproducible: a fixed seed yields identical colors and
// block structure across repeated runs.
func TestColor_Reproducible(t *testing.T) {
	opts := coloring.DefaultOptions()
	ws := newWorkspace(t)

	A1, err := ellpack.FivePointStencil(8, 8)
	require.NoError(t, err)
	c1, err := coloring.Color(A1, ws, opts)
	require.NoError(t, err)

	A2, err := ellpack.FivePointStencil(8, 8)
	require.NoError(t, err)
	c2, err := coloring.Color(A2, ws, opts)
	require.NoError(t, err)

	require.Equal(t, c1.Colors, c2.Colors)
	require.Equal(t, c1.Blocks, c2.Blocks)
}

// TestColor_SuppliedHash: checkerboard keys finish in one round with
// exactly two blocks of eight rows each.
func TestColor_SuppliedHash(t *testing.T) {
	A, err := ellpack.FivePointStencil(4, 4)
	require.NoError(t, err)
	A.Hash = checkerboardHash(4, 4)

	c, err := coloring.Color(A, newWorkspace(t), coloring.DefaultOptions())
	require.NoError(t, err)

	requireValidColoring(t, A, c.Colors)
	require.Len(t, c.Blocks, 2, "one round appends exactly two blocks")
	require.Equal(t, 8, c.Blocks[0].Size)
	require.Equal(t, 8, c.Blocks[1].Size)

	// Every black cell shares one label, every white cell the other.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			row := y*4 + x
			if (x+y)%2 == 0 {
				require.Equal(t, c.Colors[0], c.Colors[row])
			} else {
				require.Equal(t, c.Colors[1], c.Colors[row])
			}
		}
	}
}

// TestColor_SingleRow: an isolated row colors immediately; one of the
// round's two blocks stays empty.
func TestColor_SingleRow(t *testing.T) {
	A, err := ellpack.New(1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, A.SetRow(0, []int32{0}, []float64{2}))

	c, err := coloring.Color(A, newWorkspace(t), coloring.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, c.Blocks, 2)
	requireCanonicalBlocks(t, c.Blocks, 1)
	requireValidColoring(t, A, c.Colors)
}
