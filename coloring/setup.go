package coloring

import (
	"github.com/multigrid-lab/symgs/ellpack"
	"github.com/multigrid-lab/symgs/parallel"
)

// Setup is the single-call coloring entry point: it colors the matrix,
// sorts the labels into the block ordering, writes the block table and
// the permutation back into the matrix, and physically reorders the
// matrix rows. After Setup the matrix is ready for the smoother.
//
// The backward-sweep bound is written in its reference form
// (UpperBlocks = last block); the smoother's optimized mode narrows it
// at sweep time. Complexity: dominated by Color.
func Setup(A *ellpack.Matrix, ws *parallel.Workspace, opts Options) error {
	c, err := Color(A, ws, opts)
	if err != nil {
		return err
	}
	ord, err := c.Ordering()
	if err != nil {
		return err
	}
	A.Blocks = c.Blocks
	A.UpperBlocks = len(c.Blocks) - 1
	A.Perm = ord.Perm
	A.Order = ord.Order

	return A.ApplyOrdering()
}

// TerminalBlockSkippable reports whether the final color block can be
// excluded from the backward sweep on this matrix: true when no row of
// the block has a valid local neighbor at or after the block's offset,
// so the block's backward update is the identity. The matrix must
// already be in block order (Setup or ApplyOrdering).
//
// The property holds by construction whenever the final block carries
// the largest label of a valid coloring, but it is cheap to verify per
// input instead of assuming it across all graphs. Complexity:
// O(Size * Width).
func TerminalBlockSkippable(A *ellpack.Matrix) (bool, error) {
	if A == nil {
		return false, ErrNilMatrix
	}
	if A.NumBlocks() == 0 || len(A.Perm) != A.Rows {
		return false, ErrNotColored
	}
	last := A.Blocks[A.NumBlocks()-1]
	for p := last.Offset; p < last.Offset+last.Size; p++ {
		for s := 0; s < A.Width; s++ {
			col := int(A.ColInd[s*A.Rows+p])
			if col < 0 || col >= A.Rows || col == p {
				continue
			}
			if col >= last.Offset {
				return false, nil
			}
		}
	}
	return true, nil
}
