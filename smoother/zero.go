package smoother

import (
	"github.com/multigrid-lab/symgs/ellpack"
	"github.com/multigrid-lab/symgs/parallel"
)

// SweepZero performs one symmetric sweep exploiting x starting at all
// zeros. It is algebraically equivalent to Sweep on a pre-zeroed x but
// never computes a term known to multiply zero:
//
//   - block 0 degenerates to x[row] = r[row]·InvDiag[row];
//   - later forward blocks only visit lower-triangular slots with
//     columns before the block offset (everything at or after is still
//     zero);
//   - the backward pass recomputes each row from its diagonal product,
//     excluding columns before the offset, which the forward pass
//     already finalized.
//
// No boundary exchange happens: with a zero guess every partition's
// boundary values are zero. Precondition: x zeroed, len(x.Values) ==
// A.Cols, A colored and block-ordered. Returns nil on success.
func (s *Smoother) SweepZero(A *ellpack.Matrix, r, x *ellpack.Vector) error {
	if err := checkSweep(A, r, x); err != nil {
		return err
	}
	m := A.Rows

	// Forward, block 0: pointwise r·InvDiag.
	parallel.Run(A.Blocks[0].Size, s.opt.workers, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			x.Values[row] = r.Values[row] * A.InvDiag[row]
		}
	})

	// Forward, blocks 1..last: lower-triangular slots only, columns
	// strictly before the block offset.
	for i := 1; i < A.NumBlocks(); i++ {
		b := A.Blocks[i]
		parallel.Run(b.Size, s.opt.workers, func(lo, hi int) {
			for g := lo; g < hi; g++ {
				row := b.Offset + g
				diag := int(A.DiagSlot[row])
				diagVal := A.Values[diag*m+row]
				sum := r.Values[row]
				for p := 0; p < diag; p++ {
					idx := p*m + row
					col := int(A.ColInd[idx])
					if col >= 0 && col < b.Offset {
						sum -= A.Values[idx] * x.Values[col]
					}
				}
				x.Values[row] = sum / diagVal
			}
		})
	}

	// Backward, upper bound down to 0: scale by the diagonal, fold in
	// upper-triangular columns at or after the offset, divide back.
	for i := s.upperBound(A); i >= 0; i-- {
		b := A.Blocks[i]
		parallel.Run(b.Size, s.opt.workers, func(lo, hi int) {
			for g := lo; g < hi; g++ {
				row := b.Offset + g
				diag := int(A.DiagSlot[row])
				diagVal := A.Values[diag*m+row]
				sum := x.Values[row] * diagVal
				for p := diag + 1; p < A.Width; p++ {
					idx := p*m + row
					col := int(A.ColInd[idx])
					if col >= b.Offset && col < m {
						sum -= A.Values[idx] * x.Values[col]
					}
				}
				x.Values[row] = sum / diagVal
			}
		})
	}

	s.opt.metrics.incZeroSweeps()
	s.opt.logger.WithField("blocks", A.NumBlocks()).Debug("zero-guess sweep finished")

	return nil
}
