package smoother

import (
	"github.com/pkg/errors"

	"github.com/multigrid-lab/symgs/ellpack"
	"github.com/multigrid-lab/symgs/parallel"
)

// Sweep performs one full symmetric Gauss-Seidel sweep: forward over
// the color blocks in ascending order, backward in descending order,
// using r as the fixed right-hand side and updating x in place.
//
// On a distributed partition (an Exchanger is attached and the matrix
// carries halo rows) the boundary exchange starts before any local
// work, overlaps with the block-0 forward sweep, and is joined before
// the halo correction; later blocks read the received values as
// ordinary neighbor columns.
//
// Precondition: len(x.Values) == A.Cols and A colored and block-ordered
// (coloring.Setup). Returns nil on success.
func (s *Smoother) Sweep(A *ellpack.Matrix, r, x *ellpack.Vector) error {
	if err := checkSweep(A, r, x); err != nil {
		return err
	}
	m, n := A.Rows, A.Cols
	distributed := s.opt.ex != nil && A.HaloRows > 0

	if distributed {
		if err := s.opt.ex.Begin(x); err != nil {
			return errors.Wrap(err, "smoother: begin boundary exchange")
		}
	}

	// Forward, block 0: cross-partition columns are skipped while the
	// exchange is in flight.
	s.sweepBlock(A, r, x, A.Blocks[0], m)

	if distributed {
		if err := s.opt.ex.Complete(x); err != nil {
			return errors.Wrap(err, "smoother: complete boundary exchange")
		}
		s.haloCorrect(A, x, A.Blocks[0].Size)
		s.opt.metrics.incExchanges()
	}

	// Forward, blocks 1..last. The block loop is the barrier: a block
	// never starts before the previous one fully finished.
	for i := 1; i < A.NumBlocks(); i++ {
		s.sweepBlock(A, r, x, A.Blocks[i], n)
	}

	// Backward, upper bound down to 0.
	for i := s.upperBound(A); i >= 0; i-- {
		s.sweepBlock(A, r, x, A.Blocks[i], n)
	}

	s.opt.metrics.incSweeps()
	s.opt.logger.WithField("blocks", A.NumBlocks()).Debug("symmetric sweep finished")

	return nil
}

// sweepBlock updates every row of one block in parallel:
// x[row] = InvDiag[row] * (r[row] - Σ a[row,col]·x[col]) over every
// valid neighbor column < limit. Rows of one block never neighbor each
// other, so the in-place update is race-free.
func (s *Smoother) sweepBlock(A *ellpack.Matrix, r, x *ellpack.Vector, b ellpack.Block, limit int) {
	m := A.Rows
	parallel.Run(b.Size, s.opt.workers, func(lo, hi int) {
		for g := lo; g < hi; g++ {
			row := b.Offset + g
			sum := r.Values[row]
			for p := 0; p < A.Width; p++ {
				idx := p*m + row
				col := int(A.ColInd[idx])
				if col >= 0 && col < limit && col != row {
					sum -= A.Values[idx] * x.Values[col]
				}
			}
			x.Values[row] = sum * A.InvDiag[row]
		}
	})
}

// haloCorrect folds the received boundary values into the block-0 rows:
// x[pos] += InvDiag[pos] * Σ (-HaloVal·x[haloCol]) for every halo row
// whose permuted position lands inside block 0. Rows outside block 0
// keep their cross-partition entries as ordinary >= Rows columns and
// consume them when their own block is swept.
func (s *Smoother) haloCorrect(A *ellpack.Matrix, x *ellpack.Vector, blockRows int) {
	n := A.Cols
	parallel.Run(A.HaloRows, s.opt.workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			pos := int(A.Perm[A.HaloRowInd[i]])
			if pos >= blockRows {
				continue
			}
			sum := 0.0
			for p := 0; p < A.HaloWidth; p++ {
				idx := p*A.HaloRows + i
				col := int(A.HaloColInd[idx])
				if col >= 0 && col < n {
					sum -= A.HaloVal[idx] * x.Values[col]
				}
			}
			x.Values[pos] += sum * A.InvDiag[pos]
		}
	})
}

// upperBound resolves the first backward block for the configured mode.
func (s *Smoother) upperBound(A *ellpack.Matrix) int {
	ub := A.UpperBlocks
	if ub > A.NumBlocks()-1 {
		ub = A.NumBlocks() - 1
	}
	if s.opt.mode == ModeOptimized {
		ub--
	}
	return ub
}

func checkSweep(A *ellpack.Matrix, r, x *ellpack.Vector) error {
	if A == nil {
		return ErrNilMatrix
	}
	if r == nil || x == nil {
		return ErrNilVector
	}
	if A.NumBlocks() == 0 || len(A.Perm) != A.Rows {
		return ErrNotColored
	}
	if len(x.Values) != A.Cols || len(r.Values) < A.Rows {
		return errors.Wrapf(ErrLengthMismatch, "x=%d r=%d cols=%d", len(x.Values), len(r.Values), A.Cols)
	}
	return nil
}
