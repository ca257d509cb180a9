package ellpack

import (
	"sort"

	"github.com/pkg/errors"
)

// ApplyOrdering physically permutes the rows into the block order the
// coloring stage wrote back (Perm/Order) and renumbers every local
// column index through Perm. Halo columns (>= Rows) and the halo arrays
// keep their original numbering: the smoother's halo correction maps
// halo rows through Perm at sweep time.
//
// After the call each row's valid slots are sorted ascending by the new
// column index with padding after them, so lower-triangular entries sit
// before the diagonal slot and upper-triangular entries after it — the
// invariant the zero-initial-guess sweep depends on. Hash is cleared
// because the keys refer to pre-ordering row numbering.
//
// Complexity: O(Rows*Width*log Width) time, O(Rows*Width) memory.
func (m *Matrix) ApplyOrdering() error {
	if len(m.Perm) != m.Rows || len(m.Order) != m.Rows {
		return ErrNotOrdered
	}

	colInd := make([]int32, len(m.ColInd))
	values := make([]float64, len(m.Values))
	nnz := make([]uint8, m.Rows)
	diagSlot := make([]int32, m.Rows)
	invDiag := make([]float64, m.Rows)

	type entry struct {
		col int32
		val float64
	}
	entries := make([]entry, 0, m.Width)

	for p := 0; p < m.Rows; p++ {
		orig := int(m.Order[p])
		entries = entries[:0]
		for s := 0; s < m.Width; s++ {
			idx := s*m.Rows + orig
			col := m.ColInd[idx]
			if col < 0 || int(col) >= m.Cols {
				continue
			}
			if int(col) < m.Rows {
				col = m.Perm[col]
			}
			entries = append(entries, entry{col: col, val: m.Values[idx]})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].col < entries[j].col })

		diag := -1
		for s, e := range entries {
			idx := s*m.Rows + p
			colInd[idx] = e.col
			values[idx] = e.val
			if int(e.col) == p {
				diag = s
			}
		}
		for s := len(entries); s < m.Width; s++ {
			idx := s*m.Rows + p
			colInd[idx] = InvalidCol
			values[idx] = 0
		}
		if diag < 0 {
			return errors.Wrapf(ErrMissingDiagonal, "permuted row=%d original=%d", p, orig)
		}
		nnz[p] = uint8(len(entries))
		diagSlot[p] = int32(diag)
		invDiag[p] = m.InvDiag[orig]
	}

	m.ColInd = colInd
	m.Values = values
	m.NonzerosInRow = nnz
	m.DiagSlot = diagSlot
	m.InvDiag = invDiag
	m.Hash = nil

	return nil
}
