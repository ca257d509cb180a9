package ellpack

import (
	"sort"

	"github.com/pkg/errors"
)

// New allocates an empty fixed-width matrix with rows local rows, cols
// local columns (cols >= rows; the tail is the halo-receive region) and
// width neighbor slots per row. Every slot starts as InvalidCol.
// Complexity: O(rows*width).
func New(rows, cols, width int) (*Matrix, error) {
	if rows <= 0 || cols < rows {
		return nil, errors.Wrapf(ErrBadDimensions, "rows=%d cols=%d", rows, cols)
	}
	if width <= 0 || width > 255 {
		return nil, errors.Wrapf(ErrBadWidth, "width=%d", width)
	}
	m := &Matrix{
		Rows:          rows,
		Cols:          cols,
		Width:         width,
		ColInd:        make([]int32, rows*width),
		Values:        make([]float64, rows*width),
		NonzerosInRow: make([]uint8, rows),
		DiagSlot:      make([]int32, rows),
		InvDiag:       make([]float64, rows),
	}
	for i := range m.ColInd {
		m.ColInd[i] = InvalidCol
	}
	return m, nil
}

// SetRow fills one row from parallel column/value slices. Entries are
// stored sorted ascending by column, padding after the valid slots, and
// the row's nonzero count, diagonal slot and inverse diagonal are
// recomputed. The row must contain its diagonal (col == row) with a
// non-zero coefficient. Complexity: O(width log width).
func (m *Matrix) SetRow(row int, cols []int32, vals []float64) error {
	if row < 0 || row >= m.Rows {
		return errors.Wrapf(ErrRowOutOfRange, "row=%d rows=%d", row, m.Rows)
	}
	if len(cols) != len(vals) || len(cols) > m.Width {
		return errors.Wrapf(ErrTooManyEntries, "row=%d entries=%d width=%d", row, len(cols), m.Width)
	}
	type entry struct {
		col int32
		val float64
	}
	entries := make([]entry, len(cols))
	for i, c := range cols {
		if c < 0 || int(c) >= m.Cols {
			return errors.Wrapf(ErrColumnOutOfRange, "row=%d col=%d cols=%d", row, c, m.Cols)
		}
		entries[i] = entry{col: c, val: vals[i]}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].col < entries[j].col })

	diag := -1
	for i, e := range entries {
		if int(e.col) == row {
			diag = i
		}
	}
	if diag < 0 {
		return errors.Wrapf(ErrMissingDiagonal, "row=%d", row)
	}
	if entries[diag].val == 0 {
		return errors.Wrapf(ErrZeroDiagonal, "row=%d", row)
	}

	for p := 0; p < m.Width; p++ {
		idx := p*m.Rows + row
		if p < len(entries) {
			m.ColInd[idx] = entries[p].col
			m.Values[idx] = entries[p].val
		} else {
			m.ColInd[idx] = InvalidCol
			m.Values[idx] = 0
		}
	}
	m.NonzerosInRow[row] = uint8(len(entries))
	m.DiagSlot[row] = int32(diag)
	m.InvDiag[row] = 1.0 / entries[diag].val

	return nil
}

// SetHalo installs the duplicated cross-partition entries of the
// boundary rows. rowInd maps each halo row to its local row index;
// colInd/val are slot-major with the given width and valid columns in
// [Rows, Cols). Complexity: O(len(colInd)).
func (m *Matrix) SetHalo(width int, rowInd []int32, colInd []int32, val []float64) error {
	if width <= 0 {
		return errors.Wrapf(ErrBadWidth, "halo width=%d", width)
	}
	n := len(rowInd)
	if len(colInd) != n*width || len(val) != n*width {
		return errors.Wrapf(ErrBadDimensions, "halo rows=%d width=%d colInd=%d val=%d",
			n, width, len(colInd), len(val))
	}
	for _, r := range rowInd {
		if r < 0 || int(r) >= m.Rows {
			return errors.Wrapf(ErrRowOutOfRange, "halo row=%d rows=%d", r, m.Rows)
		}
	}
	for _, c := range colInd {
		if c != InvalidCol && (int(c) < m.Rows || int(c) >= m.Cols) {
			return errors.Wrapf(ErrColumnOutOfRange, "halo col=%d range=[%d,%d)", c, m.Rows, m.Cols)
		}
	}
	m.HaloRows = n
	m.HaloWidth = width
	m.HaloRowInd = rowInd
	m.HaloColInd = colInd
	m.HaloVal = val

	return nil
}
