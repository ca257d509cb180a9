// Package ellpack defines the Matrix and Vector types, sentinel errors,
// and the block-table entry shared by the coloring and smoother packages.
package ellpack

import (
	"errors"
)

// InvalidCol marks an unused neighbor slot. Any column index outside
// [0, Cols) is treated as absent; -1 is what the builders write.
const InvalidCol int32 = -1

// Sentinel errors for store construction and ordering.
var (
	// ErrBadDimensions indicates non-positive row/column counts or cols < rows.
	ErrBadDimensions = errors.New("ellpack: invalid matrix dimensions")

	// ErrBadWidth indicates a non-positive neighbor-list width.
	ErrBadWidth = errors.New("ellpack: invalid neighbor-list width")

	// ErrRowOutOfRange indicates a row index outside [0, Rows).
	ErrRowOutOfRange = errors.New("ellpack: row index out of range")

	// ErrColumnOutOfRange indicates a column index outside [0, Cols).
	ErrColumnOutOfRange = errors.New("ellpack: column index out of range")

	// ErrTooManyEntries indicates more entries than the fixed width allows.
	ErrTooManyEntries = errors.New("ellpack: entry count exceeds row width")

	// ErrMissingDiagonal indicates a row without a diagonal entry.
	ErrMissingDiagonal = errors.New("ellpack: row has no diagonal entry")

	// ErrZeroDiagonal indicates a zero diagonal coefficient.
	ErrZeroDiagonal = errors.New("ellpack: zero diagonal entry")

	// ErrNotOrdered indicates ApplyOrdering was called before a row
	// ordering (Perm/Order) was written back by the coloring stage.
	ErrNotOrdered = errors.New("ellpack: matrix carries no row ordering")
)

// Block is one entry of the color block table: a contiguous range of
// permuted rows sharing one color. Offsets are strictly increasing,
// Offsets[0] == 0, and sizes sum to the local row count.
type Block struct {
	// Color is the color label shared by every row of the block.
	Color int32

	// Size is the number of rows in the block (may be zero).
	Size int

	// Offset is the permuted position of the block's first row.
	Offset int
}

// Matrix is a fixed-width sparse matrix in ELLPACK layout.
//
// ColInd and Values hold Width*Rows entries slot-major: slot p of row i
// is at index p*Rows + i. Valid slots carry a column index in [0, Cols);
// unused slots carry InvalidCol and a zero value.
type Matrix struct {
	// Rows is the local row count m.
	Rows int

	// Cols is the local column count n (>= Rows; the tail [Rows, Cols)
	// is the halo-receive region on distributed partitions).
	Cols int

	// Width is the fixed neighbor-list width W.
	Width int

	// ColInd holds the slot-major column indices (len Width*Rows).
	ColInd []int32

	// Values holds the slot-major coefficients (len Width*Rows).
	Values []float64

	// NonzerosInRow counts the valid slots of each row.
	NonzerosInRow []uint8

	// DiagSlot is the slot index of each row's diagonal entry.
	DiagSlot []int32

	// InvDiag is each row's inverse diagonal coefficient.
	InvDiag []float64

	// Hash holds optional per-row pseudo-random keys consumed by the
	// coloring stage. When nil, the colorer derives its own seeded keys.
	// ApplyOrdering clears it: the keys refer to pre-ordering numbering.
	Hash []int32

	// HaloRows counts the boundary rows with cross-partition entries.
	HaloRows int

	// HaloWidth is the fixed width of the halo neighbor lists.
	HaloWidth int

	// HaloRowInd maps each halo row to its original local row index.
	HaloRowInd []int32

	// HaloColInd holds slot-major halo column indices (len
	// HaloWidth*HaloRows); valid entries point into [Rows, Cols).
	HaloColInd []int32

	// HaloVal holds the slot-major halo coefficients.
	HaloVal []float64

	// Blocks is the color block table, written back by the coloring
	// stage and immutable afterwards.
	Blocks []Block

	// UpperBlocks bounds the backward sweep: the index of the last
	// block the backward pass starts from in reference mode.
	UpperBlocks int

	// Perm maps original row index to permuted position.
	Perm []int32

	// Order maps permuted position to original row index.
	Order []int32
}

// NumBlocks reports the number of color blocks. Zero means the matrix
// has not been colored yet.
func (m *Matrix) NumBlocks() int { return len(m.Blocks) }

// Vector is a dense buffer of length equal to the matrix's local column
// count. The first Owned entries belong to this partition's rows; the
// tail is the halo-receive region filled by the boundary exchange.
type Vector struct {
	// Values is the dense payload; mutated in place by the smoother.
	Values []float64

	// Owned is the number of locally-owned entries.
	Owned int
}

// NewVector allocates a zeroed vector with owned local entries out of
// total entries overall. Complexity: O(total).
func NewVector(owned, total int) (*Vector, error) {
	if owned < 0 || total < owned {
		return nil, ErrBadDimensions
	}
	return &Vector{Values: make([]float64, total), Owned: owned}, nil
}

// Zero resets every entry to zero. Complexity: O(len).
func (v *Vector) Zero() {
	for i := range v.Values {
		v.Values[i] = 0
	}
}

// Clone returns a deep copy of the vector. Complexity: O(len).
func (v *Vector) Clone() *Vector {
	out := &Vector{Values: make([]float64, len(v.Values)), Owned: v.Owned}
	copy(out.Values, v.Values)
	return out
}
