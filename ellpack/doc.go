// Package ellpack provides the fixed-width (ELLPACK) sparse matrix store
// that the coloring and smoother packages operate on.
//
// Every row owns exactly Width slots. A slot either holds a valid column
// index in [0, Cols) together with its coefficient, or the InvalidCol
// sentinel, which must silently contribute zero to every computation.
// Slots are laid out slot-major — slot p of row i lives at p*Rows + i —
// so that rows processed together touch adjacent memory.
//
// The store also carries the artifacts the coloring stage writes back:
// the color block table (Blocks, UpperBlocks) and the row ordering
// (Perm, Order). ApplyOrdering physically permutes the rows into block
// order; the zero-initial-guess sweep relies on the resulting invariant
// that within a row all valid slots are sorted ascending by column, with
// lower-triangular entries before the diagonal slot and upper-triangular
// entries after it.
//
// Halo metadata (HaloRows, HaloRowInd, HaloColInd, HaloVal) duplicates
// the cross-partition entries of boundary rows so the smoother can fold
// them in after the asynchronous boundary exchange completes; halo
// column indices always point into the halo-receive region [Rows, Cols).
package ellpack
