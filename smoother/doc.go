// Package smoother implements the multicolor, distributed symmetric
// Gauss-Seidel sweep over a colored, block-ordered ellpack matrix.
//
// One symmetric sweep is a forward pass over the color blocks in
// ascending order followed by a backward pass in descending order, with
// a full barrier between blocks. Rows inside one block form an
// independent set (the coloring guarantees it), so they update in full
// parallel; a row only ever reads values that earlier blocks finished
// writing.
//
// On distributed partitions the sweep overlaps communication with
// computation: the boundary exchange starts asynchronously before any
// local work, block 0 sweeps with its cross-partition entries skipped,
// and once the exchange completes a halo-correction kernel folds the
// received values into the block-0 rows. Rows of later blocks consume
// their cross-partition entries as ordinary neighbor columns, so no
// second halo pass is needed.
//
// SweepZero is the zero-initial-guess fast path: algebraically the same
// sweep with x pre-zeroed, minus every term that is known to multiply
// zero. The whole sweep is synchronous at the partition level — all
// partitions must reach the exchange point, and a stalled partition
// blocks the collective with no timeout or cancellation path.
package smoother
