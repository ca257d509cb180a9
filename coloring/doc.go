// Package coloring discovers a safe parallel execution order for the
// rows of a fixed-width sparse matrix.
//
// Symmetric Gauss-Seidel is sequential row by row: a row update must
// observe already-updated values from earlier-processed neighbors only.
// Instead of locking per row, the package precomputes a partial order
// once — a multicoloring in which no two adjacent rows (rows sharing an
// off-diagonal nonzero) receive the same color — so rows of one color
// form an independent set that can sweep in full parallel, with colors
// executed block by block.
//
// The algorithm is a two-color-per-round Jones-Plassmann-Luby variant:
// every round nominates two candidate colors and, for each uncolored
// row in parallel, compares seeded pseudo-random row keys against every
// uncolored neighbor. A row larger than all of them takes the round's
// first candidate, a row smaller than all of them takes the second, and
// everything else waits for the next round. The first candidates come
// shuffled out of a small fixed palette, to keep the benchmark-default
// coloring within few colors; once the palette is spent, candidates
// simply count upward, bounding the total color count.
//
// The companion block sorter turns the finished labels into a
// contiguous-by-color permutation with a stable least-significant-digit
// radix sort over only the bits the color range needs, so the result is
// deterministic whenever the coloring is.
package coloring
