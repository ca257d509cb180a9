// Package symgs implements the parallel heart of a multicolor symmetric
// Gauss-Seidel smoother: a randomized Jones-Plassmann-Luby graph coloring
// that discovers a safe parallel execution order for the rows of a
// fixed-width sparse matrix, and block-ordered forward/backward sweeps
// that run under that order, including cross-partition halo correction.
//
// 🚀 What is symgs?
//
//	A deterministic, goroutine-parallel smoother core that brings together:
//		• ellpack/  — the fixed-width (ELLPACK) sparse store, dense vectors,
//		  block tables, permutations and stencil generators
//		• parallel/ — the work-group execution model: chunked row ranges,
//		  barriers between kernels, two-phase reductions over a caller-owned
//		  workspace
//		• coloring/ — two-color-per-round JPL coloring plus the stable radix
//		  block sorter that turns color labels into a contiguous-by-color
//		  permutation
//		• smoother/ — the multicolor symmetric Gauss-Seidel sweeps (general
//		  and zero-initial-guess), with asynchronous boundary exchange and
//		  halo correction for distributed runs
//
// ✨ Why choose symgs?
//
//   - Deterministic – fixed seeds yield identical colors, blocks, permutations
//   - Caller-owned state – reduction scratch and vectors are handed in, never
//     hidden in globals
//   - Parallel where it is safe – rows inside one color block never depend on
//     each other, so they sweep concurrently; blocks are separated by barriers
//
// Typical flow:
//
//	A, _ := ellpack.FivePointStencil(64, 64)
//	ws, _ := parallel.NewWorkspace(parallel.DefaultWorkers())
//	_ = coloring.Setup(A, ws, coloring.DefaultOptions())
//	sm := smoother.New()
//	_ = sm.SweepZero(A, r, x)
//
// Dive into the package docs for the data-layout invariants each component
// relies on.
//
//	go get github.com/multigrid-lab/symgs
package symgs
