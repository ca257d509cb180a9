package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers returns the default work-group count: one per
// available CPU. Complexity: O(1).
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// Run executes fn over [0, n) split into at most workers contiguous
// chunks, one goroutine per chunk, and blocks until every chunk has
// finished. The return is a full barrier: no caller observes partial
// kernel effects. workers <= 0 selects DefaultWorkers().
// Complexity: O(n/workers) span.
func Run(n, workers int, fn func(lo, hi int)) {
	RunGroups(n, workers, func(_, lo, hi int) { fn(lo, hi) })
}

// RunGroups is Run with the group index exposed, for kernels that write
// per-group results (reduction phase one). Group g always receives the
// same chunk for a given (n, groups) pair, keeping reductions
// deterministic. Complexity: O(n/groups) span.
func RunGroups(n, groups int, fn func(g, lo, hi int)) {
	if n <= 0 {
		return
	}
	if groups <= 0 {
		groups = DefaultWorkers()
	}
	if groups > n {
		groups = n
	}
	chunk := (n + groups - 1) / groups

	var eg errgroup.Group
	for g := 0; g < groups; g++ {
		lo := g * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g := g
		eg.Go(func() error {
			fn(g, lo, hi)
			return nil
		})
	}
	// Kernels cannot fail; Wait is the barrier.
	_ = eg.Wait()
}
