// Package parallel implements the work-group execution model the
// coloring and smoother kernels run under.
//
// A kernel is a function over a contiguous index range. Run splits the
// range into per-worker chunks, executes them concurrently, and only
// returns once every chunk finished — the return is the full barrier
// that separates kernels. Groups cannot synchronize with each other
// mid-kernel; anything that needs cross-group communication is split
// into two kernels with a barrier between them.
//
// Reductions follow the same rule: phase one writes one partial result
// per group into a caller-owned Workspace, phase two folds the partials
// with a tree-halving pass. The Workspace is allocated once at setup
// and handed into every call — there is no hidden shared scratch.
package parallel
