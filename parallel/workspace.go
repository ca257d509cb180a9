package parallel

import "errors"

// ErrBadGroupCount indicates a non-positive work-group count.
var ErrBadGroupCount = errors.New("parallel: work-group count must be positive")

// Workspace is caller-owned scratch for two-phase reductions. One
// instance is allocated at setup, sized for the largest reduction
// needed, and passed by reference into every coloring call. It must
// not be shared between concurrent reductions.
type Workspace struct {
	groups   int
	partials []int64
}

// NewWorkspace allocates scratch for the given work-group count.
// Complexity: O(groups).
func NewWorkspace(groups int) (*Workspace, error) {
	if groups <= 0 {
		return nil, ErrBadGroupCount
	}
	// Tree-halving wants a power-of-two partial count; pad with zeros.
	size := 1
	for size < groups {
		size <<= 1
	}
	return &Workspace{groups: groups, partials: make([]int64, size)}, nil
}

// Groups reports the work-group count the workspace was sized for.
func (w *Workspace) Groups() int { return w.groups }

// Count reports how many entries of data equal target.
//
// Phase one runs one kernel that writes a partial count per work-group
// into the workspace; phase two folds the partials with a tree-halving
// pass. Complexity: O(len(data)/groups + log groups) span.
func (w *Workspace) Count(data []int32, target int32) int {
	for i := range w.partials {
		w.partials[i] = 0
	}
	RunGroups(len(data), w.groups, func(g, lo, hi int) {
		var sum int64
		for i := lo; i < hi; i++ {
			if data[i] == target {
				sum++
			}
		}
		w.partials[g] = sum
	})
	for stride := len(w.partials) / 2; stride > 0; stride >>= 1 {
		for i := 0; i < stride; i++ {
			w.partials[i] += w.partials[i+stride]
		}
	}
	return int(w.partials[0])
}
