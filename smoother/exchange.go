package smoother

import (
	"github.com/pkg/errors"

	"github.com/multigrid-lab/symgs/ellpack"
)

// Exchanger is the boundary-exchange collaborator of a distributed
// sweep. Begin initiates the asynchronous transfer of this partition's
// boundary values along a precomputed communication schedule; Complete
// blocks until the halo-receive region of x (past x.Owned) is
// populated. The pair is synchronous at the partition level: every
// partition must reach the same exchange point, and a stalled peer
// blocks the collective — there is no timeout or cancellation path.
type Exchanger interface {
	Begin(x *ellpack.Vector) error
	Complete(x *ellpack.Vector) error
}

// PairExchanger links two in-process partitions over channels. Each
// side gathers the entries named by its send schedule (permuted
// positions of its boundary rows) and delivers them into the peer's
// halo-receive region. Used to exercise distributed sweeps without a
// real transport.
type PairExchanger struct {
	send []int32
	out  chan<- []float64
	in   <-chan []float64
}

// NewPair wires two exchangers back to back. sendA and sendB list the
// permuted positions each partition sends; what A sends must match the
// halo-receive length of B's vectors and vice versa.
func NewPair(sendA, sendB []int32) (*PairExchanger, *PairExchanger) {
	ab := make(chan []float64, 1)
	ba := make(chan []float64, 1)
	a := &PairExchanger{send: sendA, out: ab, in: ba}
	b := &PairExchanger{send: sendB, out: ba, in: ab}
	return a, b
}

// Begin snapshots the scheduled boundary values of x and hands them to
// the peer. Never blocks: the link buffers one in-flight message per
// direction. Complexity: O(len(schedule)).
func (p *PairExchanger) Begin(x *ellpack.Vector) error {
	buf := make([]float64, len(p.send))
	for i, idx := range p.send {
		if int(idx) < 0 || int(idx) >= x.Owned {
			return errors.Wrapf(ErrLengthMismatch, "send schedule entry %d=%d owned=%d", i, idx, x.Owned)
		}
		buf[i] = x.Values[idx]
	}
	p.out <- buf
	return nil
}

// Complete blocks until the peer's values arrive and copies them into
// x's halo-receive region. Complexity: O(halo length).
func (p *PairExchanger) Complete(x *ellpack.Vector) error {
	buf := <-p.in
	if len(buf) != len(x.Values)-x.Owned {
		return errors.Wrapf(ErrLengthMismatch, "received %d halo values, region holds %d",
			len(buf), len(x.Values)-x.Owned)
	}
	copy(x.Values[x.Owned:], buf)
	return nil
}
