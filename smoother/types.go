// Package smoother defines the Smoother, its functional options, and
// sentinel errors.
package smoother

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for sweep preconditions.
var (
	// ErrNilMatrix indicates a nil matrix was handed to a sweep.
	ErrNilMatrix = errors.New("smoother: matrix must not be nil")

	// ErrNilVector indicates a nil right-hand side or iterate.
	ErrNilVector = errors.New("smoother: vectors must not be nil")

	// ErrLengthMismatch indicates the iterate's length differs from the
	// matrix's local column count.
	ErrLengthMismatch = errors.New("smoother: vector length mismatch")

	// ErrNotColored indicates the matrix carries no block table; run
	// coloring.Setup first.
	ErrNotColored = errors.New("smoother: matrix has not been colored")
)

// Mode selects the backward-sweep bound.
type Mode int

const (
	// ModeReference starts the backward pass at the final color block.
	ModeReference Mode = iota

	// ModeOptimized excludes the terminal block from the backward pass.
	// Safe when the terminal block's backward update is the identity;
	// verify per input with coloring.TerminalBlockSkippable.
	ModeOptimized
)

// Option configures a Smoother at construction.
type Option func(*options)

type options struct {
	mode    Mode
	workers int
	logger  logrus.FieldLogger
	metrics *Metrics
	ex      Exchanger
}

// WithMode selects the reference or optimized backward bound.
// Panics on an unknown mode (programmer error).
func WithMode(m Mode) Option {
	if m != ModeReference && m != ModeOptimized {
		panic(fmt.Sprintf("smoother: unknown mode %d", m))
	}
	return func(o *options) { o.mode = m }
}

// WithWorkers bounds the per-block work-group count; 0 selects one per
// CPU. Panics on negative counts (programmer error).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("smoother: negative worker count %d", n))
	}
	return func(o *options) { o.workers = n }
}

// WithLogger routes sweep-level debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics attaches prometheus counters to the smoother.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithExchanger attaches the boundary-exchange collaborator used on
// distributed partitions. Without one, halo metadata is ignored.
func WithExchanger(ex Exchanger) Option {
	return func(o *options) { o.ex = ex }
}

// Smoother executes symmetric Gauss-Seidel sweeps. It is stateless
// between calls; all transient state lives on the caller's matrix and
// vectors, so one Smoother may serve many matrices.
type Smoother struct {
	opt options
}

// New constructs a Smoother from the given options.
func New(opts ...Option) *Smoother {
	o := options{mode: ModeReference}
	for _, apply := range opts {
		apply(&o)
	}
	if o.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.logger = l
	}
	return &Smoother{opt: o}
}
