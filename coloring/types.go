// Package coloring defines options, sentinel errors, and result types
// for the multicoloring stage.
package coloring

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/multigrid-lab/symgs/ellpack"
)

// Uncolored is the label of a row no round has claimed yet.
const Uncolored int32 = -1

// DefaultPaletteSize bounds the pseudo-random candidate range: the
// first DefaultPaletteSize block labels are a seeded shuffle of
// [0, DefaultPaletteSize); later labels count upward from there.
const DefaultPaletteSize = 8

// DefaultSeed is the fixed seed the benchmark-default coloring uses.
const DefaultSeed int64 = 42

// Sentinel errors for coloring operations.
var (
	// ErrNilMatrix indicates a nil matrix was handed to the colorer.
	ErrNilMatrix = errors.New("coloring: matrix must not be nil")

	// ErrNilWorkspace indicates a nil reduction workspace.
	ErrNilWorkspace = errors.New("coloring: workspace must not be nil")

	// ErrNotColored indicates an operation that needs finished labels
	// ran before Color produced them.
	ErrNotColored = errors.New("coloring: matrix has not been colored")
)

// Options configures the colorer.
type Options struct {
	// Seed drives both the per-row hash keys (when the matrix does not
	// supply its own) and the palette shuffle. Fixed seed, fixed result.
	Seed int64

	// PaletteSize is the size of the small label range the first rounds
	// draw from; 0 selects DefaultPaletteSize.
	PaletteSize int

	// Workers bounds the work-group count; 0 selects one per CPU.
	Workers int

	// Logger receives round-level debug output. Nil stays silent.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the benchmark-default configuration.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed, PaletteSize: DefaultPaletteSize}
}

func (o Options) paletteSize() int {
	if o.PaletteSize <= 0 {
		return DefaultPaletteSize
	}
	return o.PaletteSize
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return nopLogger
}

var nopLogger = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Coloring holds the finished per-row labels and the canonical block
// table (ascending color id, prefix-sum offsets, sizes summing to the
// row count). Immutable once returned.
type Coloring struct {
	// Colors is the per-row color label.
	Colors []int32

	// Blocks is the block table, ordered by ascending color id.
	Blocks []ellpack.Block
}

// Ordering is the bijection the block sorter produces: Order maps a
// permuted position to its original row, Perm maps an original row to
// its permuted position. Rows are grouped contiguously by ascending
// color, original relative order preserved within each color.
type Ordering struct {
	Order []int32
	Perm  []int32
}
