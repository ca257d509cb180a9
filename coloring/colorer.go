package coloring

import (
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/multigrid-lab/symgs/ellpack"
	"github.com/multigrid-lab/symgs/parallel"
)

// Row roles decided in the first kernel of a round and applied in the
// second; the split keeps every round race-free against a stable label
// snapshot.
const (
	roleNone int8 = iota
	roleMax
	roleMin
)

// Color runs the Jones-Plassmann-Luby loop until every row holds a
// label and returns the labels together with the canonical block table.
// Two candidate labels per round: while the palette lasts they come out
// of a seeded shuffle of [0, PaletteSize); afterwards they are simply
// the next two increasing integers. A round colors the local maxima of
// the key order among uncolored rows with the first candidate and the
// local minima with the second; everyone else waits.
//
// Per-row keys come from A.Hash when the assembly stage supplied them,
// otherwise from a seeded pseudo-random permutation of [0, Rows). Key
// ties fall back to the row index, so the comparison is a strict total
// order and every round makes progress.
//
// Complexity: O(rounds * Rows * Width) work; mesh-like inputs finish in
// O(log Rows) rounds with high probability.
func Color(A *ellpack.Matrix, ws *parallel.Workspace, opts Options) (*Coloring, error) {
	if A == nil {
		return nil, ErrNilMatrix
	}
	if ws == nil {
		return nil, ErrNilWorkspace
	}
	m := A.Rows
	log := opts.logger()

	rng := rand.New(rand.NewSource(opts.Seed))
	hash := A.Hash
	if len(hash) != m {
		hash = make([]int32, m)
		for i, v := range rng.Perm(m) {
			hash[i] = int32(v)
		}
	}
	palette := make([]int32, opts.paletteSize())
	for i, v := range rng.Perm(len(palette)) {
		palette[i] = int32(v)
	}

	colors := make([]int32, m)
	for i := range colors {
		colors[i] = Uncolored
	}
	roles := make([]int8, m)

	type rawBlock struct {
		color int32
		size  int
	}
	var raw []rawBlock
	colored := 0
	round := 0

	for colored != m {
		var label1, label2 int32
		if len(raw)+2 <= len(palette) {
			label1, label2 = palette[len(raw)], palette[len(raw)+1]
		} else {
			label1, label2 = int32(len(raw)), int32(len(raw)+1)
		}

		// Kernel 1: decide each uncolored row's role against a stable
		// snapshot of the labels.
		parallel.Run(m, opts.Workers, func(lo, hi int) {
			for row := lo; row < hi; row++ {
				roles[row] = roleNone
				if colors[row] != Uncolored {
					continue
				}
				maxOK, minOK := true, true
				for s := 0; s < A.Width; s++ {
					col := A.ColInd[s*m+row]
					if col < 0 || int(col) >= m || int(col) == row {
						continue
					}
					switch c := colors[col]; c {
					case Uncolored:
						if keyLess(hash[row], int32(row), hash[col], col) {
							maxOK = false
						} else {
							minOK = false
						}
					case label1:
						maxOK = false
					case label2:
						minOK = false
					}
				}
				if maxOK {
					roles[row] = roleMax
				} else if minOK {
					roles[row] = roleMin
				}
			}
		})

		// Kernel 2: apply the decided labels.
		parallel.Run(m, opts.Workers, func(lo, hi int) {
			for row := lo; row < hi; row++ {
				switch roles[row] {
				case roleMax:
					colors[row] = label1
				case roleMin:
					colors[row] = label2
				}
			}
		})

		size1 := ws.Count(colors, label1)
		size2 := ws.Count(colors, label2)
		raw = append(raw, rawBlock{color: label1, size: size1})
		raw = append(raw, rawBlock{color: label2, size: size2})
		colored += size1 + size2
		round++

		log.WithFields(logrus.Fields{
			"round":   round,
			"labels":  [2]int32{label1, label2},
			"colored": colored,
			"rows":    m,
		}).Debug("coloring round finished")
	}

	// Canonicalize: the block table must match the sorter's ascending
	// color layout even when the palette shuffle drew labels out of
	// order. Labels are unique per block, so this is a plain reorder.
	sort.Slice(raw, func(i, j int) bool { return raw[i].color < raw[j].color })
	blocks := make([]ellpack.Block, len(raw))
	offset := 0
	for i, b := range raw {
		blocks[i] = ellpack.Block{Color: b.color, Size: b.size, Offset: offset}
		offset += b.size
	}

	return &Coloring{Colors: colors, Blocks: blocks}, nil
}

// keyLess orders rows by (hash, row index); the index tie-break makes
// the order strict even for colliding caller-supplied keys.
func keyLess(h1, r1, h2, r2 int32) bool {
	if h1 != h2 {
		return h1 < h2
	}
	return r1 < r2
}
