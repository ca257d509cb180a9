package coloring

import "math/bits"

// radixBits is the digit width of one counting pass.
const radixBits = 8

// Ordering turns the finished labels into the contiguous-by-color row
// ordering the smoother executes under. It is a stable key-value
// least-significant-digit radix sort over (color label, original row),
// touching only the bits the observed color range needs, followed by
// the inverse scatter that yields Perm. Stability keeps original
// relative order within each color, so the result is deterministic
// whenever the coloring is.
//
// Complexity: O(Rows * ceil(bits/8)) time, O(Rows) memory.
func (c *Coloring) Ordering() (*Ordering, error) {
	if c == nil || len(c.Colors) == 0 || len(c.Blocks) == 0 {
		return nil, ErrNotColored
	}
	m := len(c.Colors)
	keys := make([]int32, m)
	copy(keys, c.Colors)
	order := make([]int32, m)
	for i := range order {
		order[i] = int32(i)
	}

	// Blocks are canonical ascending, so the last one holds the top label.
	maxLabel := c.Blocks[len(c.Blocks)-1].Color
	need := bits.Len32(uint32(maxLabel))

	tmpKeys := make([]int32, m)
	tmpOrder := make([]int32, m)
	for shift := 0; shift < need; shift += radixBits {
		var count [1 << radixBits]int
		for _, k := range keys {
			count[(k>>shift)&(1<<radixBits-1)]++
		}
		pos := 0
		for d := range count {
			count[d], pos = pos, pos+count[d]
		}
		for i, k := range keys {
			d := (k >> shift) & (1<<radixBits - 1)
			tmpKeys[count[d]] = k
			tmpOrder[count[d]] = order[i]
			count[d]++
		}
		keys, tmpKeys = tmpKeys, keys
		order, tmpOrder = tmpOrder, order
	}

	perm := make([]int32, m)
	for i, row := range order {
		perm[row] = int32(i)
	}

	return &Ordering{Order: order, Perm: perm}, nil
}
