package coloring_test

import (
	"fmt"

	"github.com/multigrid-lab/symgs/coloring"
	"github.com/multigrid-lab/symgs/ellpack"
	"github.com/multigrid-lab/symgs/parallel"
)

// ExampleSetup colors a 4×4 grid Laplacian and reorders it into color
// blocks. Assembly-supplied hash keys make the split a classic
// red-black checkerboard, so exactly two blocks of eight rows come out.
func ExampleSetup() {
	A, err := ellpack.FivePointStencil(4, 4)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	// Dominant keys on the "black" cells force a red-black split.
	A.Hash = make([]int32, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			row := int32(y*4 + x)
			A.Hash[row] = row
			if (x+y)%2 == 0 {
				A.Hash[row] += 256
			}
		}
	}

	ws, err := parallel.NewWorkspace(4)
	if err != nil {
		fmt.Println("workspace:", err)
		return
	}
	if err = coloring.Setup(A, ws, coloring.DefaultOptions()); err != nil {
		fmt.Println("setup:", err)
		return
	}

	fmt.Println("blocks:", A.NumBlocks())
	for i, b := range A.Blocks {
		fmt.Printf("block %d: %d rows at offset %d\n", i, b.Size, b.Offset)
	}
	skippable, _ := coloring.TerminalBlockSkippable(A)
	fmt.Println("terminal block skippable:", skippable)
	// Output:
	// blocks: 2
	// block 0: 8 rows at offset 0
	// block 1: 8 rows at offset 8
	// terminal block skippable: true
}
