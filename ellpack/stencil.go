package ellpack

import "github.com/pkg/errors"

// FivePointStencil builds the classic 2D Laplacian on an nx×ny grid:
// width-5 rows with 4 on the diagonal and -1 toward each orthogonal
// grid neighbor. The result is symmetric and diagonally dominant, which
// makes it the canonical smoother test problem.
// Complexity: O(nx*ny).
func FivePointStencil(nx, ny int) (*Matrix, error) {
	if nx <= 0 || ny <= 0 {
		return nil, errors.Wrapf(ErrBadDimensions, "nx=%d ny=%d", nx, ny)
	}
	m, err := New(nx*ny, nx*ny, 5)
	if err != nil {
		return nil, err
	}
	cols := make([]int32, 0, 5)
	vals := make([]float64, 0, 5)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			row := y*nx + x
			cols, vals = cols[:0], vals[:0]
			cols = append(cols, int32(row))
			vals = append(vals, 4.0)
			if x > 0 {
				cols = append(cols, int32(row-1))
				vals = append(vals, -1.0)
			}
			if x < nx-1 {
				cols = append(cols, int32(row+1))
				vals = append(vals, -1.0)
			}
			if y > 0 {
				cols = append(cols, int32(row-nx))
				vals = append(vals, -1.0)
			}
			if y < ny-1 {
				cols = append(cols, int32(row+nx))
				vals = append(vals, -1.0)
			}
			if err = m.SetRow(row, cols, vals); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Tridiagonal builds a width-3 chain matrix with 2.5 on the diagonal
// and -1 toward both neighbors; strictly diagonally dominant.
// Complexity: O(rows).
func Tridiagonal(rows int) (*Matrix, error) {
	m, err := New(rows, rows, 3)
	if err != nil {
		return nil, err
	}
	cols := make([]int32, 0, 3)
	vals := make([]float64, 0, 3)
	for i := 0; i < rows; i++ {
		cols, vals = cols[:0], vals[:0]
		cols = append(cols, int32(i))
		vals = append(vals, 2.5)
		if i > 0 {
			cols = append(cols, int32(i-1))
			vals = append(vals, -1.0)
		}
		if i < rows-1 {
			cols = append(cols, int32(i+1))
			vals = append(vals, -1.0)
		}
		if err = m.SetRow(i, cols, vals); err != nil {
			return nil, err
		}
	}
	return m, nil
}
