// Package algebra provides generic dense matrix and vector products over
// dynamically-sized real matrices.
//
// Matrices are row-major slices of rows. The rotation pipeline itself runs
// on the fixed-size 3×3 type in internal/frame; this package is the
// general-purpose layer the fixed-size results are checked against, and it
// works for any compatible shapes, not just 3×3.
//
// All operations are pure and safe for concurrent use. Shape mismatches
// return an error wrapping ErrDimension; no partial results are returned.
package algebra

import (
	"errors"
	"fmt"
)

// ErrDimension reports incompatible vector or matrix shapes.
var ErrDimension = errors.New("incompatible dimensions")

// Vector is a dense real vector.
type Vector []float64

// Matrix is a dense real matrix stored as row-major rows.
// All rows must have equal length.
type Matrix []Vector

// Dot returns the inner product of two vectors of equal length.
func Dot(x, y Vector) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("vector dot %d·%d: %w", len(x), len(y), ErrDimension)
	}
	var sum float64
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum, nil
}

// MatMul returns the matrix product A·B.
// The number of columns of A must equal the number of rows of B.
func MatMul(a, b Matrix) (Matrix, error) {
	ma, na := dims(a)
	mb, nb := dims(b)
	if na != mb {
		return nil, fmt.Errorf("matmul %dx%d · %dx%d: %w", ma, na, mb, nb, ErrDimension)
	}
	c := make(Matrix, ma)
	for i := range c {
		c[i] = make(Vector, nb)
		for j := 0; j < nb; j++ {
			var sum float64
			for k := 0; k < na; k++ {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
	return c, nil
}

// MatVec returns the matrix-vector product y = A·x.
func MatVec(a Matrix, x Vector) (Vector, error) {
	m, n := dims(a)
	if len(x) != n {
		return nil, fmt.Errorf("matvec %dx%d · %d: %w", m, n, len(x), ErrDimension)
	}
	y := make(Vector, m)
	for i := 0; i < m; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += a[i][j] * x[j]
		}
		y[i] = sum
	}
	return y, nil
}

// VecMat returns the row-vector-matrix product y = xᵀ·A.
func VecMat(x Vector, a Matrix) (Vector, error) {
	m, n := dims(a)
	if len(x) != m {
		return nil, fmt.Errorf("vecmat %d · %dx%d: %w", len(x), m, n, ErrDimension)
	}
	y := make(Vector, n)
	for j := 0; j < n; j++ {
		var sum float64
		for i := 0; i < m; i++ {
			sum += a[i][j] * x[i]
		}
		y[j] = sum
	}
	return y, nil
}

// Transpose returns a new matrix with row and column roles swapped.
func Transpose(a Matrix) Matrix {
	m, n := dims(a)
	c := make(Matrix, n)
	for j := range c {
		c[j] = make(Vector, m)
		for i := 0; i < m; i++ {
			c[j][i] = a[i][j]
		}
	}
	return c
}

// dims returns the row and column counts of a. An empty matrix is 0x0.
func dims(a Matrix) (rows, cols int) {
	if len(a) == 0 {
		return 0, 0
	}
	return len(a), len(a[0])
}
