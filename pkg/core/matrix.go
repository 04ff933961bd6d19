package core

import (
	"golang.org/x/xerrors"
)

// ErrNotInvertible is returned when inverting a matrix whose determinant is zero
var ErrNotInvertible = xerrors.New("matrix is not invertible")

// Matrix is a 4x4 row-major matrix applied to column tuples
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns m * t, treating t as a 4x1 column
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant computes the determinant by cofactor expansion along row 0
func (m Matrix) Determinant() float64 {
	return determinant(m.rows())
}

// Minor returns the determinant of the submatrix with row and col removed
func (m Matrix) Minor(row, col int) float64 {
	return minor(m.rows(), row, col)
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	return cofactor(m.rows(), row, col)
}

// Inverse returns the inverse matrix, or ErrNotInvertible if the
// determinant is exactly zero.
func (m Matrix) Inverse() (Matrix, error) {
	rows := m.rows()
	det := determinant(rows)
	if det == 0 {
		return Matrix{}, xerrors.Errorf("inverting matrix with determinant %g: %w", det, ErrNotInvertible)
	}

	// Transposed cofactor matrix (adjugate) divided by the determinant
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = cofactor(rows, row, col) / det
		}
	}
	return result, nil
}

// IsInvertible reports whether the matrix has a non-zero determinant
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// ApproxEqual compares two matrices element-wise within Epsilon
func (m Matrix) ApproxEqual(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !ApproxEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) rows() [][]float64 {
	rows := make([][]float64, 4)
	for i := range rows {
		rows[i] = m[i][:]
	}
	return rows
}

// determinant works on any square matrix. 2x2 is ad-bc, larger sizes
// expand along the first row.
func determinant(m [][]float64) float64 {
	switch len(m) {
	case 0:
		return 1
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}

	det := 0.0
	for col := range m[0] {
		det += m[0][col] * cofactor(m, 0, col)
	}
	return det
}

// submatrix returns a copy of m with the given row and column removed
func submatrix(m [][]float64, row, col int) [][]float64 {
	result := make([][]float64, 0, len(m)-1)
	for r := range m {
		if r == row {
			continue
		}
		newRow := make([]float64, 0, len(m[r])-1)
		for c := range m[r] {
			if c == col {
				continue
			}
			newRow = append(newRow, m[r][c])
		}
		result = append(result, newRow)
	}
	return result
}

func minor(m [][]float64, row, col int) float64 {
	return determinant(submatrix(m, row, col))
}

func cofactor(m [][]float64, row, col int) float64 {
	value := minor(m, row, col)
	if (row+col)%2 == 1 {
		return -value
	}
	return value
}
