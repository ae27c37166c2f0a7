package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrNotSquare is returned when decoding a matrix whose rows do not all
	// have as many cells as there are rows.
	ErrNotSquare = errors.New("adjacency matrix is not square")

	// ErrCellOutOfRange is returned when decoding a matrix cell outside [0, 255].
	ErrCellOutOfRange = errors.New("adjacency matrix cell out of range")
)

// Matrix is a dense square adjacency matrix of small non-negative integers.
// A cell value of 0 means absent and 1 means present.
//
// The zero value is a valid 0×0 matrix.
type Matrix struct {
	n     int
	cells []uint8
}

// NewMatrix returns an n×n matrix with every cell set to 0.
// A negative n is treated as 0.
func NewMatrix(n int) Matrix {
	n = max(n, 0)
	return Matrix{n: n, cells: make([]uint8, n*n)}
}

// MatrixFromRows builds a matrix from row slices. It returns ErrNotSquare if
// any row length differs from the number of rows.
func MatrixFromRows(rows [][]uint8) (Matrix, error) {
	m := NewMatrix(len(rows))
	for i, row := range rows {
		if len(row) != m.n {
			return Matrix{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, i, len(row), m.n)
		}
		copy(m.cells[i*m.n:], row)
	}
	return m, nil
}

// Size returns the dimension n of the n×n matrix.
func (m Matrix) Size() int { return m.n }

// Shape returns the row and column counts, which are always equal.
func (m Matrix) Shape() (int, int) { return m.n, m.n }

// At returns the cell at row i, column j. It panics if either index is out
// of range.
func (m Matrix) At(i, j int) uint8 {
	m.check(i, j)
	return m.cells[i*m.n+j]
}

// Set writes v to the cell at row i, column j. It panics if either index is
// out of range.
func (m *Matrix) Set(i, j int, v uint8) {
	m.check(i, j)
	m.cells[i*m.n+j] = v
}

func (m Matrix) check(i, j int) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("graph: matrix index [%d,%d] out of range for %d×%d", i, j, m.n, m.n))
	}
}

// Rows returns a copy of the matrix as row slices.
func (m Matrix) Rows() [][]uint8 {
	rows := make([][]uint8, m.n)
	for i := range rows {
		rows[i] = slices.Clone(m.cells[i*m.n : (i+1)*m.n])
	}
	return rows
}

// Clone returns an independent copy of m.
func (m Matrix) Clone() Matrix {
	return Matrix{n: m.n, cells: slices.Clone(m.cells)}
}

// IsSymmetric reports whether m[i][j] == m[j][i] for every i, j.
func (m Matrix) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.cells[i*m.n+j] != m.cells[j*m.n+i] {
				return false
			}
		}
	}
	return true
}

// Equal reports whether m and o have the same size and cell contents.
func (m Matrix) Equal(o Matrix) bool {
	return m.n == o.n && slices.Equal(m.cells, o.cells)
}

// Ones returns the number of non-zero cells.
func (m Matrix) Ones() int {
	count := 0
	for _, c := range m.cells {
		if c != 0 {
			count++
		}
	}
	return count
}

// String renders the matrix as bracketed rows:
//
//	[[0, 1],
//	 [1, 0]]
//
// A 0×0 matrix renders as "[]".
func (m Matrix) String() string {
	if m.n == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteString(",\n ")
		}
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(int(m.cells[i*m.n+j])))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

// MarshalJSON encodes the matrix as a 2-D array of integers.
func (m Matrix) MarshalJSON() ([]byte, error) {
	rows := make([][]int, m.n)
	for i := range rows {
		row := make([]int, m.n)
		for j := range row {
			row[j] = int(m.cells[i*m.n+j])
		}
		rows[i] = row
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes a 2-D array of integers, rejecting ragged or
// non-square input and cells outside [0, 255].
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var rows [][]int
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	out := NewMatrix(len(rows))
	for i, row := range rows {
		if len(row) != out.n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, i, len(row), out.n)
		}
		for j, v := range row {
			if v < 0 || v > 255 {
				return fmt.Errorf("%w: [%d,%d] = %d", ErrCellOutOfRange, i, j, v)
			}
			out.cells[i*out.n+j] = uint8(v)
		}
	}
	*m = out
	return nil
}
