// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dok provides a dictionary-of-keys sparse matrix used as the
// mutable assembly store of a sparse block.
package dok

type index struct {
	row, col int
}

// Matrix is a sparse matrix in dictionary-of-keys format. Set and Add are
// cheap; it is the staging area for assembly and is converted to a
// compressed format for multiplication.
type Matrix struct {
	rows, cols int

	data map[index]float64
}

// New returns an empty r×c matrix.
func New(r, c int) *Matrix {
	return &Matrix{
		rows: r,
		cols: c,
		data: make(map[index]float64),
	}
}

// Dims returns the matrix dimensions.
func (m *Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// NNonzero returns the number of stored elements.
func (m *Matrix) NNonzero() int {
	return len(m.data)
}

// At returns the element at (i, j); unset elements are zero.
func (m *Matrix) At(i, j int) float64 {
	m.check(i, j)
	return m.data[index{i, j}]
}

// SetAt sets the element at (i, j) to v.
func (m *Matrix) SetAt(i, j int, v float64) {
	m.check(i, j)
	m.data[index{i, j}] = v
}

// AddAt adds v to the element at (i, j).
func (m *Matrix) AddAt(i, j int, v float64) {
	m.check(i, j)
	m.data[index{i, j}] += v
}

// Do calls f for every stored element. The order is unspecified.
func (m *Matrix) Do(f func(i, j int, v float64)) {
	for ij, v := range m.data {
		f(ij.row, ij.col, v)
	}
}

func (m *Matrix) check(i, j int) {
	if i < 0 || m.rows <= i {
		panic("dok: row index out of range")
	}
	if j < 0 || m.cols <= j {
		panic("dok: column index out of range")
	}
}
