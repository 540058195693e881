// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csr provides an immutable compressed sparse row matrix built as
// the multiplication snapshot of an assembly store.
package csr

import "sort"

// Matrix is a sparse matrix in compressed sparse row format. It is built
// once from unordered triplets and not mutated afterwards.
type Matrix struct {
	rows, cols int

	rowPtr []int
	colIdx []int
	val    []float64
}

// New builds an r×c matrix from the parallel triplet slices i, j, v. The
// triplets need not be ordered but must be unique.
func New(r, c int, i, j []int, v []float64) *Matrix {
	if len(i) != len(j) || len(i) != len(v) {
		panic("csr: mismatched triplet slice lengths")
	}
	nnz := len(v)
	m := &Matrix{
		rows:   r,
		cols:   c,
		rowPtr: make([]int, r+1),
		colIdx: make([]int, nnz),
		val:    make([]float64, nnz),
	}
	// Counting sort by row, then order columns within each row.
	for _, row := range i {
		if row < 0 || r <= row {
			panic("csr: row index out of range")
		}
		m.rowPtr[row+1]++
	}
	for row := 0; row < r; row++ {
		m.rowPtr[row+1] += m.rowPtr[row]
	}
	next := make([]int, r)
	copy(next, m.rowPtr[:r])
	for k, row := range i {
		if j[k] < 0 || c <= j[k] {
			panic("csr: column index out of range")
		}
		p := next[row]
		m.colIdx[p] = j[k]
		m.val[p] = v[k]
		next[row]++
	}
	for row := 0; row < r; row++ {
		lo, hi := m.rowPtr[row], m.rowPtr[row+1]
		cols, vals := m.colIdx[lo:hi], m.val[lo:hi]
		sort.Sort(&rowSorter{cols: cols, vals: vals})
	}
	return m
}

// Dims returns the matrix dimensions.
func (m *Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// NNonzero returns the number of stored elements.
func (m *Matrix) NNonzero() int {
	return len(m.val)
}

// At returns the element at (i, j); elements outside the sparsity pattern
// are zero.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || m.rows <= i {
		panic("csr: row index out of range")
	}
	if j < 0 || m.cols <= j {
		panic("csr: column index out of range")
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	cols := m.colIdx[lo:hi]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return m.val[lo+k]
	}
	return 0
}

// MulVec adds A*x into dst.
func (m *Matrix) MulVec(dst, x []float64) {
	if m.cols != len(x) || m.rows != len(dst) {
		panic("csr: dimension mismatch")
	}
	for i := 0; i < m.rows; i++ {
		var s float64
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			s += m.val[k] * x[m.colIdx[k]]
		}
		dst[i] += s
	}
}

// MulTransVec adds Aᵀ*x into dst.
func (m *Matrix) MulTransVec(dst, x []float64) {
	if m.rows != len(x) || m.cols != len(dst) {
		panic("csr: dimension mismatch")
	}
	for i := 0; i < m.rows; i++ {
		xi := x[i]
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			dst[m.colIdx[k]] += m.val[k] * xi
		}
	}
}

type rowSorter struct {
	cols []int
	vals []float64
}

func (s *rowSorter) Len() int           { return len(s.cols) }
func (s *rowSorter) Less(i, j int) bool { return s.cols[i] < s.cols[j] }
func (s *rowSorter) Swap(i, j int) {
	s.cols[i], s.cols[j] = s.cols[j], s.cols[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}
