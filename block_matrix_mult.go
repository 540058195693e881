// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

// The multiply and residual entry points come in four shape variants each,
// depending on whether the operands are themselves block-structured: block
// destination and source, block destination only (one block column), block
// source only (one block row), and neither (a single block). All of them
// require a compressed matrix.

// Vmult computes dst = M*src for block-structured operands. The block
// partitions of dst and src must match the matrix partition along the rows
// and columns, respectively.
func (m *BlockMatrix) Vmult(dst, src *BlockVector) error {
	if err := m.checkBlockOperand(dst, true); err != nil {
		return err
	}
	if err := m.checkBlockOperand(src, false); err != nil {
		return err
	}
	for r := 0; r < m.NBlockRows(); r++ {
		d := dst.Block(r)
		d.Fill(0)
		for c := 0; c < m.NBlockCols(); c++ {
			m.blocks[r][c].MulVec(d.Data(), src.Block(c).Data())
		}
	}
	return nil
}

// VmultBlock computes dst = M*src where src is a plain vector. It is only
// applicable if the matrix has a single block column.
func (m *BlockMatrix) VmultBlock(dst *BlockVector, src *Vector) error {
	if m.NBlockCols() != 1 {
		return ErrDimensionMismatch
	}
	if err := m.checkBlockOperand(dst, true); err != nil {
		return err
	}
	if src.Size() != m.colIndices.Total() {
		return ErrDimensionMismatch
	}
	for r := 0; r < m.NBlockRows(); r++ {
		d := dst.Block(r)
		d.Fill(0)
		m.blocks[r][0].MulVec(d.Data(), src.Data())
	}
	return nil
}

// VmultNonBlock computes dst = M*src where dst is a plain vector. It is
// only applicable if the matrix has a single block row.
func (m *BlockMatrix) VmultNonBlock(dst *Vector, src *BlockVector) error {
	if m.NBlockRows() != 1 {
		return ErrDimensionMismatch
	}
	if dst.Size() != m.rowIndices.Total() {
		return ErrDimensionMismatch
	}
	if err := m.checkBlockOperand(src, false); err != nil {
		return err
	}
	dst.Fill(0)
	for c := 0; c < m.NBlockCols(); c++ {
		m.blocks[0][c].MulVec(dst.Data(), src.Block(c).Data())
	}
	return nil
}

// VmultSingle computes dst = M*src for plain vectors. It is only applicable
// if the matrix consists of a single block.
func (m *BlockMatrix) VmultSingle(dst, src *Vector) error {
	if m.NBlockRows() != 1 || m.NBlockCols() != 1 {
		return ErrDimensionMismatch
	}
	if dst.Size() != m.rowIndices.Total() || src.Size() != m.colIndices.Total() {
		return ErrDimensionMismatch
	}
	dst.Fill(0)
	m.blocks[0][0].MulVec(dst.Data(), src.Data())
	return nil
}

// Tvmult computes dst = Mᵀ*src for block-structured operands.
func (m *BlockMatrix) Tvmult(dst, src *BlockVector) error {
	if err := m.checkBlockOperand(dst, false); err != nil {
		return err
	}
	if err := m.checkBlockOperand(src, true); err != nil {
		return err
	}
	for c := 0; c < m.NBlockCols(); c++ {
		dst.Block(c).Fill(0)
	}
	for r := 0; r < m.NBlockRows(); r++ {
		s := src.Block(r)
		for c := 0; c < m.NBlockCols(); c++ {
			m.blocks[r][c].MulTransVec(dst.Block(c).Data(), s.Data())
		}
	}
	return nil
}

// TvmultBlock computes dst = Mᵀ*src where src is a plain vector. It is only
// applicable if the matrix has a single block row.
func (m *BlockMatrix) TvmultBlock(dst *BlockVector, src *Vector) error {
	if m.NBlockRows() != 1 {
		return ErrDimensionMismatch
	}
	if err := m.checkBlockOperand(dst, false); err != nil {
		return err
	}
	if src.Size() != m.rowIndices.Total() {
		return ErrDimensionMismatch
	}
	for c := 0; c < m.NBlockCols(); c++ {
		d := dst.Block(c)
		d.Fill(0)
		m.blocks[0][c].MulTransVec(d.Data(), src.Data())
	}
	return nil
}

// TvmultNonBlock computes dst = Mᵀ*src where dst is a plain vector. It is
// only applicable if the matrix has a single block column.
func (m *BlockMatrix) TvmultNonBlock(dst *Vector, src *BlockVector) error {
	if m.NBlockCols() != 1 {
		return ErrDimensionMismatch
	}
	if dst.Size() != m.colIndices.Total() {
		return ErrDimensionMismatch
	}
	if err := m.checkBlockOperand(src, true); err != nil {
		return err
	}
	dst.Fill(0)
	for r := 0; r < m.NBlockRows(); r++ {
		m.blocks[r][0].MulTransVec(dst.Data(), src.Block(r).Data())
	}
	return nil
}

// TvmultSingle computes dst = Mᵀ*src for plain vectors. It is only
// applicable if the matrix consists of a single block.
func (m *BlockMatrix) TvmultSingle(dst, src *Vector) error {
	if m.NBlockRows() != 1 || m.NBlockCols() != 1 {
		return ErrDimensionMismatch
	}
	if dst.Size() != m.colIndices.Total() || src.Size() != m.rowIndices.Total() {
		return ErrDimensionMismatch
	}
	dst.Fill(0)
	m.blocks[0][0].MulTransVec(dst.Data(), src.Data())
	return nil
}

// Residual computes the residual r = b - M*x of the equation M*x = b,
// writes it into dst and returns its l2 norm. dst and x must not be the
// same vector.
func (m *BlockMatrix) Residual(dst, x, b *BlockVector) (float64, error) {
	if err := m.Vmult(dst, x); err != nil {
		return 0, err
	}
	if dst.NBlocks() != b.NBlocks() {
		return 0, ErrDimensionMismatch
	}
	for r := 0; r < dst.NBlocks(); r++ {
		// dst = b - dst, block by block.
		if err := dst.Block(r).Sadd(-1, b.Block(r)); err != nil {
			return 0, err
		}
	}
	return dst.L2Norm(), nil
}

// ResidualBlock computes r = b - M*x where x is a plain vector. It is only
// applicable if the matrix has a single block column.
func (m *BlockMatrix) ResidualBlock(dst *BlockVector, x *Vector, b *BlockVector) (float64, error) {
	if err := m.VmultBlock(dst, x); err != nil {
		return 0, err
	}
	if dst.NBlocks() != b.NBlocks() {
		return 0, ErrDimensionMismatch
	}
	for r := 0; r < dst.NBlocks(); r++ {
		if err := dst.Block(r).Sadd(-1, b.Block(r)); err != nil {
			return 0, err
		}
	}
	return dst.L2Norm(), nil
}

// ResidualNonBlock computes r = b - M*x where dst and b are plain vectors.
// It is only applicable if the matrix has a single block row.
func (m *BlockMatrix) ResidualNonBlock(dst *Vector, x *BlockVector, b *Vector) (float64, error) {
	if err := m.VmultNonBlock(dst, x); err != nil {
		return 0, err
	}
	if err := dst.Sadd(-1, b); err != nil {
		return 0, err
	}
	return dst.L2Norm(), nil
}

// ResidualSingle computes r = b - M*x for plain vectors. It is only
// applicable if the matrix consists of a single block.
func (m *BlockMatrix) ResidualSingle(dst, x, b *Vector) (float64, error) {
	if err := m.VmultSingle(dst, x); err != nil {
		return 0, err
	}
	if err := dst.Sadd(-1, b); err != nil {
		return 0, err
	}
	return dst.L2Norm(), nil
}

// checkBlockOperand verifies that the partition of bv matches the matrix
// partition along the rows (byRows) or columns.
func (m *BlockMatrix) checkBlockOperand(bv *BlockVector, byRows bool) error {
	bi := &m.colIndices
	n := m.NBlockCols()
	if byRows {
		bi = &m.rowIndices
		n = m.NBlockRows()
	}
	if bv.NBlocks() != n {
		return ErrDimensionMismatch
	}
	for b := 0; b < n; b++ {
		if bv.Block(b).Size() != bi.BlockSize(b) {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// Ops returns the matrix-vector operations of the assembled matrix over
// flat slices, for use with the iterative solvers. The matrix must stay
// compressed while the operations are in use.
func (m *BlockMatrix) Ops() MatrixOps {
	return MatrixOps{
		MatVec:      func(dst, x []float64) { m.mulVecFlat(dst, x, false) },
		MatTransVec: func(dst, x []float64) { m.mulVecFlat(dst, x, true) },
	}
}

// mulVecFlat routes a flat global multiplication through the block grid
// using the prefix-sum tables.
func (m *BlockMatrix) mulVecFlat(dst, x []float64, trans bool) {
	rows, cols := m.Dims()
	if trans {
		rows, cols = cols, rows
	}
	if len(dst) != rows || len(x) != cols {
		panic("lac: dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	for r := 0; r < m.NBlockRows(); r++ {
		rs, re := m.rowIndices.BlockStart(r), m.rowIndices.BlockStart(r)+m.rowIndices.BlockSize(r)
		for c := 0; c < m.NBlockCols(); c++ {
			cs, ce := m.colIndices.BlockStart(c), m.colIndices.BlockStart(c)+m.colIndices.BlockSize(c)
			if trans {
				m.blocks[r][c].MulTransVec(dst[cs:ce], x[rs:re])
			} else {
				m.blocks[r][c].MulVec(dst[rs:re], x[cs:ce])
			}
		}
	}
}
