// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lac provides dense numeric vectors and block sparse matrices for
// assembly-style numerical computations.
//
// Vector is a dense float64 vector with element-wise linear algebra and
// norms. BlockMatrix is a 2-D grid of sparse matrix blocks that routes
// global (row, column) coordinates to the owning block and distributes bulk
// set/add calls across the grid without per-element dispatch. The blocks
// themselves are opaque Block values supplied by a storage layer;
// SparseBlock is the local single-process implementation.
//
// The typical assembly cycle is
//
//	m := lac.NewBlockMatrix()
//	m.Reinit(2, 2)
//	m.SetBlock(0, 0, lac.NewSparseBlock(3, 3))
//	... remaining blocks ...
//	if err := m.CollectSizes(); err != nil { ... }
//	... m.AddMatrix(rows, cols, values) for every local contribution ...
//	m.Compress()
//
// CollectSizes and Compress are collective operations: when the blocks are
// distributed, every cooperating process must call them before any may
// proceed. The package does not enforce this; a Synchronizer supplied by the
// caller marks the barrier.
//
// The package also provides reverse-communication iterative solvers (CG,
// BiCG, BiCGSTAB) operating on the assembled matrices through the MatrixOps
// adapter.
package lac
