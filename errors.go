// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import "errors"

// Sentinel errors returned by operations in this package. All of them are
// precondition failures raised synchronously at the violating call and are
// matched with errors.Is. Violated internal invariants (for example an
// unsorted column-index run handed to the bulk dispatch fast path) are
// programmer errors and panic instead.
var (
	// ErrDimensionMismatch indicates that the sizes of paired containers
	// differ, for example in Dot or AddScaled.
	ErrDimensionMismatch = errors.New("lac: dimension mismatch")

	// ErrIncompatibleRowCount indicates that two blocks in the same block
	// row have differing row counts.
	ErrIncompatibleRowCount = errors.New("lac: incompatible block row counts")

	// ErrIncompatibleColCount indicates that two blocks in the same block
	// column have differing column counts.
	ErrIncompatibleColCount = errors.New("lac: incompatible block column counts")

	// ErrIndexOutOfRange indicates a global index beyond the matrix or
	// vector dimensions.
	ErrIndexOutOfRange = errors.New("lac: index out of range")

	// ErrEmptyVector indicates an operation that is undefined on a
	// zero-length vector, for example MeanValue.
	ErrEmptyVector = errors.New("lac: empty vector")

	// ErrFormat indicates that the input of BlockRead is not a vector dump
	// written by BlockWrite.
	ErrFormat = errors.New("lac: malformed vector dump")

	// ErrBreakdown indicates that an iterative method encountered a zero
	// (or numerically zero) quantity it must divide by.
	ErrBreakdown = errors.New("lac: breakdown in iterative method")

	// ErrIterationLimit indicates that an iterative method reached
	// Settings.MaxIterations without converging.
	ErrIterationLimit = errors.New("lac: iteration limit reached")
)
