// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import (
	"time"

	"github.com/gonum/floats"
)

// MatrixOps describes the matrix of a linear system in terms of A*x and
// Aᵀ*x operations over flat slices. BlockMatrix.Ops and SparseBlock.Ops
// produce MatrixOps for assembled matrices.
type MatrixOps struct {
	// MatVec computes A*x and stores the result into dst. It must be
	// non-nil.
	MatVec func(dst, x []float64)

	// MatTransVec computes Aᵀ*x and stores the result into dst. If the
	// matrix is symmetric and a solver for symmetric systems is used
	// (like CG), MatTransVec can be nil.
	MatTransVec func(dst, x []float64)
}

// Operation specifies the type of operation commanded by Method.Iterate.
type Operation uint64

const (
	NoOperation Operation = 0

	// Multiply A*x where x is stored in Context.Src and store the result
	// into Context.Dst.
	MatVec Operation = 1 << (iota - 1)

	// Multiply Aᵀ*x where x is stored in Context.Src and store the
	// result into Context.Dst.
	MatTransVec

	// Do the preconditioner solve
	//  M z = r,
	// where r is stored in Context.Src, and store the solution z into
	// Context.Dst.
	PSolve

	// Do the preconditioner solve
	//  Mᵀ z = r,
	// where r is stored in Context.Src, and store the solution z into
	// Context.Dst.
	PSolveTrans

	// Compute b - A*x where x is stored in Context.X and store the
	// result into Context.Residual.
	ComputeResidual

	// Check convergence using the residual norm in Context.ResidualNorm.
	// If convergence is detected, Context.Converged must be set to true
	// before calling Method.Iterate again.
	CheckResidualNorm

	// EndIteration indicates that Method has finished what it considers
	// to be one iteration. If Context.Converged is true, the iterative
	// process must be terminated.
	EndIteration
)

// Method is an iterative method that produces a sequence of vectors
// converging to the solution of a linear system
//  A x = b.
//
// Method uses a reverse-communication interface: it acts as a client that
// commands the caller to perform needed operations via the Operation values
// returned from Iterate. This keeps Method independent of the matrix
// representation, so the same method runs on a SparseBlock, a BlockMatrix
// or any MatrixOps the caller provides.
type Method interface {
	// Init initializes the method for solving a dim×dim linear system.
	Init(dim int)

	// Iterate retrieves data from Context, updates it, and returns the
	// next operation. The caller must perform the Operation using data
	// in Context, and depending on the state call Iterate again.
	Iterate(*Context) (Operation, error)
}

// Context mediates the communication between a Method and the caller. It
// must not be modified or accessed apart from the commanded Operations.
type Context struct {
	// X is the current approximate solution. On the first call to
	// Method.Iterate, X must contain the initial estimate. Method must
	// update X with the current estimate when it commands
	// ComputeResidual and EndIteration.
	X []float64
	// Residual is the current residual b - A*x. On the first call to
	// Method.Iterate, Residual must contain the initial residual.
	Residual []float64
	// ResidualNorm is (an estimate of) the norm of the current residual.
	// Method must update it when it commands CheckResidualNorm.
	ResidualNorm float64
	// Converged indicates to Method that ResidualNorm satisfies the
	// stopping criterion as a result of a CheckResidualNorm operation.
	Converged bool

	// Src and Dst are the source and destination vectors for the
	// commanded Operation.
	Src, Dst []float64
}

// Settings holds the adjustable knobs of a linear solve. Zero values of the
// fields mean defaults.
type Settings struct {
	// X0 is an initial guess. If it is nil, the zero vector is used. If
	// it is not nil, its size must equal the dimension of the system.
	X0 *Vector

	// Tolerance specifies the error tolerance for the final approximate
	// solution: the iteration stops when |r_i| < Tolerance * |b|.
	// Tolerance must be smaller than one and greater than the machine
	// epsilon.
	Tolerance float64

	// MaxIterations is the limit on the number of iterations. If it is
	// zero, it will be set to twice the dimension of the system.
	MaxIterations int

	// PSolve solves the preconditioner system M z = rhs and stores z
	// into dst. If it is nil, no preconditioning is used.
	PSolve func(dst, rhs []float64) error

	// PSolveTrans solves the preconditioner system Mᵀ z = rhs and
	// stores z into dst. If it is nil, no preconditioning is used.
	PSolveTrans func(dst, rhs []float64) error
}

func defaultSettings(s *Settings, dim int) {
	if s.Tolerance == 0 {
		s.Tolerance = 1e-8
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 2 * dim
	}
}

// Stats holds statistics about an iterative solve.
type Stats struct {
	// Iterations is the number of iterations done by Method.
	Iterations int
	// MatVec is the number of MatVec and MatTransVec operations
	// commanded by Method.
	MatVec int
	// PSolve is the number of PSolve and PSolveTrans operations
	// commanded by Method.
	PSolve int
	// ResidualNorm is the final norm of the residual.
	ResidualNorm float64
	// StartTime is an approximate time when the solve was started.
	StartTime time.Time
	// Runtime is an approximate duration of the solve.
	Runtime time.Duration
}

// Result holds the result of an iterative solve.
type Result struct {
	// X is the approximate solution.
	X *Vector
	// Stats holds the statistics of the solve.
	Stats Stats
}

// LinearSolve solves the system of n linear equations
//  A*x = b,
// where the n×n matrix A is represented by the matrix-vector operations in
// a. The dimension of the problem is the size of b.
//
// method must not be nil, and the operations in a must provide what the
// method needs.
func LinearSolve(a MatrixOps, b *Vector, method Method, settings Settings) (Result, error) {
	stats := Stats{StartTime: time.Now()}

	dim := b.Size()
	if a.MatVec == nil {
		panic("lac: nil matrix-vector multiplication")
	}
	if settings.X0 != nil && settings.X0.Size() != dim {
		panic("lac: mismatched size of initial guess")
	}

	x := NewVector(dim)
	if dim == 0 {
		return Result{X: x, Stats: stats}, nil
	}

	defaultSettings(&settings, dim)
	if settings.Tolerance < dlamchE || 1 <= settings.Tolerance {
		panic("lac: invalid tolerance")
	}

	ctx := &Context{
		X:        x.Data(),
		Residual: make([]float64, dim),
	}
	if settings.X0 != nil {
		copy(ctx.X, settings.X0.Data())
		a.MatVec(ctx.Residual, ctx.X)
		stats.MatVec++
		floats.AddScaledTo(ctx.Residual, b.Data(), -1, ctx.Residual) // r = b - A*x
	} else {
		copy(ctx.Residual, b.Data()) // r = b
	}

	ctx.ResidualNorm = floats.Norm(ctx.Residual, 2)
	var err error
	if ctx.ResidualNorm >= settings.Tolerance {
		err = iterate(a, b, ctx, settings, method, &stats)
	}

	stats.Runtime = time.Since(stats.StartTime)
	return Result{X: x, Stats: stats}, err
}

func iterate(a MatrixOps, b *Vector, ctx *Context, settings Settings, method Method, stats *Stats) error {
	bnorm := b.L2Norm()
	if bnorm == 0 {
		bnorm = 1
	}

	method.Init(b.Size())

	for {
		op, err := method.Iterate(ctx)
		if err != nil {
			return err
		}

		switch op {
		case NoOperation:

		case ComputeResidual:
			a.MatVec(ctx.Residual, ctx.X)
			stats.MatVec++
			floats.AddScaledTo(ctx.Residual, b.Data(), -1, ctx.Residual)

		case MatVec, MatTransVec:
			if op == MatVec {
				a.MatVec(ctx.Dst, ctx.Src)
			} else {
				a.MatTransVec(ctx.Dst, ctx.Src)
			}
			stats.MatVec++

		case PSolve, PSolveTrans:
			if settings.PSolve == nil {
				copy(ctx.Dst, ctx.Src)
				continue
			}
			if op == PSolve {
				err = settings.PSolve(ctx.Dst, ctx.Src)
			} else {
				err = settings.PSolveTrans(ctx.Dst, ctx.Src)
			}
			if err != nil {
				return err
			}
			stats.PSolve++

		case CheckResidualNorm:
			ctx.Converged = ctx.ResidualNorm/bnorm < settings.Tolerance

		case EndIteration:
			stats.Iterations++
			stats.ResidualNorm = ctx.ResidualNorm
			if ctx.Converged {
				return nil
			}
			if stats.Iterations == settings.MaxIterations {
				return ErrIterationLimit
			}

		default:
			panic("lac: invalid operation")
		}
	}
}

func reuse(v []float64, n int) []float64 {
	if cap(v) < n {
		return make([]float64, n)
	}
	return v[:n]
}

const dlamchE = 1.0 / (1 << 53)
