// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac_test

import (
	"fmt"
	"log"

	"github.com/vladimir-ch/lac"
)

// ExampleBlockMatrix assembles the 3×3 tridiagonal matrix
//
//	 2 -1  0
//	-1  2 -1
//	 0 -1  2
//
// split into a 2×2 grid of blocks and multiplies it by a vector of ones.
func ExampleBlockMatrix() {
	m := lac.NewBlockMatrix()
	m.Reinit(2, 2)
	sizes := []int{2, 1}
	for r, nr := range sizes {
		for c, nc := range sizes {
			m.SetBlock(r, c, lac.NewSparseBlock(nr, nc))
		}
	}
	if err := m.CollectSizes(); err != nil {
		log.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := m.Set(i, i, 2); err != nil {
			log.Fatal(err)
		}
		if i > 0 {
			if err := m.Set(i, i-1, -1); err != nil {
				log.Fatal(err)
			}
			if err := m.Set(i-1, i, -1); err != nil {
				log.Fatal(err)
			}
		}
	}
	m.Compress()

	x := lac.NewBlockVector(sizes...)
	x.Fill(1)
	y := lac.NewBlockVector(sizes...)
	if err := m.Vmult(y, x); err != nil {
		log.Fatal(err)
	}

	fmt.Println(y.Block(0).Data(), y.Block(1).Data())
	// Output:
	// [1 0] [1]
}

// ExampleLinearSolve solves a small symmetric system with the conjugate
// gradient method.
func ExampleLinearSolve() {
	a := lac.NewSparseBlock(2, 2)
	a.Set(0, 0, 2)
	a.Set(0, 1, 1)
	a.Set(1, 0, 1)
	a.Set(1, 1, 2)
	a.Compress()

	b := lac.VectorOf(3, 3)
	result, err := lac.LinearSolve(a.Ops(), b, &lac.CG{}, lac.Settings{Tolerance: 1e-12})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("x = [%.4f %.4f]\n", result.X.At(0), result.X.At(1))
	// Output:
	// x = [1.0000 1.0000]
}
