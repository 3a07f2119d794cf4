// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

import "fmt"

// Grid is a fixed-size, contiguous, flat 3D array of T. Storage order
// is x-fastest: index(x,y,z) = x + X*(y + Y*z). Out-of-range access is
// a precondition violation and panics, the same as an out-of-range
// slice index would.
type Grid[T any] struct {
	size Coords
	data []T
}

// NewGrid allocates a Grid of the given size, zero-valued.
func NewGrid[T any](size Coords) *Grid[T] {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		panic(fmt.Sprintf("fluidsim: non-positive grid size %v", size))
	}
	return &Grid[T]{
		size: size,
		data: make([]T, size.X*size.Y*size.Z),
	}
}

// Size returns the grid's fixed dimensions.
func (g *Grid[T]) Size() Coords { return g.size }

func (g *Grid[T]) checkRange(c Coords) {
	if !c.InRange(Coords{}, g.size) {
		panic(fmt.Sprintf("fluidsim: coords %v out of range for grid of size %v", c, g.size))
	}
}

// At returns the value at c.
func (g *Grid[T]) At(c Coords) T {
	g.checkRange(c)
	return g.data[index(g.size, c)]
}

// Set stores v at c.
func (g *Grid[T]) Set(c Coords, v T) {
	g.checkRange(c)
	g.data[index(g.size, c)] = v
}

// Fill overwrites every element with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CopyFrom overwrites g's contents with src's. The two grids must have
// the same size.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	if g.size != src.size {
		panic(fmt.Sprintf("fluidsim: cannot copy grid of size %v into grid of size %v", src.size, g.size))
	}
	copy(g.data, src.data)
}
