// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

// Iterate calls visit once for every Coords(x,y,z) with 0<=x<size.X,
// 0<=y<size.Y, 0<=z<size.Z, in x-fastest, then y, then z order. It
// performs no allocation.
func Iterate(size Coords, visit func(Coords)) {
	IterateRange(Coords{}, size, visit)
}

// IterateRange calls visit once for every Coords in the half-open box
// [lo, hi), in x-fastest, then y, then z order. lo.i must be <= hi.i
// on every axis; a box with a zero or negative extent on any axis
// visits nothing.
func IterateRange(lo, hi Coords, visit func(Coords)) {
	for z := lo.Z; z < hi.Z; z++ {
		for y := lo.Y; y < hi.Y; y++ {
			for x := lo.X; x < hi.X; x++ {
				visit(Coords{x, y, z})
			}
		}
	}
}
