// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

import "fmt"

// Coords is a grid index. Fields must be non-negative; a Coords built
// or produced with a negative component is a precondition violation.
type Coords struct {
	X, Y, Z int
}

// CoordsDiff is a signed offset between two Coords.
type CoordsDiff struct {
	X, Y, Z int
}

// The six axis-aligned unit offsets, plus the all-ones offset used to
// shrink a range by one cell on every axis.
var (
	Ones  = CoordsDiff{1, 1, 1}
	XForw = CoordsDiff{1, 0, 0}
	YForw = CoordsDiff{0, 1, 0}
	ZForw = CoordsDiff{0, 0, 1}
	XBack = CoordsDiff{-1, 0, 0}
	YBack = CoordsDiff{0, -1, 0}
	ZBack = CoordsDiff{0, 0, -1}
)

// Add returns c shifted by d.
func (c Coords) Add(d CoordsDiff) Coords {
	return Coords{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

// Sub returns c shifted by the negation of d.
func (c Coords) Sub(d CoordsDiff) Coords {
	return Coords{c.X - d.X, c.Y - d.Y, c.Z - d.Z}
}

// Diff returns the offset from o to c.
func (c Coords) Diff(o Coords) CoordsDiff {
	return CoordsDiff{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

// Add returns the componentwise sum of two offsets.
func (d CoordsDiff) Add(o CoordsDiff) CoordsDiff {
	return CoordsDiff{d.X + o.X, d.Y + o.Y, d.Z + o.Z}
}

// Sub returns the componentwise difference of two offsets.
func (d CoordsDiff) Sub(o CoordsDiff) CoordsDiff {
	return CoordsDiff{d.X - o.X, d.Y - o.Y, d.Z - o.Z}
}

// InRange reports whether c lies in the half-open box [lo, hi).
func (c Coords) InRange(lo, hi Coords) bool {
	return c.X >= lo.X && c.X < hi.X &&
		c.Y >= lo.Y && c.Y < hi.Y &&
		c.Z >= lo.Z && c.Z < hi.Z
}

func (c Coords) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// index returns the flat storage offset for c within a grid of the
// given size, using x-fastest (x + X*(y + Y*z)) ordering.
func index(size, c Coords) int {
	return c.X + size.X*(c.Y+size.Y*c.Z)
}
