// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

// FlowFlags is a bit set over the six face directions of a grid cell,
// marking which faces forbid fluid flow across them. The bit layout
// is stable and suitable for persistence.
type FlowFlags uint8

// Face-blockage bits.
const (
	XForwBlocked FlowFlags = 1 << iota
	YForwBlocked
	ZForwBlocked
	XBackBlocked
	YBackBlocked
	ZBackBlocked
)

// Contains reports whether every bit set in other is also set in f.
func (f FlowFlags) Contains(other FlowFlags) bool {
	return f&other == other
}

// Set returns f with the bits in other set.
func (f FlowFlags) Set(other FlowFlags) FlowFlags {
	return f | other
}

// Clear returns f with the bits in other cleared.
func (f FlowFlags) Clear(other FlowFlags) FlowFlags {
	return f &^ other
}

// direction pairs a face-blockage bit with the coordinate offset that
// crossing that face corresponds to.
type direction struct {
	flag  FlowFlags
	delta CoordsDiff
}

// directions enumerates the six grid-neighbor directions together
// with the flag that blocks flow across that face, used by both the
// diffusion kernel's neighbor scan and advection's collision clamp.
var directions = [6]direction{
	{XForwBlocked, XForw},
	{YForwBlocked, YForw},
	{ZForwBlocked, ZForw},
	{XBackBlocked, XBack},
	{YBackBlocked, YBack},
	{ZBackBlocked, ZBack},
}
