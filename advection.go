// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

// advectionEpsilon is the "near enough to zero" threshold used both
// to skip quiescent source cells in the coefficient build and to
// keep the collision clamp strictly inside (-1.5, 1.5).
const advectionEpsilon = 1e-5

// corners enumerates the eight unit-cube offsets in the A..H
// convention used throughout this kernel: A=(0,0,0), B=(1,0,0),
// C=(0,1,0), D=(1,1,0), E=(0,0,1), F=(1,0,1), G=(0,1,1), H=(1,1,1).
var corners = [8]CoordsDiff{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

// AdvectionCell is the result of the coefficient build for one source
// cell: the eight trilinear weights distributing that cell's mass
// across the destination cube rooted at NewPosition, and the
// destination cube's root corner itself. A cell with Present false
// denotes the absence of a record — "no advection at this source" —
// not a record of zero weights; apply passes must skip it entirely.
type AdvectionCell struct {
	Present     bool
	Weights     [8]float32
	NewPosition Coords
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// collide applies the collision clamp described in the component
// design: each axis of delta (the target point minus the source
// cell, in cell units) is first clamped to [-1.5+eps, 1.5-eps], then
// zeroed out entirely if it would cross a blocked face. This allows a
// cell adjacent to, but not itself carrying, a blockage to still pull
// material across that neighbor's blocked face; the reference
// implementation has the same property and it is not corrected here.
func collide(delta [3]float32, flags FlowFlags) [3]float32 {
	const lo, hi = -1.5 + advectionEpsilon, 1.5 - advectionEpsilon
	out := [3]float32{
		clamp(delta[0], lo, hi),
		clamp(delta[1], lo, hi),
		clamp(delta[2], lo, hi),
	}
	forw := [3]FlowFlags{XForwBlocked, YForwBlocked, ZForwBlocked}
	back := [3]FlowFlags{XBackBlocked, YBackBlocked, ZBackBlocked}
	for i := 0; i < 3; i++ {
		if out[i] > 0 && flags.Contains(forw[i]) {
			out[i] = 0
		} else if out[i] < 0 && flags.Contains(back[i]) {
			out[i] = 0
		}
	}
	return out
}

// floorToIndex floors a coordinate component and saturates a negative
// result to zero. The reference implementation casts this floor to an
// unsigned index with Rust's saturating float-to-integer conversion,
// under which a negative floor silently becomes zero instead of
// underflowing; Go has no such cast, so this reproduces the same
// saturation explicitly rather than let a negative floor turn into an
// invalid (and, worse, differently-invalid on wraparound) grid index.
func floorToIndex(v float32) int {
	f := int(v)
	if float32(f) > v {
		f--
	}
	if f < 0 {
		return 0
	}
	return f
}

// GenerateCoefficients builds the advection coefficient grid for one
// velocity or pressure pack's forward or reverse pass. dst is
// pre-filled with absent cells and totals with zero by the caller
// (the orchestrator zeroes its three totals scratches once per step,
// ahead of all three coefficient builds). vel supplies the velocity
// field driving the transport: (vx, vy, vz) read at the same
// coordinate for every source cell. force already carries the sign
// and magnitude scaling described in the advection scale note (signed
// and scaled by the caller).
func GenerateCoefficients(dst *Grid[AdvectionCell], totals *Grid[float32], vx, vy, vz *Grid[float32], blockage *Grid[FlowFlags], force float32) {
	size := vx.Size()
	limit := size.Sub(Ones)
	IterateRange(Coords{}, limit, func(c Coords) {
		v := [3]float32{vx.At(c), vy.At(c), vz.At(c)}
		if abs32(v[0]) <= advectionEpsilon && abs32(v[1]) <= advectionEpsilon && abs32(v[2]) <= advectionEpsilon {
			return
		}

		delta := [3]float32{v[0] * force, v[1] * force, v[2] * force}
		delta = collide(delta, blockage.At(c))

		px := float32(c.X) + delta[0]
		py := float32(c.Y) + delta[1]
		pz := float32(c.Z) + delta[2]

		tx, ty, tz := floorToIndex(px), floorToIndex(py), floorToIndex(pz)
		fx, fy, fz := px-float32(tx), py-float32(ty), pz-float32(tz)

		var weights [8]float32
		weights[0] = (1 - fx) * (1 - fy) * (1 - fz)
		weights[1] = fx * (1 - fy) * (1 - fz)
		weights[2] = (1 - fx) * fy * (1 - fz)
		weights[3] = fx * fy * (1 - fz)
		weights[4] = (1 - fx) * (1 - fy) * fz
		weights[5] = fx * (1 - fy) * fz
		weights[6] = (1 - fx) * fy * fz
		weights[7] = fx * fy * fz

		target := Coords{tx, ty, tz}
		for k, corner := range corners {
			tc := target.Add(corner)
			totals.Set(tc, totals.At(tc)+weights[k])
		}

		dst.Set(c, AdvectionCell{Present: true, Weights: weights, NewPosition: target})
	})

	IterateRange(Coords{}, limit, func(c Coords) {
		cell := dst.At(c)
		if !cell.Present {
			return
		}
		for k, corner := range corners {
			tc := cell.NewPosition.Add(corner)
			denom := totals.At(tc)
			if denom < 1 {
				denom = 1
			}
			cell.Weights[k] /= denom
		}
		dst.Set(c, cell)
	})
}

// ForwardAdvection transfers mass from src's source cells to the
// destination cubes recorded in coefs, writing the result into dst.
// Each source cell loses the sum of its outgoing weighted mass; each
// destination corner gains its share.
func ForwardAdvection(dst, src *Grid[float32], coefs *Grid[AdvectionCell]) {
	advect(dst, src, coefs, 1)
}

// ReverseAdvection is ForwardAdvection with every transfer's sign
// flipped: source cells gain what the matching forward pass would
// have removed, and destination corners lose what it would have
// added. Running ForwardAdvection then ReverseAdvection with the same
// coefficients and a zero field is a no-op; with a real field the two
// passes produce the error-correcting cancellation the scheme relies
// on.
func ReverseAdvection(dst, src *Grid[float32], coefs *Grid[AdvectionCell]) {
	advect(dst, src, coefs, -1)
}

func advect(dst, src *Grid[float32], coefs *Grid[AdvectionCell], sign float32) {
	size := coefs.Size()
	Iterate(size, func(c Coords) {
		cell := coefs.At(c)
		if !cell.Present {
			return
		}
		var total float32
		for k, corner := range corners {
			w := cell.Weights[k] * src.At(c.Add(corner))
			total += w
			tc := cell.NewPosition.Add(corner)
			dst.Set(tc, dst.At(tc)+sign*w)
		}
		dst.Set(c, dst.At(c)-sign*total)
	})
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
