// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

// DiffusionStep computes one explicit-Euler local-smoothing pass of
// src into dst, respecting blockage. For each cell c:
//
//	neighbors = { src[c+dir] : dir is one of the six axis directions,
//	                           c+dir is in range,
//	                           and blockage[c] does not forbid dir }
//	dst[c] = src[c] + force*(sum(neighbors) - len(neighbors)*src[c])
//
// force is expected to already be scaled down by the caller (by the
// configured diffusion sub-step count) so that it stays stable for
// the worst-case neighbor count.
func DiffusionStep(dst, src *Grid[float32], blockage *Grid[FlowFlags], force float32) {
	size := src.Size()
	Iterate(size, func(c Coords) {
		flags := blockage.At(c)
		var sum float32
		var n int
		for _, dir := range directions {
			if flags.Contains(dir.flag) {
				continue
			}
			nc := c.Add(dir.delta)
			if !nc.InRange(Coords{}, size) {
				continue
			}
			sum += src.At(nc)
			n++
		}
		dst.Set(c, src.At(c)+force*(sum-float32(n)*src.At(c)))
	})
}
