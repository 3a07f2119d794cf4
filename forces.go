// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

import "math"

// vorticityEpsilon gates the vorticity-confinement apply pass: cells
// whose local vorticity gradient magnitude falls at or below this
// threshold receive no push, avoiding a division blowing up near-flat
// regions of the vorticity field.
const vorticityEpsilon = 1e-6

// DecayVelocity writes dst[c] = src[c]*kappa for every cell, where
// kappa = (1-lambda)^dt is computed by the caller. It is applied
// independently to each of the three velocity components.
func DecayVelocity(dst, src *Grid[float32], kappa float32) {
	Iterate(src.Size(), func(c Coords) {
		dst.Set(c, src.At(c)*kappa)
	})
}

// DecayKappa returns the per-step decay coefficient for a damping
// rate lambda applied over dt.
func DecayKappa(lambda, dt float32) float32 {
	return float32(math.Pow(float64(1-lambda), float64(dt)))
}

// PressureAcceleration applies a momentum-preserving pressure-gradient
// pair update to velX, velY and velZ in place. Each of velX/velY/velZ
// must already equal the velocity consumer's values (a swap-chain
// producer is seeded that way by Swap), since this is a delta update,
// not a full overwrite. pressure holds one consumer grid per pressure
// channel; f is a·dt.
func PressureAcceleration(velX, velY, velZ *Grid[float32], pressure []*Grid[float32], f float32) {
	size := velX.Size()
	sumPressure := func(c Coords) float32 {
		var p float32
		for _, ch := range pressure {
			p += ch.At(c)
		}
		return p
	}
	limit := size.Sub(Ones)
	IterateRange(Coords{}, limit, func(c Coords) {
		p := sumPressure(c)

		nx := c.Add(XForw)
		dpx := sumPressure(nx) - p
		velX.Set(c, velX.At(c)+f*dpx)
		velX.Set(nx, velX.At(nx)-f*dpx)

		ny := c.Add(YForw)
		dpy := sumPressure(ny) - p
		velY.Set(c, velY.At(c)+f*dpy)
		velY.Set(ny, velY.At(ny)-f*dpy)

		nz := c.Add(ZForw)
		dpz := sumPressure(nz) - p
		velZ.Set(c, velZ.At(c)+f*dpz)
		velZ.Set(nz, velZ.At(nz)-f*dpz)
	})
}

// BuildVorticity fills vort[c] with the magnitude of the curl-derived
// quantity used by this simulator's vorticity confinement force, for
// every interior cell c in [Ones, size-Ones). The formula below is
// carried over verbatim from the reference implementation; it is not
// the textbook per-component curl vector, only a scalar magnitude
// derived from it, and should not be "corrected" to match the
// textbook form.
func BuildVorticity(vort *Grid[float32], velX, velY, velZ *Grid[float32]) {
	size := velX.Size()
	IterateRange(Coords{1, 1, 1}, size.Sub(Ones), func(c Coords) {
		dvzdy := velZ.At(c.Add(YForw)) - velZ.At(c.Add(YBack))
		dvydx := velY.At(c.Add(XForw)) - velY.At(c.Add(XBack))
		dvzdz := velZ.At(c.Add(ZForw)) - velZ.At(c.Add(ZBack))
		v := (dvzdy - dvydx - dvzdz) / 2
		if v < 0 {
			v = -v
		}
		vort.Set(c, v)
	})
}

// ApplyVorticityConfinement pushes velX/velY/velZ (seeded as a delta
// update, same precondition as PressureAcceleration) along the
// gradient of vort, for every interior cell. f is omega*dt.
func ApplyVorticityConfinement(velX, velY, velZ *Grid[float32], vort *Grid[float32], f float32) {
	size := vort.Size()
	IterateRange(Coords{1, 1, 1}, size.Sub(Ones), func(c Coords) {
		dlr := vort.At(c.Add(XForw)) - vort.At(c.Add(XBack))
		dud := vort.At(c.Add(YForw)) - vort.At(c.Add(YBack))
		dbf := vort.At(c.Add(ZForw)) - vort.At(c.Add(ZBack))
		mag := float32(math.Sqrt(float64(dlr*dlr + dud*dud + dbf*dbf)))
		if mag <= vorticityEpsilon {
			return
		}
		m := vort.At(c) * f / mag
		velX.Set(c, velX.At(c)-dud*m)
		velY.Set(c, velY.At(c)+dlr*m)
		velZ.Set(c, velZ.At(c)+dbf*m)
	})
}
