// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fluidsim implements an Eulerian fluid simulator on a
// fixed-size regular three-dimensional grid. Each cell carries a
// velocity vector and one or more scalar pressure channels; per-cell
// face-blockage flags forbid flow across selected cube faces. A
// single call to Domain.Simulate advances the field by one timestep,
// applying diffusion, forces (decay, pressure-gradient acceleration,
// vorticity confinement) and a mass-conserving semi-Lagrangian
// advection pass, in that order.
package fluidsim
