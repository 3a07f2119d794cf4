// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

import (
	"fmt"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

const velocityChannels = 3

// Domain owns the velocity pack, the K-channel pressure pack, the
// blockage map, and every scratch buffer the simulation kernels need,
// for its lifetime. It exclusively owns all of its grids and
// swap-chains; kernels only ever borrow them for the duration of one
// Simulate call.
type Domain struct {
	size Coords
	K    int

	velocity *SwapPack[float32]
	pressure *SwapPack[float32]
	blockage *Grid[FlowFlags]

	vorticity                   *Grid[float32]
	forwardVelocityCoefficients *Grid[AdvectionCell]
	reverseVelocityCoefficients *Grid[AdvectionCell]
	pressureCoefficients        *Grid[AdvectionCell]
	forwardVelocityCoefTotals   *Grid[float32]
	reverseVelocityCoefTotals   *Grid[float32]
	pressureCoefTotals          *Grid[float32]

	props DomainProperties
}

// NewDomain constructs a Domain of the given size with k pressure
// channels, governed by props. size must have every component
// positive, k must be at least 1, and props must validate.
func NewDomain(size Coords, k int, props DomainProperties) (*Domain, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("fluidsim: domain size must be positive on every axis, got %v", size)
	}
	if k < 1 {
		return nil, fmt.Errorf("fluidsim: domain needs at least one pressure channel, got %d", k)
	}
	if err := props.Validate(); err != nil {
		return nil, err
	}
	return &Domain{
		size: size,
		K:    k,

		velocity: NewSwapPack[float32](size, velocityChannels),
		pressure: NewSwapPack[float32](size, k),
		blockage: NewGrid[FlowFlags](size),

		vorticity:                   NewGrid[float32](size),
		forwardVelocityCoefficients: NewGrid[AdvectionCell](size),
		reverseVelocityCoefficients: NewGrid[AdvectionCell](size),
		pressureCoefficients:        NewGrid[AdvectionCell](size),
		forwardVelocityCoefTotals:   NewGrid[float32](size),
		reverseVelocityCoefTotals:   NewGrid[float32](size),
		pressureCoefTotals:          NewGrid[float32](size),

		props: props,
	}, nil
}

// Size returns the domain's fixed grid dimensions.
func (d *Domain) Size() Coords { return d.size }

// Pressure returns the current pressure value of every channel at c.
func (d *Domain) Pressure(c Coords) []float32 {
	out := make([]float32, d.K)
	for ch := 0; ch < d.K; ch++ {
		out[ch] = d.pressure.Consumer(ch).At(c)
	}
	return out
}

// SetPressure overwrites every channel's pressure at c. v must have
// length K. The write lands on the consumer side and is visible to
// Pressure immediately; it is carried forward through the pack's
// swap-chains by the next Simulate call.
func (d *Domain) SetPressure(c Coords, v []float32) {
	if len(v) != d.K {
		panic(fmt.Sprintf("fluidsim: SetPressure needs %d channel values, got %d", d.K, len(v)))
	}
	for ch := 0; ch < d.K; ch++ {
		d.pressure.Consumer(ch).Set(c, v[ch])
	}
}

// Velocity returns the current velocity at c.
func (d *Domain) Velocity(c Coords) (float32, float32, float32) {
	return d.velocity.Consumer(0).At(c), d.velocity.Consumer(1).At(c), d.velocity.Consumer(2).At(c)
}

// SetVelocity overwrites the velocity at c.
func (d *Domain) SetVelocity(c Coords, v [3]float32) {
	d.velocity.Consumer(0).Set(c, v[0])
	d.velocity.Consumer(1).Set(c, v[1])
	d.velocity.Consumer(2).Set(c, v[2])
}

// Blocked returns the face-blockage flags at c.
func (d *Domain) Blocked(c Coords) FlowFlags {
	return d.blockage.At(c)
}

// SetBlock overwrites the face-blockage flags at c.
func (d *Domain) SetBlock(c Coords, f FlowFlags) {
	d.blockage.Set(c, f)
}

// TotalPressure sums channel ch's current field across every cell,
// for mass-conservation diagnostics. It allocates a scratch float64
// slice and is not called on the Simulate path.
func (d *Domain) TotalPressure(ch int) float64 {
	g := d.pressure.Consumer(ch)
	vals := make([]float64, 0, d.size.X*d.size.Y*d.size.Z)
	Iterate(d.size, func(c Coords) {
		vals = append(vals, float64(g.At(c)))
	})
	return floats.Sum(vals)
}

// PressureSnapshot copies channel ch's current field into a
// *sparse.DenseArray shaped (X,Y,Z), for external inspection. It
// allocates and is not called on the Simulate path.
func (d *Domain) PressureSnapshot(ch int) *sparse.DenseArray {
	g := d.pressure.Consumer(ch)
	out := sparse.ZerosDense(d.size.X, d.size.Y, d.size.Z)
	Iterate(d.size, func(c Coords) {
		out.Set(float64(g.At(c)), c.X, c.Y, c.Z)
	})
	return out
}

// VelocitySnapshot copies the current velocity field's given
// component (0=x, 1=y, 2=z) into a *sparse.DenseArray shaped
// (X,Y,Z).
func (d *Domain) VelocitySnapshot(component int) *sparse.DenseArray {
	g := d.velocity.Consumer(component)
	out := sparse.ZerosDense(d.size.X, d.size.Y, d.size.Z)
	Iterate(d.size, func(c Coords) {
		out.Set(float64(g.At(c)), c.X, c.Y, c.Z)
	})
	return out
}

// Simulate advances the domain by one timestep: diffusion, then
// forces, then advection, in that order.
func (d *Domain) Simulate() {
	d.pressure.Swap()
	d.velocity.Swap()

	d.simDiffusion()
	d.simForces()
	d.simAdvection()
}

func (d *Domain) simDiffusion() {
	steps := d.props.DiffusionSteps
	strength := d.props.PressureProps.Diffusion / float32(steps)
	for i := 0; i < steps; i++ {
		for ch := 0; ch < d.K; ch++ {
			chain := d.pressure.Chain(ch)
			DiffusionStep(chain.Producer(), chain.Consumer(), d.blockage, strength)
		}
		d.pressure.Swap()
	}
}

func (d *Domain) simForces() {
	dt := d.props.StepDeltaTime

	if d.props.VelocityDecay != nil {
		kappa := DecayKappa(*d.props.VelocityDecay, dt)
		for ch := 0; ch < velocityChannels; ch++ {
			chain := d.velocity.Chain(ch)
			DecayVelocity(chain.Producer(), chain.Consumer(), kappa)
		}
		d.velocity.Swap()
	}

	if d.props.PressureAcceleration != nil {
		f := *d.props.PressureAcceleration * dt
		pressureConsumers := make([]*Grid[float32], d.K)
		for ch := 0; ch < d.K; ch++ {
			pressureConsumers[ch] = d.pressure.Consumer(ch)
		}
		PressureAcceleration(
			d.velocity.Producer(0), d.velocity.Producer(1), d.velocity.Producer(2),
			pressureConsumers, f,
		)
		d.velocity.Swap()
	}

	if d.props.Vorticity != nil {
		f := *d.props.Vorticity * dt
		BuildVorticity(d.vorticity, d.velocity.Consumer(0), d.velocity.Consumer(1), d.velocity.Consumer(2))
		ApplyVorticityConfinement(
			d.velocity.Producer(0), d.velocity.Producer(1), d.velocity.Producer(2),
			d.vorticity, f,
		)
		d.velocity.Swap()
	}
}

func (d *Domain) simAdvection() {
	scale := (float32(d.size.X+d.size.Y+d.size.Z) / 3) / 100 * d.props.StepDeltaTime
	if scale <= advectionEpsilon {
		return
	}

	d.forwardVelocityCoefTotals.Fill(0)
	d.reverseVelocityCoefTotals.Fill(0)
	d.pressureCoefTotals.Fill(0)
	d.forwardVelocityCoefficients.Fill(AdvectionCell{})
	d.reverseVelocityCoefficients.Fill(AdvectionCell{})
	d.pressureCoefficients.Fill(AdvectionCell{})

	velAdv := d.props.VelocityProps.Advection
	pressureAdv := d.props.PressureProps.Advection

	// All three coefficient sets are built from the same pre-advection
	// velocity snapshot, before either pack's advection swap rotates
	// its buffers out from under these grids.
	vx, vy, vz := d.velocity.Consumer(0), d.velocity.Consumer(1), d.velocity.Consumer(2)

	GenerateCoefficients(d.forwardVelocityCoefficients, d.forwardVelocityCoefTotals, vx, vy, vz, d.blockage, scale*velAdv)
	GenerateCoefficients(d.reverseVelocityCoefficients, d.reverseVelocityCoefTotals, vx, vy, vz, d.blockage, -scale*velAdv)
	GenerateCoefficients(d.pressureCoefficients, d.pressureCoefTotals, vx, vy, vz, d.blockage, scale*pressureAdv)

	for ch := 0; ch < velocityChannels; ch++ {
		chain := d.velocity.Chain(ch)
		dst, src := chain.Producer(), chain.Consumer()
		ForwardAdvection(dst, src, d.forwardVelocityCoefficients)
		ReverseAdvection(dst, src, d.reverseVelocityCoefficients)
	}
	d.velocity.Swap()

	for ch := 0; ch < d.K; ch++ {
		chain := d.pressure.Chain(ch)
		dst, src := chain.Producer(), chain.Consumer()
		ForwardAdvection(dst, src, d.pressureCoefficients)
		ReverseAdvection(dst, src, d.pressureCoefficients)
	}
	d.pressure.Swap()
}
