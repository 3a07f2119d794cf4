// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

import (
	"fmt"

	"github.com/ctessum/unit"
)

// ChannelProperties holds the per-pack advection and diffusion
// strengths shared by every channel in a pack (velocity or pressure).
type ChannelProperties struct {
	Advection float32
	Diffusion float32
}

// DomainProperties configures a Domain's behavior.
type DomainProperties struct {
	VelocityProps ChannelProperties
	PressureProps ChannelProperties

	// DiffusionSteps is the number of diffusion sub-iterations run
	// per Simulate call; must be at least 1.
	DiffusionSteps int
	// StepDeltaTime is the simulated duration of one Simulate call;
	// must be positive.
	StepDeltaTime float32

	// VelocityDecay, PressureAcceleration and Vorticity are optional
	// forces: nil disables the corresponding forces sub-step.
	VelocityDecay        *float32
	PressureAcceleration *float32
	Vorticity            *float32
}

// DefaultDomainProperties returns the reference configuration: one
// diffusion step, dt=0.1, all three optional forces enabled at 0.1,
// and advection/diffusion strength 0.1 for both packs.
func DefaultDomainProperties() DomainProperties {
	pt := func(v float32) *float32 { return &v }
	return DomainProperties{
		VelocityProps:        ChannelProperties{Advection: 0.1, Diffusion: 0.1},
		PressureProps:        ChannelProperties{Advection: 0.1, Diffusion: 0.1},
		DiffusionSteps:       1,
		StepDeltaTime:        0.1,
		VelocityDecay:        pt(0.1),
		PressureAcceleration: pt(0.1),
		Vorticity:            pt(0.1),
	}
}

// Validate reports whether p is usable by a Domain. It builds a
// time-dimensioned unit.Unit purely to produce a self-describing
// error message; the Unit is never retained or used on the
// simulation path.
func (p DomainProperties) Validate() error {
	if p.DiffusionSteps < 1 {
		return fmt.Errorf("fluidsim: diffusion steps must be >= 1, got %d", p.DiffusionSteps)
	}
	dt := unit.New(float64(p.StepDeltaTime), unit.Dimensions{unit.TimeDim: 1})
	if dt.Value() <= 0 {
		return fmt.Errorf("fluidsim: step delta time must be positive, got %v", dt)
	}
	return nil
}
