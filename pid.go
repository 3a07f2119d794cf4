// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

// Pid is a simple scalar PID controller for external callers driving
// setpoints against a Domain (e.g. a target average pressure). It is
// not invoked anywhere inside the simulation step loop.
type Pid struct {
	Kp, Ki, Kd float32
	ePrev      float32
}

// NewPid returns a Pid with the given gains.
func NewPid(kp, ki, kd float32) *Pid {
	return &Pid{Kp: kp, Ki: ki, Kd: kd}
}

// DefaultPid returns a proportional-only controller with gain 1.
func DefaultPid() *Pid {
	return NewPid(1, 0, 0)
}

// Val computes the controller output for the given current value,
// desired value and elapsed time, using a trapezoidal approximation
// of the integral term.
func (p *Pid) Val(current, desired, dt float32) float32 {
	e := desired - current
	integral := (e + p.ePrev) / 2 * dt
	var derivative float32
	if dt != 0 {
		derivative = (e - p.ePrev) / dt
	}
	out := p.Kp*e + p.Ki*integral + p.Kd*derivative
	p.ePrev = e
	return out
}

// Reset clears the controller's remembered previous error.
func (p *Pid) Reset() {
	p.ePrev = 0
}
