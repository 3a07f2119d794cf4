// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

import "testing"

func TestPidProportionalOnly(t *testing.T) {
	p := DefaultPid()
	got := p.Val(0, 10, 1)
	if got != 10 {
		t.Errorf("Val = %v, want 10 for a unit-gain proportional controller", got)
	}
}

func TestPidConvergesTowardSetpoint(t *testing.T) {
	p := NewPid(0.5, 0.1, 0)
	current := float32(0)
	const desired = 20
	for i := 0; i < 200; i++ {
		current += p.Val(current, desired, 0.05)
	}
	if diff := current - desired; diff > 0.5 || diff < -0.5 {
		t.Errorf("current = %v after convergence loop, want close to %v", current, desired)
	}
}

func TestPidReset(t *testing.T) {
	p := NewPid(1, 1, 1)
	p.Val(0, 5, 1)
	p.Reset()
	if p.ePrev != 0 {
		t.Errorf("ePrev = %v after Reset, want 0", p.ePrev)
	}
}
