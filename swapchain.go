// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

import "fmt"

// swapChainDepth is the ring depth (N) used for every swap-chain in
// this module. The component design only requires N>=2; 2 is the
// depth the reference domain implementation uses for both its
// velocity and pressure packs, and this module does not expose N as a
// tunable.
const swapChainDepth = 2

// SwapChain is a ring of N identically-sized grids with a consumer
// cursor (read) and a producer cursor (write) that advance together
// modulo N on Swap.
type SwapChain[T any] struct {
	buffers  []*Grid[T]
	consumer int
	producer int
}

// NewSwapChain allocates a swap-chain of the given grid size.
func NewSwapChain[T any](size Coords) *SwapChain[T] {
	buffers := make([]*Grid[T], swapChainDepth)
	for i := range buffers {
		buffers[i] = NewGrid[T](size)
	}
	return &SwapChain[T]{buffers: buffers, consumer: 0, producer: 1 % swapChainDepth}
}

// Consumer returns the current read snapshot.
func (s *SwapChain[T]) Consumer() *Grid[T] { return s.buffers[s.consumer] }

// Producer returns the current write target.
func (s *SwapChain[T]) Producer() *Grid[T] { return s.buffers[s.producer] }

// RWPair returns an aliasing-free (consumer, producer) pair for a
// single-pass kernel. It panics if the chain was constructed with a
// depth under 2, which would make the two cursors collide.
func (s *SwapChain[T]) RWPair() (*Grid[T], *Grid[T]) {
	if s.consumer == s.producer {
		panic(fmt.Sprintf("fluidsim: swap-chain consumer and producer cursors collide (depth %d)", len(s.buffers)))
	}
	return s.Consumer(), s.Producer()
}

// Swap copies the current consumer's data onto the current producer,
// so that any write landed on the consumer side (by a kernel or an
// external setter) carries forward, then commits that freshly-seeded
// producer as the new consumer. Both cursors then sit one step
// further along the ring, leaving the new producer ready for a
// kernel doing a partial (delta-style) update.
func (s *SwapChain[T]) Swap() {
	n := len(s.buffers)
	s.buffers[s.producer].CopyFrom(s.buffers[s.consumer])
	s.consumer = s.producer
	s.producer = (s.producer + 1) % n
}
