// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

// SwapPack holds K independent swap-chains of identical size that
// swap in lock-step, one per vector component or pressure channel.
type SwapPack[T any] struct {
	channels []*SwapChain[T]
}

// NewSwapPack allocates a pack of k swap-chains, each of the given
// grid size.
func NewSwapPack[T any](size Coords, k int) *SwapPack[T] {
	channels := make([]*SwapChain[T], k)
	for i := range channels {
		channels[i] = NewSwapChain[T](size)
	}
	return &SwapPack[T]{channels: channels}
}

// Len returns the number of channels in the pack.
func (p *SwapPack[T]) Len() int { return len(p.channels) }

// Chain returns the i'th channel's swap-chain.
func (p *SwapPack[T]) Chain(i int) *SwapChain[T] { return p.channels[i] }

// Consumer returns the i'th channel's current read snapshot.
func (p *SwapPack[T]) Consumer(i int) *Grid[T] { return p.channels[i].Consumer() }

// Producer returns the i'th channel's current write target.
func (p *SwapPack[T]) Producer(i int) *Grid[T] { return p.channels[i].Producer() }

// Swap advances every channel in the pack by one step, in lock-step.
func (p *SwapPack[T]) Swap() {
	for _, c := range p.channels {
		c.Swap()
	}
}
