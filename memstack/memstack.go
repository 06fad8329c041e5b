/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package memstack layers a last-in/first-out discipline over a
// memblock.Block. The block itself does not know where the last value ended;
// Stack supplies that policy by recording the position of every live item
// and aiming the deposit cursor so values pack tightly from the base of the
// region, whatever their sizes.
//
// Like the block it owns, a Stack must not be shared across goroutines.
package memstack

import (
	"github.com/cloudwego/workmem/memblock"
)

// Stack owns a block and the cursor bookkeeping for stack-style use of it.
type Stack struct {
	block     *memblock.Block
	limit     memblock.Position   // one past the last byte in use
	positions []memblock.Position // start of each live item, push order
}

// New acquires a block of the given size and alignment and wraps it in an
// empty stack. Acquisition errors are the block's own.
func New(size memblock.BlockSize, align int) (*Stack, error) {
	block, err := memblock.Acquire(size, align)
	if err != nil {
		return nil, err
	}
	return &Stack{block: block, limit: block.Base()}, nil
}

// Push writes value on top of the stack and returns the position it can be
// inspected at. Values of different sizes may be mixed freely; each lands at
// the first free byte. Returns memblock.ErrNotEnoughMemory when the
// remaining capacity cannot hold the value.
func Push[T any](s *Stack, value T) (memblock.Position, error) {
	if s.block.Freed() {
		return 0, memblock.ErrMemoryAlreadyFreed
	}
	size := memblock.Position(memblock.SizeOf[T]())
	if s.limit+size > s.block.Base()+memblock.Position(s.block.Size()) {
		return 0, memblock.ErrNotEnoughMemory
	}
	// Deposit derives the write address from the value's size, so aim the
	// cursor one value below the first free byte.
	pos, err := memblock.Deposit(s.block, s.limit-size, value)
	if err != nil {
		return 0, err
	}
	s.positions = append(s.positions, pos)
	s.limit = pos + size
	return pos, nil
}

// Pop withdraws the most recently pushed item. The caller supplies the type
// it pushed; popping with a different type reads garbage, exactly as with
// memblock.Withdraw. Returns memblock.ErrEmptyMemory on an empty stack.
func Pop[T any](s *Stack) (T, error) {
	var zero T
	if s.block.Freed() {
		return zero, memblock.ErrMemoryAlreadyFreed
	}
	if len(s.positions) == 0 {
		return zero, memblock.ErrEmptyMemory
	}
	pos := s.positions[len(s.positions)-1]
	// Withdraw's computed cursor steps back by one T; with mixed item sizes
	// the recorded position of the next item down is authoritative instead.
	value, _, _, err := memblock.Withdraw[T](s.block, pos)
	if err != nil {
		return zero, err
	}
	s.positions = s.positions[:len(s.positions)-1]
	s.limit = pos
	return value, nil
}

// Peek reads the top item without consuming it.
func Peek[T any](s *Stack) (T, error) {
	var zero T
	if s.block.Freed() {
		return zero, memblock.ErrMemoryAlreadyFreed
	}
	if len(s.positions) == 0 {
		return zero, memblock.ErrEmptyMemory
	}
	return memblock.Inspect[T](s.block, s.positions[len(s.positions)-1]), nil
}

// Depth returns the number of live items.
func (s *Stack) Depth() int { return len(s.positions) }

// Block exposes the underlying block for direct typed access at positions
// returned by Push.
func (s *Stack) Block() *memblock.Block { return s.block }

// Reset drops all items without scrubbing bytes, returning the stack to its
// freshly acquired state.
func (s *Stack) Reset() {
	s.positions = s.positions[:0]
	s.limit = s.block.Base()
}

// Free releases the underlying block. Idempotency is the block's: a second
// Free reports memblock.ErrMemoryAlreadyFreed.
func (s *Stack) Free() error {
	return s.block.Free()
}
