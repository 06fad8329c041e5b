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

// Package memblock provides a fixed-size, alignment-constrained raw memory
// region with bounds-checked typed access and cursor-based, last-in/first-out
// consumption.
//
// A Block is mechanism, not policy. It stores bytes opaquely and does not
// remember where the last value ended: callers thread the Position returned
// by Deposit as their own cursor, and a layer above the block (see package
// memstack) decides what "top" means.
//
// A Block must not be shared across goroutines; it carries no locks and no
// atomic bookkeeping.
package memblock

import (
	"runtime"
	"unsafe"

	"github.com/bytedance/gopkg/lang/mcache"
)

// BlockSize is the numeric type for block sizes.
type BlockSize int

// Position locates a value inside an acquired block. It is an
// address-equivalent value: callers may thread it as a cursor and compare it
// against Base, but must not interpret it otherwise.
type Position uintptr

const (
	// MaxBlockSize is the largest region a single Block may hold.
	MaxBlockSize BlockSize = 1 << 16

	// DefaultAlignment is the alignment to use when the caller has no
	// stricter requirement.
	DefaultAlignment = 8

	// MaxAlignment is the largest supported alignment (one page).
	MaxAlignment = 4096
)

// Block owns one contiguous byte region obtained from mcache. The region's
// size is a power of two bounded by MaxBlockSize and its base honors the
// alignment the block was acquired with.
type Block struct {
	raw   []byte         // slab as returned by mcache, kept for Free
	base  unsafe.Pointer // start of the aligned usable region
	size  BlockSize
	align int
	freed bool
}

// Acquire allocates a block of exactly size bytes aligned to align.
//
// The size ceiling is checked first, then the power-of-two constraint, then
// the alignment layout rules, each with its own error, before any memory is
// requested. The returned block is live until Free; if the owner drops it
// without freeing, a finalizer releases the region best-effort and any error
// from that implicit release is not observable.
func Acquire(size BlockSize, align int) (*Block, error) {
	if size > MaxBlockSize {
		return nil, ErrInvalidBlockSize
	}
	if size <= 0 || size&(size-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, ErrLayout
	}
	if align > MaxAlignment {
		return nil, ErrInvalidAlignment
	}

	// Over-allocate by align so the base can be rounded up inside the slab.
	raw := mcache.Malloc(int(size) + align)
	if len(raw) == 0 {
		return nil, ErrNullPointer
	}
	base := unsafe.Pointer(&raw[0])
	if rem := uintptr(base) & uintptr(align-1); rem != 0 {
		base = unsafe.Add(base, align-int(rem))
	}

	b := &Block{raw: raw, base: base, size: size, align: align}
	runtime.SetFinalizer(b, (*Block).finalize)
	return b, nil
}

// Free returns the region to the allocator and marks the block freed.
// Calling Free again reports ErrMemoryAlreadyFreed; the system memory is
// released at most once no matter how many times Free is called.
func (b *Block) Free() error {
	if b.freed {
		return ErrMemoryAlreadyFreed
	}
	runtime.SetFinalizer(b, nil)
	mcache.Free(b.raw)
	b.raw = nil
	b.base = nil
	b.freed = true
	return nil
}

func (b *Block) finalize() { _ = b.Free() }

// Base returns the position of the first byte of the region. It doubles as
// the initial cursor for stack-style use and as the sentinel a cursor comes
// back to once everything has been withdrawn.
func (b *Block) Base() Position { return Position(uintptr(b.base)) }

// Size returns the byte length of the region.
func (b *Block) Size() BlockSize { return b.size }

// Alignment returns the alignment the region was acquired with.
func (b *Block) Alignment() int { return b.align }

// Freed reports whether the region has been returned to the allocator.
func (b *Block) Freed() bool { return b.freed }

// end returns the position one past the last usable byte.
func (b *Block) end() Position { return Position(uintptr(b.base)) + Position(b.size) }

// pointerAt converts a position back into a pointer within the region.
func (b *Block) pointerAt(at Position) unsafe.Pointer {
	return unsafe.Add(b.base, uintptr(at)-uintptr(b.base))
}
