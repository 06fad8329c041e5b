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

package memblock

import (
	"reflect"
	"runtime"
)

// SizeOf returns the byte size of T as stored in a block.
// unsafe.Sizeof does not accept type parameter operands, so go through
// reflect; the Type lookup allocates nothing.
func SizeOf[T any]() int {
	return int(reflect.TypeOf((*T)(nil)).Elem().Size())
}

// Deposit writes value into b and returns the position it was written at, so
// the caller can Inspect or Withdraw it later.
//
// The write address is derived from the value's byte size relative to the
// caller-supplied cursor: the value lands at at+SizeOf[T]() and that position
// is returned. Threading the returned position as the next cursor stacks
// values of one size; for mixed sizes the caller must place the cursor
// itself (package memstack does this bookkeeping).
//
// Writes whose byte range would fall outside the region are rejected with
// ErrMemoryOverflow before touching memory. T must be fixed-size and must
// not contain pointers: the region is untyped bytes the garbage collector
// does not trace.
func Deposit[T any](b *Block, at Position, value T) (Position, error) {
	if b.freed {
		return 0, ErrMemoryAlreadyFreed
	}
	size := Position(SizeOf[T]())
	pos := at + size
	if pos < b.Base() || pos+size > b.end() {
		return 0, ErrMemoryOverflow
	}
	*(*T)(b.pointerAt(pos)) = value
	runtime.KeepAlive(b) // the finalizer must not reclaim the slab mid-write
	return pos, nil
}

// Withdraw reads the value of type T at position at and returns it together
// with its byte size and the new cursor one T-sized step back toward the
// base of the region.
//
// The read is logical-pop only: the bytes are neither zeroed nor
// invalidated, and the block itself has no notion of "top". The caller
// maintains whatever discipline gives the cursor meaning. Reads outside the
// region are ErrMemoryOverflow; reads on a freed block are
// ErrMemoryAlreadyFreed.
func Withdraw[T any](b *Block, at Position) (value T, size int, cursor Position, err error) {
	if b.freed {
		err = ErrMemoryAlreadyFreed
		return
	}
	n := Position(SizeOf[T]())
	if at < b.Base() || at+n > b.end() {
		err = ErrMemoryOverflow
		return
	}
	value = *(*T)(b.pointerAt(at))
	runtime.KeepAlive(b)
	return value, int(n), at - n, nil
}

// Inspect reads the value of type T at position at without moving any
// cursor and without any validation: no bounds check, no freed check, no
// error return. This is the unchecked fast path: the caller must supply a
// position known to hold an in-bounds value of type T on a live block;
// anything else is undefined behavior.
func Inspect[T any](b *Block, at Position) T {
	value := *(*T)(b.pointerAt(at))
	runtime.KeepAlive(b)
	return value
}
