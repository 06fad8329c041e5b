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

import "errors"

// The full set of conditions a block or a layer above it can report.
// All of them are ordinary values to be checked with errors.Is; none is a
// process abort. ErrEmptyMemory and ErrNotEnoughMemory are defined here but
// only returned by consumption disciplines built on top of a Block, such as
// package memstack.
var (
	ErrEmptyMemory        = errors.New("memblock: empty memory")
	ErrInvalidBlockSize   = errors.New("memblock: invalid block size")
	ErrInvalidAlignment   = errors.New("memblock: invalid alignment")
	ErrLayout             = errors.New("memblock: bad size/alignment layout")
	ErrMemoryAlreadyFreed = errors.New("memblock: memory already freed")
	ErrMemoryOverflow     = errors.New("memblock: memory overflow")
	ErrNotEnoughMemory    = errors.New("memblock: not enough memory")
	ErrNotPowerOfTwo      = errors.New("memblock: size not power of two")
	ErrNullPointer        = errors.New("memblock: allocator returned null pointer")
)
