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

// Package workdata describes the tagged values an interpreter's
// working-memory layer stores in raw memory: the data category, its textual
// value and type, and whether it lives on the quantum side. It specifies
// shape only; the lifecycle behavior belongs to whichever layer implements
// WorkingData on top of a memory block.
package workdata

// Kind classifies a working-data item.
type Kind uint8

const (
	Atomic Kind = iota
	Symbol
	Literal
	CompositeSymbol
	CompositeLiteral
	CompositeMix
)

var kindNames = [...]string{
	Atomic:           "Atomic",
	Symbol:           "Symbol",
	Literal:          "Literal",
	CompositeSymbol:  "CompositeSymbol",
	CompositeLiteral: "CompositeLiteral",
	CompositeMix:     "CompositeMix",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Composite reports whether k is one of the composite categories.
func (k Kind) Composite() bool {
	return k >= CompositeSymbol && k <= CompositeMix
}

// Item is one tagged value produced or consumed by a working-memory layer.
// The memory primitive below stores it opaquely; the fields here are the
// contract between the layers, not a wire format.
type Item struct {
	Kind         Kind
	Value        string
	Type         string
	Quantum      bool
	SuppressType bool
}

// IsQuantum reports whether the item belongs to the quantum side of the
// execution model.
func (it Item) IsQuantum() bool { return it.Quantum }

// WorkingData is the lifecycle contract a working-memory implementation must
// provide. Implementations own their storage (typically a memstack.Stack)
// and define how items are laid out in it; creation maps to a constructor by
// the usual convention.
type WorkingData interface {
	Push(Item) error
	Pop() (Item, error)
	Free() error

	IsQuantum() bool
}
