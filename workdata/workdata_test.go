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

package workdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Atomic", Atomic.String())
	assert.Equal(t, "Symbol", Symbol.String())
	assert.Equal(t, "Literal", Literal.String())
	assert.Equal(t, "CompositeSymbol", CompositeSymbol.String())
	assert.Equal(t, "CompositeLiteral", CompositeLiteral.String())
	assert.Equal(t, "CompositeMix", CompositeMix.String())
	assert.Equal(t, "Unknown", Kind(200).String())
}

func TestKindComposite(t *testing.T) {
	for _, k := range []Kind{Atomic, Symbol, Literal} {
		assert.False(t, k.Composite(), k.String())
	}
	for _, k := range []Kind{CompositeSymbol, CompositeLiteral, CompositeMix} {
		assert.True(t, k.Composite(), k.String())
	}
}

func TestItem(t *testing.T) {
	it := Item{Kind: Literal, Value: "42", Type: "u64", Quantum: true, SuppressType: false}
	assert.True(t, it.IsQuantum())
	assert.Equal(t, Literal, it.Kind)

	var zero Item
	assert.Equal(t, Atomic, zero.Kind)
	assert.False(t, zero.IsQuantum())
}
