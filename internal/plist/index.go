// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package plist

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

// Index contains immutable mappings from names to positions.
type Index struct {
	m *immutable.SortedMap
}

func (x Index) imm() *immutable.SortedMap {
	if x.m == nil {
		return emptyMap
	}
	return x.m
}

// Get the position for a name.
func (x Index) Get(name string) (int, bool) {
	v, ok := x.imm().Get(name)
	if !ok {
		return -1, false
	}
	return v.(int), true
}

// IndexBuilder enables in-place updates of an index before finalization.
type IndexBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewIndexBuilder() IndexBuilder {
	return IndexBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

func (b IndexBuilder) Get(name string) (int, bool) {
	v, ok := b.b.Get(name)
	if !ok {
		return -1, false
	}
	return v.(int), true
}

func (b IndexBuilder) Set(name string, pos int) IndexBuilder {
	b.b.Set(name, pos)
	return b
}

// Finalize the builder into an immutable index.
func (b IndexBuilder) Build() Index {
	if b.b == nil {
		return Index{}
	}
	return Index{b.b.Map()}
}
