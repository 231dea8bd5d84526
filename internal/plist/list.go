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

// Package plist provides persistent ordered containers. Updates never mutate a
// container another holder can observe; each update returns a successor.
package plist

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

// Empty is the zero-length List.
var Empty = List{emptyList}

// List is an immutable ordered sequence of values.
type List struct {
	l *immutable.List
}

func (l List) imm() *immutable.List {
	if l.l == nil {
		return emptyList
	}
	return l.l
}

func (l List) Len() int              { return l.imm().Len() }
func (l List) Get(i int) interface{} { return l.imm().Get(i) }

// Append returns a new List with v added at the end.
func (l List) Append(v interface{}) List { return List{l.imm().Append(v)} }

// Set returns a new List with the value at index i replaced by v.
func (l List) Set(i int, v interface{}) List { return List{l.imm().Set(i, v)} }

// If f returns false, iteration will be stopped.
func (l List) Range(f func(int, interface{}) bool) {
	iter := l.imm().Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v) {
			return
		}
	}
}

// IndexOf returns the position of the first value for which match returns true, or -1.
func (l List) IndexOf(match func(interface{}) bool) int {
	found := -1
	l.Range(func(i int, v interface{}) bool {
		if match(v) {
			found = i
			return false
		}
		return true
	})
	return found
}

// Builder enables in-place appends to a list before finalization.
type Builder struct {
	b *immutable.ListBuilder
}

func NewBuilder() Builder {
	return Builder{immutable.NewListBuilder(emptyList)}
}

func (b Builder) Len() int                 { return b.b.Len() }
func (b Builder) Append(v interface{})     { b.b.Append(v) }
func (b Builder) Set(i int, v interface{}) { b.b.Set(i, v) }
func (b Builder) Build() List              { return List{b.b.List()} }
