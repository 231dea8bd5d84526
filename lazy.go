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

package data

import (
	"sync"
)

// LazyType defers building a constructor until first use, which allows a
// constructor to refer to itself:
//
//	var tree *data.LazyType
//	tree = data.Lazy("Tree", func() data.Constructor {
//		return data.Record(data.F("value", data.Number()), data.F("children", data.Array(tree)))
//	})
type LazyType struct {
	name    string
	once    sync.Once
	resolve func() Constructor
	c       Constructor
}

// Lazy creates a constructor which calls resolve once, on first use.
func Lazy(name string, resolve func() Constructor) *LazyType {
	return &LazyType{name: name, resolve: resolve}
}

// Resolve returns the underlying constructor, building it if needed.
func (l *LazyType) Resolve() Constructor {
	l.once.Do(func() { l.c = l.resolve() })
	return l.c
}

func (l *LazyType) Name() string                   { return l.name }
func (l *LazyType) Make(v interface{}) interface{} { return l.Resolve().Make(v) }
func (l *LazyType) Guard(v interface{}) bool       { return l.Resolve().Guard(v) }

func (l *LazyType) IsInstance(v interface{}) bool {
	ic, ok := l.Resolve().(instanceChecker)
	return ok && ic.IsInstance(v)
}

func (l *LazyType) Parse(v interface{}) (interface{}, error) { return parse(v, l) }
