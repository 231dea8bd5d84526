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
	"github.com/wdamron/data/internal/value"
)

// ArrayType accepts homogeneous sequences.
type ArrayType struct {
	elem Constructor
}

// Array creates a constructor for sequences whose elements all satisfy elem.
func Array(elem Constructor) *ArrayType { return &ArrayType{elem: elem} }

// Elem returns the element constructor.
func (a *ArrayType) Elem() Constructor { return a.elem }

func (a *ArrayType) Name() string { return "array" }

// Make returns v unchanged. Elements are not passed through the element
// constructor's Make, unlike Record and Union which delegate to their children.
func (a *ArrayType) Make(v interface{}) interface{} { return v }

func (a *ArrayType) Guard(v interface{}) bool {
	return value.IsSequence(v) && value.Every(v, a.elem.Guard)
}

func (a *ArrayType) Parse(v interface{}) (interface{}, error) { return parse(v, a) }
