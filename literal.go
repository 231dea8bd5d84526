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

// LiteralType accepts exactly one fixed value.
type LiteralType struct {
	value interface{}
	nan   bool
}

// Literal creates a constructor for the single value v. A NaN literal accepts any NaN.
func Literal(v interface{}) *LiteralType {
	return &LiteralType{value: v, nan: value.IsNaN(v)}
}

// Value returns the literal value.
func (l *LiteralType) Value() interface{} { return l.value }

func (l *LiteralType) Name() string { return "literal" }

// Make trusts its input; it does not check v against the literal.
func (l *LiteralType) Make(v interface{}) interface{} { return v }

func (l *LiteralType) Guard(v interface{}) bool {
	if l.nan {
		return value.IsNaN(v)
	}
	return value.Equal(l.value, v)
}

func (l *LiteralType) Parse(v interface{}) (interface{}, error) { return parse(v, l) }

// EnumType accepts any value from a fixed ordered set.
type EnumType struct {
	values []interface{}
	hasNaN bool
}

// Enum creates a constructor accepting any of values, compared structurally.
func Enum(values ...interface{}) *EnumType {
	e := &EnumType{values: append([]interface{}(nil), values...)}
	for _, v := range values {
		if value.IsNaN(v) {
			e.hasNaN = true
			break
		}
	}
	return e
}

// Enums is an alias for Enum.
func Enums(values ...interface{}) *EnumType { return Enum(values...) }

// Values returns a copy of the accepted values, in declaration order.
func (e *EnumType) Values() []interface{} { return append([]interface{}(nil), e.values...) }

func (e *EnumType) Name() string { return "enum" }

// Make trusts its input; it does not check v against the set.
func (e *EnumType) Make(v interface{}) interface{} { return v }

func (e *EnumType) Guard(v interface{}) bool {
	if value.IsNaN(v) {
		return e.hasNaN
	}
	for _, x := range e.values {
		if value.Equal(x, v) {
			return true
		}
	}
	return false
}

func (e *EnumType) Parse(v interface{}) (interface{}, error) { return parse(v, e) }
