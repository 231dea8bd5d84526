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

// PrimitiveType is one of the stateless primitive constructors.
type PrimitiveType struct {
	name  string
	guard func(interface{}) bool
}

var (
	stringType  = &PrimitiveType{"string", isString}
	numberType  = &PrimitiveType{"number", value.IsNumber}
	booleanType = &PrimitiveType{"boolean", isBoolean}
	nullType    = &PrimitiveType{"null", func(v interface{}) bool { return v == nil }}
	unknownType = &PrimitiveType{"unknown", func(interface{}) bool { return true }}
)

func isString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

func isBoolean(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

// String accepts Go strings.
func String() *PrimitiveType { return stringType }

// Number accepts every Go integer and float kind, including NaN.
func Number() *PrimitiveType { return numberType }

// Boolean accepts Go bools.
func Boolean() *PrimitiveType { return booleanType }

// Null accepts only the untyped nil interface.
func Null() *PrimitiveType { return nullType }

// Nil is an alias for Null.
func Nil() *PrimitiveType { return nullType }

// Unknown accepts every value.
func Unknown() *PrimitiveType { return unknownType }

func (p *PrimitiveType) Name() string                             { return p.name }
func (p *PrimitiveType) Make(v interface{}) interface{}           { return v }
func (p *PrimitiveType) Guard(v interface{}) bool                 { return p.guard(v) }
func (p *PrimitiveType) Parse(v interface{}) (interface{}, error) { return parse(v, p) }
