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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHelpers(t *testing.T) {
	v, err := Parse(Number(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	assert.Equal(t, "x", MustParse(String(), "x"))
	assert.PanicsWithError(t, "can not parse 5 as string", func() { MustParse(String(), 5) })
}

func TestAs(t *testing.T) {
	s, err := As[string](String(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	P := NamedRecord("P", F("x", Number()))
	inst, err := As[*Instance](P, obj{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, 1, inst.Get("x"))

	n, err := As[int](Number(), 2.5)
	assert.ErrorIs(t, err, ErrParse)
	assert.Zero(t, n)

	_, err = As[string](String(), 1)
	assert.ErrorIs(t, err, ErrParse)
}

func TestErrors(t *testing.T) {
	var err error = &ParseError{Value: nil, Target: "string"}
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrIncompleteMatch))
	assert.EqualError(t, err, "can not parse null as string")

	err = &IncompleteMatchError{Value: []interface{}{1}}
	assert.True(t, errors.Is(err, ErrIncompleteMatch))
	assert.False(t, errors.Is(err, ErrParse))
	assert.EqualError(t, err, "unexpected incomplete match for [1]")
}

// A guard must reject malformed input without panicking, however it is nested.
func TestGuardsNeverPanic(t *testing.T) {
	R := Record(
		F("a", Array(Record(F("b", Union(Enum(1, "x"), Array(Null())))))),
		F("c", Literal(nil)),
	)
	inputs := []interface{}{
		nil, 1, "s", true, []interface{}{nil}, map[int]string{1: "a"},
		obj{"a": nil}, obj{"a": []interface{}{nil, 1}}, obj{"a": []interface{}{obj{"b": []string{"x"}}}},
		obj{"a": "str"}, (*Instance)(nil), &Instance{}, map[interface{}]interface{}{1: 2}, struct{ A int }{1},
		func() {}, make(chan int),
	}
	for _, c := range []Constructor{R, Array(R), Union(R, Number()), Enum(obj{"a": 1}), Literal("x")} {
		for _, in := range inputs {
			assert.NotPanics(t, func() { c.Guard(in) }, "%s guard %#v", Describe(c), in)
		}
	}
	assert.True(t, R.Guard(obj{"a": []interface{}{obj{"b": []interface{}{nil}}}, "c": nil}))
	assert.False(t, R.Guard(&Instance{}))
	assert.False(t, Record().Guard(&Instance{}))
}
