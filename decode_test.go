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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	Circle := NamedRecord("Circle", F("kind", Literal("circle")), F("radius", Number()))
	Square := NamedRecord("Square", F("kind", Literal("square")), F("side", Number()))
	Shape := Union(Circle, Square)

	v, err := ParseJSON(Shape, []byte(`{"kind": "square", "side": 2, "color": "red"}`))
	require.NoError(t, err)
	assert.True(t, Square.IsInstance(v))
	assert.Equal(t, 2.0, v.(*Instance).Get("side"))
	assert.False(t, v.(*Instance).Has("color"))

	_, err = ParseJSON(Shape, []byte(`{"kind": "triangle"}`))
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParseJSON(Shape, []byte(`{"kind": `))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "decode json")

	list, err := ParseJSON(Array(Shape), []byte(`[{"kind": "circle", "radius": 1}]`))
	require.NoError(t, err)
	// Array Make leaves elements as decoded.
	assert.IsType(t, map[string]interface{}{}, list.([]interface{})[0])
}

func TestParseYAML(t *testing.T) {
	Service := NamedRecord("Service",
		F("name", String()),
		F("port", Number()),
		F("tags", Array(String())),
		F("mode", Enum("http", "grpc")),
		F("owner", Union(String(), Null())),
	)
	doc := []byte(`
name: api
port: 8080
tags: [public, v2]
mode: grpc
owner: ~
`)
	v, err := ParseYAML(Service, doc)
	require.NoError(t, err)
	inst := v.(*Instance)
	assert.Equal(t, "api", inst.Get("name"))
	assert.Equal(t, 8080, inst.Get("port"))
	assert.True(t, inst.Has("owner"))
	assert.Nil(t, inst.Get("owner"))

	_, err = ParseYAML(Service, []byte("name: api\nport: eighty\n"))
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParseYAML(Service, []byte("name: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestDecode(t *testing.T) {
	v, err := DecodeJSON([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = DecodeJSON([]byte(`[1, "a", true]`))
	require.NoError(t, err)
	assert.True(t, Array(Union(Number(), String(), Boolean())).Guard(v))

	v, err = DecodeYAML([]byte("1: one\n2: two\n"))
	require.NoError(t, err)
	assert.False(t, Record(F("1", String())).Guard(v))
	assert.True(t, Record().Guard(v))
}
