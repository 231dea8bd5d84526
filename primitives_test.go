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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleValues = []interface{}{
	"hi", "", 1234, 0, -1.5, math.NaN(), uint8(3), float32(2),
	true, false, nil,
	[]interface{}{1}, []string{}, map[string]interface{}{"property": []interface{}{1234}},
}

func TestPrimitiveGuards(t *testing.T) {
	for _, v := range sampleValues {
		_, isString := v.(string)
		_, isBool := v.(bool)
		isNumber := false
		switch v.(type) {
		case int, float64, uint8, float32:
			isNumber = true
		}
		assert.Equal(t, isString, String().Guard(v), "string guard %#v", v)
		assert.Equal(t, isNumber, Number().Guard(v), "number guard %#v", v)
		assert.Equal(t, isBool, Boolean().Guard(v), "boolean guard %#v", v)
		assert.Equal(t, v == nil, Null().Guard(v), "null guard %#v", v)
		assert.True(t, Unknown().Guard(v), "unknown guard %#v", v)
	}
}

func TestNullIsStrict(t *testing.T) {
	var p *int
	var m map[string]interface{}
	assert.False(t, Null().Guard(p))
	assert.False(t, Null().Guard(m))
	assert.True(t, Nil().Guard(nil))
	assert.Same(t, Null(), Nil())
}

func TestPrimitiveMakeIsIdentity(t *testing.T) {
	assert.Equal(t, "hi", String().Make("hi"))
	assert.Equal(t, 1234, Number().Make(1234))
	assert.Equal(t, true, Boolean().Make(true))
	assert.Equal(t, false, Boolean().Make(false))
	assert.Nil(t, Null().Make(nil))

	obj := map[string]interface{}{"property": []interface{}{1234}}
	assert.Equal(t, obj, Unknown().Make(obj))

	xs := []interface{}{1, 2}
	made := Unknown().Make(xs).([]interface{})
	assert.Same(t, &xs[0], &made[0])

	f := Number().Make(math.NaN()).(float64)
	assert.True(t, math.IsNaN(f))
}

func TestPrimitivesAreSingletons(t *testing.T) {
	assert.Same(t, String(), String())
	assert.Same(t, Number(), Number())
	assert.Same(t, Unknown(), Unknown())
	assert.NotSame(t, String(), Number())
}

func TestPrimitiveParse(t *testing.T) {
	v, err := String().Parse("hi")
	assert.NoError(t, err)
	assert.Equal(t, "hi", v)

	_, err = String().Parse(1234)
	assert.ErrorIs(t, err, ErrParse)
	assert.EqualError(t, err, "can not parse 1234 as string")

	_, err = Number().Parse("1234")
	assert.EqualError(t, err, `can not parse "1234" as number`)

	_, err = Null().Parse(false)
	assert.ErrorIs(t, err, ErrParse)

	v, err = Unknown().Parse(nil)
	assert.NoError(t, err)
	assert.Nil(t, v)
}
