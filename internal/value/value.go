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

// Package value classifies dynamic Go values into the shapes constructors check:
// numbers, sequences and string-keyed mappings.
package value

import (
	"math"
	"reflect"
)

// Object is implemented by values which expose named fields without being Go maps.
type Object interface {
	Lookup(key string) (interface{}, bool)
}

// IsNumber reports whether v holds any Go integer or float kind.
func IsNumber(v interface{}) bool {
	switch v.(type) {
	case float64, int, int64, float32, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return true
	case nil, string, bool:
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsNaN reports whether v is a floating-point NaN.
func IsNaN(v interface{}) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	case nil:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// IsSequence reports whether v is a Go slice or array.
func IsSequence(v interface{}) bool {
	switch v.(type) {
	case []interface{}:
		return true
	case nil, string, map[string]interface{}:
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// Every calls f for each element of the sequence v, stopping at the first false.
// It returns false when v is not a sequence or when f rejected an element.
func Every(v interface{}, f func(interface{}) bool) bool {
	if xs, ok := v.([]interface{}); ok {
		for _, x := range xs {
			if !f(x) {
				return false
			}
		}
		return true
	}
	if !IsSequence(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	for i := 0; i < rv.Len(); i++ {
		if !f(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// IsObject reports whether v is a string-keyed mapping or an Object.
// Sequences and nil are never objects.
func IsObject(v interface{}) bool {
	switch v.(type) {
	case map[string]interface{}, map[interface{}]interface{}, Object:
		return true
	case nil:
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// Lookup returns the value stored under key in the mapping v, and whether the key is present.
func Lookup(v interface{}, key string) (interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		x, ok := m[key]
		return x, ok
	case Object:
		return m.Lookup(key)
	case map[interface{}]interface{}:
		x, ok := m[key]
		return x, ok
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	x := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !x.IsValid() {
		return nil, false
	}
	return x.Interface(), true
}

// Equal reports structural equality: numbers compare by value across kinds,
// sequences element-wise, mappings key-wise. NaN is never equal to anything.
func Equal(a, b interface{}) bool {
	if IsNumber(a) || IsNumber(b) {
		return IsNumber(a) && IsNumber(b) && numberEqual(a, b)
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	if IsSequence(a) {
		if !IsSequence(b) {
			return false
		}
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		if ra.Len() != rb.Len() {
			return false
		}
		for i := 0; i < ra.Len(); i++ {
			if !Equal(ra.Index(i).Interface(), rb.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	if am, ok := a.(map[string]interface{}); ok {
		bm, ok := b.(map[string]interface{})
		if !ok || len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func numberEqual(a, b interface{}) bool {
	ia, aInt := asInt(a)
	ib, bInt := asInt(b)
	if aInt && bInt {
		return ia == ib
	}
	ua, aUint := asUint(a)
	ub, bUint := asUint(b)
	switch {
	case aUint && bUint:
		return ua == ub
	case aInt && bUint:
		return ia >= 0 && uint64(ia) == ub
	case aUint && bInt:
		return ib >= 0 && uint64(ib) == ua
	}
	return Float(a) == Float(b)
}

func asInt(v interface{}) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	}
	return 0, false
}

func asUint(v interface{}) (uint64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), true
	}
	return 0, false
}

// Float converts any number kind to float64. Non-numbers convert to NaN.
func Float(v interface{}) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return math.NaN()
}
