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

// Constructor is the capability bundle implementing one semantic type.
//
// Guard is a pure structural predicate and never panics. Make trusts its input and
// returns a canonical instance. Parse is the validating entry point.
type Constructor interface {
	Make(value interface{}) interface{}
	Guard(value interface{}) bool
	Parse(value interface{}) (interface{}, error)
	Name() string
}

// instanceChecker is implemented by constructors whose instances carry identity.
type instanceChecker interface {
	IsInstance(value interface{}) bool
}

func parse(value interface{}, c Constructor) (interface{}, error) {
	if ic, ok := c.(instanceChecker); ok && ic.IsInstance(value) {
		return value, nil
	}
	if c.Guard(value) {
		return c.Make(value), nil
	}
	return nil, &ParseError{Value: value, Target: c.Name()}
}

// Parse validates value against c. Values already tagged as instances of c are
// returned unchanged without re-validation.
func Parse(c Constructor, value interface{}) (interface{}, error) { return c.Parse(value) }

// MustParse is like Parse but panics if value does not satisfy c.
func MustParse(c Constructor, value interface{}) interface{} {
	v, err := c.Parse(value)
	if err != nil {
		panic(err)
	}
	return v
}

// As parses value with c and asserts the result to T.
func As[T any](c Constructor, value interface{}) (T, error) {
	var zero T
	v, err := c.Parse(value)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &ParseError{Value: v, Target: c.Name()}
	}
	return t, nil
}
