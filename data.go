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

// data provides runtime validation and construction for algebraic data types.
//
// A Constructor describes one shape of dynamic Go value and offers three operations:
// Make (trusting construction), Guard (a pure structural predicate) and Parse
// (validating coercion). Constructors compose bottom-up into trees; composites
// delegate to their children depth-first.
//
//
// Supported Features:
//
//   * Primitives: String, Number, Boolean, Null (Nil), Unknown
//   * Literal constants and enumerated literal sets, with NaN-aware comparison
//   * Homogeneous arrays
//   * Open records with per-type identity and single-level derived types
//   * Ordered unions resolved by first matching guard
//   * Recursive shapes through lazily resolved constructors
//   * Persistent match expressions with exhaustiveness checks against unions
//   * JSON and YAML decoding straight into Parse
//
//
// Example:
//
//	Circle := data.NamedRecord("Circle", data.F("radius", data.Number()))
//	Square := data.NamedRecord("Square", data.F("side", data.Number()))
//	Shape := data.Union(Circle, Square)
//
//	v, err := data.ParseJSON(Shape, []byte(`{"side": 2}`)) // *data.Instance of Square
//	area, err := data.Match(v).
//		With(Circle, func(v interface{}) interface{} { r := v.(*data.Instance).Get("radius").(float64); return math.Pi * r * r }).
//		With(Square, func(v interface{}) interface{} { s := v.(*data.Instance).Get("side").(float64); return s * s }).
//		Run()
//
//
// Value model:
//
// Numbers are any Go integer or float kind. Null is the untyped nil interface.
// Sequences are Go slices and arrays. Objects are maps with string keys and record
// instances; a key missing from an object is absent, which is distinct from a nil value.
package data
