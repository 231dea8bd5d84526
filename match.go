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
	"reflect"

	"github.com/wdamron/data/internal/plist"
)

// Handler receives the subject of a match.
type Handler func(value interface{}) interface{}

type matchCase struct {
	target  Constructor
	handler Handler
}

// Matcher is a persistent dispatch table bound to one subject. With and Default
// return successors; a Matcher is never modified after creation, so a partially
// built Matcher may be extended from several places independently.
type Matcher struct {
	value interface{}
	cases plist.List
}

// CompleteMatch is a Matcher closed by a catch-all case. It can only be run.
type CompleteMatch struct {
	value interface{}
	cases plist.List
}

// Match starts a match expression over value.
//
//	s, err := data.Match(v).
//		With(Circle, func(v interface{}) interface{} { return "circle" }).
//		With(Square, func(v interface{}) interface{} { return "square" }).
//		Run()
func Match(value interface{}) *Matcher {
	return &Matcher{value: value, cases: plist.Empty}
}

// With returns a Matcher which additionally dispatches values accepted by target
// to handler. Cases are tried in the order they were added. Adding a target
// which is already present replaces its handler and keeps its position.
func (m *Matcher) With(target Constructor, handler Handler) *Matcher {
	return &Matcher{value: m.value, cases: withCase(m.cases, target, handler)}
}

// Default closes the match with a catch-all case, added last.
func (m *Matcher) Default(handler Handler) *CompleteMatch {
	return &CompleteMatch{value: m.value, cases: withCase(m.cases, Unknown(), handler)}
}

// Len returns the number of cases.
func (m *Matcher) Len() int { return m.cases.Len() }

// Remaining returns the members of u which no case targets yet. A case
// targeting Unknown covers every member.
func (m *Matcher) Remaining(u *UnionType) []Constructor {
	if m.cases.IndexOf(func(x interface{}) bool { return sameConstructor(x.(matchCase).target, Unknown()) }) >= 0 {
		return nil
	}
	var out []Constructor
	for _, member := range u.Members() {
		handled := m.cases.IndexOf(func(x interface{}) bool {
			return sameConstructor(x.(matchCase).target, member)
		}) >= 0
		if !handled {
			out = append(out, member)
		}
	}
	return out
}

// Exhaustive reports whether every member of u has a case.
func (m *Matcher) Exhaustive(u *UnionType) bool { return len(m.Remaining(u)) == 0 }

// Run calls the handler of the first case whose target accepts the subject.
// It returns an *IncompleteMatchError if no case does.
func (m *Matcher) Run() (interface{}, error) { return run(m.value, m.cases) }

// MustRun is like Run but panics on an incomplete match.
func (m *Matcher) MustRun() interface{} { return mustRun(m.value, m.cases) }

// Run calls the handler of the first case whose target accepts the subject.
func (m *CompleteMatch) Run() (interface{}, error) { return run(m.value, m.cases) }

// MustRun is like Run without the error result; the catch-all accepts every subject.
func (m *CompleteMatch) MustRun() interface{} { return mustRun(m.value, m.cases) }

func withCase(cases plist.List, target Constructor, handler Handler) plist.List {
	c := matchCase{target: target, handler: handler}
	if i := cases.IndexOf(func(x interface{}) bool { return sameConstructor(x.(matchCase).target, target) }); i >= 0 {
		return cases.Set(i, c)
	}
	return cases.Append(c)
}

func run(value interface{}, cases plist.List) (interface{}, error) {
	var (
		found  bool
		result interface{}
	)
	cases.Range(func(_ int, x interface{}) bool {
		c := x.(matchCase)
		if !c.target.Guard(value) {
			return true
		}
		if sameConstructor(c.target, unknownType) {
			if e := logger.Debug(); e.Enabled() {
				e.Str("value", formatValue(value)).Msg("match: resolved by catch-all")
			}
		}
		found, result = true, c.handler(value)
		return false
	})
	if !found {
		return nil, &IncompleteMatchError{Value: value}
	}
	return result, nil
}

func mustRun(value interface{}, cases plist.List) interface{} {
	v, err := run(value, cases)
	if err != nil {
		panic(err)
	}
	return v
}

// sameConstructor compares constructors by identity. Constructors of
// non-comparable dynamic types are never the same.
func sameConstructor(a, b Constructor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	return ta == tb && ta.Comparable() && a == b
}
