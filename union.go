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
	"github.com/wdamron/data/internal/plist"
)

// UnionType accepts any value accepted by one of its members. Members are tried
// in declaration order and the first match wins.
type UnionType struct {
	members plist.List
}

// Union creates a constructor for the union of members.
func Union(members ...Constructor) *UnionType {
	b := plist.NewBuilder()
	for _, m := range members {
		b.Append(m)
	}
	return &UnionType{members: b.Build()}
}

// Members returns the member constructors in declaration order.
func (u *UnionType) Members() []Constructor {
	out := make([]Constructor, 0, u.members.Len())
	u.members.Range(func(_ int, m interface{}) bool {
		out = append(out, m.(Constructor))
		return true
	})
	return out
}

func (u *UnionType) Name() string { return "union" }

// first returns the first member whose guard accepts v, or nil.
func (u *UnionType) first(v interface{}) Constructor {
	var found Constructor
	u.members.Range(func(_ int, m interface{}) bool {
		if c := m.(Constructor); c.Guard(v) {
			found = c
			return false
		}
		return true
	})
	return found
}

func (u *UnionType) Guard(v interface{}) bool { return u.first(v) != nil }

// Make delegates to the Make of the first member accepting v. When no member
// accepts v, v is returned unchanged.
func (u *UnionType) Make(v interface{}) interface{} {
	if c := u.first(v); c != nil {
		return c.Make(v)
	}
	if e := logger.Debug(); e.Enabled() {
		e.Str("union", Describe(u)).
			Str("value", formatValue(v)).
			Msg("union make: no member matched, passing value through")
	}
	return v
}

func (u *UnionType) Parse(v interface{}) (interface{}, error) { return parse(v, u) }
