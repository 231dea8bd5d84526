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
	"fmt"
)

var (
	// ErrParse matches every *ParseError under errors.Is.
	ErrParse = errors.New("can not parse value")
	// ErrIncompleteMatch matches every *IncompleteMatchError under errors.Is.
	ErrIncompleteMatch = errors.New("unexpected incomplete match")
)

// ParseError is returned when a value is neither an instance of the target
// constructor nor accepted by its guard.
type ParseError struct {
	Value  interface{}
	Target string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("can not parse %s as %s", formatValue(e.Value), e.Target)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// IncompleteMatchError is returned by Run when no case accepts the subject.
type IncompleteMatchError struct {
	Value interface{}
}

func (e *IncompleteMatchError) Error() string {
	return "unexpected incomplete match for " + formatValue(e.Value)
}

func (e *IncompleteMatchError) Is(target error) bool { return target == ErrIncompleteMatch }

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case *Instance:
		return v.String()
	}
	return fmt.Sprintf("%v", v)
}
