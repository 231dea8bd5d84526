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
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/wdamron/data/internal/value"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{visiting: make(map[Constructor]bool, 8)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.visiting {
		delete(p.visiting, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	visiting map[Constructor]bool
	sb       strings.Builder
}

// Describe returns a type expression for c, such as `{id: number, tags: string[]}`
// or `"on" | "off"`. A named record is prefixed by its name; a recursive reference
// is printed as the name of the record or lazy constructor it points back to.
func Describe(c Constructor) string {
	p := newTypePrinter()
	typeString(p, false, c)
	s := p.sb.String()
	p.Release()
	return s
}

// simple is set where a union must be parenthesized, e.g. as an array element.
func typeString(p *typePrinter, simple bool, c Constructor) {
	switch c := c.(type) {
	case nil:
		p.sb.WriteString("<nil>")

	case *PrimitiveType:
		p.sb.WriteString(c.name)

	case *LiteralType:
		p.sb.WriteString(literalString(c.value))

	case *EnumType:
		if simple && len(c.values) > 1 {
			p.sb.WriteByte('(')
		}
		for i, v := range c.values {
			if i > 0 {
				p.sb.WriteString(" | ")
			}
			p.sb.WriteString(literalString(v))
		}
		if simple && len(c.values) > 1 {
			p.sb.WriteByte(')')
		}

	case *ArrayType:
		typeString(p, true, c.elem)
		p.sb.WriteString("[]")

	case *RecordType:
		if p.visiting[c] {
			p.sb.WriteString(c.name)
			return
		}
		p.visiting[c] = true
		if c.name != "Record" {
			p.sb.WriteString(c.name)
		}
		p.sb.WriteByte('{')
		c.fields.Range(func(i int, x interface{}) bool {
			f := x.(Field)
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(f.Name)
			p.sb.WriteString(": ")
			typeString(p, false, f.Type)
			return true
		})
		p.sb.WriteByte('}')
		delete(p.visiting, c)

	case *UnionType:
		n := c.members.Len()
		if simple && n > 1 {
			p.sb.WriteByte('(')
		}
		c.members.Range(func(i int, m interface{}) bool {
			if i > 0 {
				p.sb.WriteString(" | ")
			}
			typeString(p, false, m.(Constructor))
			return true
		})
		if simple && n > 1 {
			p.sb.WriteByte(')')
		}

	case *LazyType:
		if p.visiting[c] {
			p.sb.WriteString(c.name)
			return
		}
		p.visiting[c] = true
		typeString(p, simple, c.Resolve())
		delete(p.visiting, c)

	default:
		p.sb.WriteString(c.Name())
	}
}

func literalString(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	}
	if value.IsNumber(v) {
		f := value.Float(v)
		switch {
		case math.IsNaN(f):
			return "NaN"
		case math.IsInf(f, 1):
			return "Infinity"
		case math.IsInf(f, -1):
			return "-Infinity"
		}
	}
	return fmt.Sprintf("%v", v)
}
