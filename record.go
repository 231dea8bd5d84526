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
	"github.com/google/uuid"

	"github.com/wdamron/data/internal/plist"
	"github.com/wdamron/data/internal/value"
)

// Field pairs a field name with the constructor validating its value.
type Field struct {
	Name string
	Type Constructor
}

// F is shorthand for Field{name, c}.
func F(name string, c Constructor) Field { return Field{Name: name, Type: c} }

// RecordType describes a fixed-shape object. Each RecordType carries a unique
// identity; instances it creates are recognized by Parse without re-validation.
//
// The guard is open: keys beyond the declared fields are tolerated.
type RecordType struct {
	id     uuid.UUID
	name   string
	fields plist.List
	index  plist.Index
	base   *RecordType
}

// Record creates an anonymous record constructor from fields, in declaration order.
// A repeated field name keeps its first position and takes the last constructor.
func Record(fields ...Field) *RecordType { return NamedRecord("Record", fields...) }

// NamedRecord is like Record, with a display name used in diagnostics.
func NamedRecord(name string, fields ...Field) *RecordType {
	lb, ib := plist.NewBuilder(), plist.NewIndexBuilder()
	for _, f := range fields {
		if pos, ok := ib.Get(f.Name); ok {
			lb.Set(pos, f)
			continue
		}
		ib.Set(f.Name, lb.Len())
		lb.Append(f)
	}
	return &RecordType{id: uuid.New(), name: name, fields: lb.Build(), index: ib.Build()}
}

// Extend derives a record type with the same fields and a new identity. Instances
// of the derived type are instances of r as well, but two types derived from the
// same base never recognize each other's instances.
func (r *RecordType) Extend(name string) *RecordType {
	return &RecordType{id: uuid.New(), name: name, fields: r.fields, index: r.index, base: r}
}

func (r *RecordType) ID() uuid.UUID     { return r.id }
func (r *RecordType) Name() string      { return r.name }
func (r *RecordType) Base() *RecordType { return r.base }
func (r *RecordType) NumFields() int    { return r.fields.Len() }
func (r *RecordType) field(i int) Field { return r.fields.Get(i).(Field) }

// Definitions returns the declared fields in order.
func (r *RecordType) Definitions() []Field {
	out := make([]Field, 0, r.fields.Len())
	r.fields.Range(func(_ int, f interface{}) bool {
		out = append(out, f.(Field))
		return true
	})
	return out
}

// Properties returns the declared field names in order.
func (r *RecordType) Properties() []string {
	out := make([]string, 0, r.fields.Len())
	r.fields.Range(func(_ int, f interface{}) bool {
		out = append(out, f.(Field).Name)
		return true
	})
	return out
}

// Field returns the constructor declared for name.
func (r *RecordType) Field(name string) (Constructor, bool) {
	pos, ok := r.index.Get(name)
	if !ok {
		return nil, false
	}
	return r.field(pos).Type, true
}

// New creates an instance from the mapping values, copying each declared field
// present in values. Undeclared keys are ignored; values are not validated.
func (r *RecordType) New(values interface{}) *Instance { return r.instantiate(values) }

// Call is equivalent to New.
func (r *RecordType) Call(values interface{}) *Instance { return r.instantiate(values) }

func (r *RecordType) instantiate(values interface{}) *Instance {
	n := r.fields.Len()
	inst := &Instance{typ: r, values: make([]interface{}, n), present: make([]bool, n)}
	for i := 0; i < n; i++ {
		if v, ok := value.Lookup(values, r.field(i).Name); ok {
			inst.values[i], inst.present[i] = v, true
		}
	}
	return inst
}

// Make returns a new *Instance of r.
func (r *RecordType) Make(v interface{}) interface{} { return r.instantiate(v) }

func (r *RecordType) Guard(v interface{}) bool {
	if inst, ok := v.(*Instance); ok && !inst.valid() {
		return false
	}
	if !value.IsObject(v) {
		return false
	}
	ok := true
	r.fields.Range(func(_ int, x interface{}) bool {
		f := x.(Field)
		fv, present := value.Lookup(v, f.Name)
		ok = present && f.Type.Guard(fv)
		return ok
	})
	return ok
}

// IsInstance reports whether v was created by r or by a type derived from r.
func (r *RecordType) IsInstance(v interface{}) bool {
	inst, ok := v.(*Instance)
	if !ok || inst == nil {
		return false
	}
	for t := inst.typ; t != nil; t = t.base {
		if t == r {
			return true
		}
	}
	return false
}

func (r *RecordType) Parse(v interface{}) (interface{}, error) { return parse(v, r) }
