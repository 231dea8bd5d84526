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
	"bytes"
	"encoding/json"
	"strings"
)

// Instance is a record value created by a RecordType. Fields are kept in the
// record's declaration order. A field missing from the input stays absent.
//
// Instances are plain mutable data; concurrent mutation needs external locking.
type Instance struct {
	typ     *RecordType
	values  []interface{}
	present []bool
}

// valid reports whether inst was created by a record type. A nil or zero
// Instance has no fields.
func (inst *Instance) valid() bool { return inst != nil && inst.typ != nil }

// Type returns the record type which created the instance.
func (inst *Instance) Type() *RecordType {
	if inst == nil {
		return nil
	}
	return inst.typ
}

// Definitions returns the declared fields of the instance's record type.
func (inst *Instance) Definitions() []Field {
	if !inst.valid() {
		return nil
	}
	return inst.typ.Definitions()
}

// Lookup returns the value of a present field.
func (inst *Instance) Lookup(key string) (interface{}, bool) {
	if !inst.valid() {
		return nil, false
	}
	pos, ok := inst.typ.index.Get(key)
	if !ok || !inst.present[pos] {
		return nil, false
	}
	return inst.values[pos], true
}

// Get returns the value of a field, or nil when the field is absent.
func (inst *Instance) Get(key string) interface{} {
	v, _ := inst.Lookup(key)
	return v
}

// Has reports whether the field is present.
func (inst *Instance) Has(key string) bool {
	_, ok := inst.Lookup(key)
	return ok
}

// Set assigns a declared field. It returns false if key is not declared.
// The value is not validated.
func (inst *Instance) Set(key string, v interface{}) bool {
	if !inst.valid() {
		return false
	}
	pos, ok := inst.typ.index.Get(key)
	if !ok {
		return false
	}
	inst.values[pos], inst.present[pos] = v, true
	return true
}

// Keys returns the names of present fields in declaration order.
func (inst *Instance) Keys() []string {
	if !inst.valid() {
		return nil
	}
	keys := make([]string, 0, len(inst.values))
	for i, ok := range inst.present {
		if ok {
			keys = append(keys, inst.typ.field(i).Name)
		}
	}
	return keys
}

// Map copies the present fields into a plain map.
func (inst *Instance) Map() map[string]interface{} {
	if !inst.valid() {
		return map[string]interface{}{}
	}
	m := make(map[string]interface{}, len(inst.values))
	for i, ok := range inst.present {
		if ok {
			m[inst.typ.field(i).Name] = inst.values[i]
		}
	}
	return m
}

// MarshalJSON encodes present fields as a JSON object in declaration order.
func (inst *Instance) MarshalJSON() ([]byte, error) {
	if !inst.valid() {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for i, ok := range inst.present {
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(inst.typ.field(i).Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(inst.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (inst *Instance) String() string {
	if inst == nil {
		return "<nil>"
	}
	if inst.typ == nil {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString(inst.typ.name)
	sb.WriteByte('{')
	first := true
	for i, ok := range inst.present {
		if !ok {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(inst.typ.field(i).Name)
		sb.WriteString(": ")
		sb.WriteString(formatValue(inst.values[i]))
	}
	sb.WriteByte('}')
	return sb.String()
}
