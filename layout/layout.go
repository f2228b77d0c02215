// Copyright 2026 go-bitrow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package layout describes bit-packed header rows as ordered, named
// fields, loadable from YAML. A Layout drives a bitrow container through
// a whole row at once: Pack pushes every field in declaration order,
// Unpack pops them back.
//
// A layout file looks like:
//
//	name: ipv4-first-row
//	word: 32
//	fields:
//	  - {name: ihl, width: 4}
//	  - {name: version, width: 4}
//	  - {name: tos, width: 8}
//	  - {name: length, width: 16}
package layout

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bitrow/go-bitrow/bitrow"
)

// Field is one named sub-range of bits within a row.
type Field struct {
	Name   string `yaml:"name"`
	Width  uint   `yaml:"width"`
	Signed bool   `yaml:"signed,omitempty"`
}

// Layout is an ordered list of fields packed into one word. Field zero
// occupies the least significant bits; each later field sits at the
// offset equal to the sum of the widths before it.
type Layout struct {
	Name   string  `yaml:"name,omitempty"`
	Word   uint    `yaml:"word"`
	Fields []Field `yaml:"fields"`
}

// Value is one unpacked field. Bits is the raw pattern; Int is the
// sign-extended value for signed fields and int64(Bits) otherwise.
type Value struct {
	Name   string
	Width  uint
	Signed bool
	Bits   uint64
	Int    int64
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a YAML layout from r.
func Load(r io.Reader) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return Parse(data)
}

// Validate checks the layout's word size, field names and widths.
func (l *Layout) Validate() error {
	switch l.Word {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("layout %q: word must be 8, 16, 32 or 64, got %d", l.Name, l.Word)
	}
	if len(l.Fields) == 0 {
		return fmt.Errorf("layout %q: no fields", l.Name)
	}
	seen := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		if f.Name == "" {
			return fmt.Errorf("layout %q: field with empty name", l.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("layout %q: duplicate field %q", l.Name, f.Name)
		}
		seen[f.Name] = true
		if f.Width == 0 {
			return fmt.Errorf("layout %q: field %q has zero width", l.Name, f.Name)
		}
	}
	if total := l.TotalWidth(); total > l.Word {
		return fmt.Errorf("layout %q: fields need %d bits, word has %d", l.Name, total, l.Word)
	}
	return nil
}

// TotalWidth returns the sum of the field widths.
func (l *Layout) TotalWidth() uint {
	var total uint
	for _, f := range l.Fields {
		total += f.Width
	}
	return total
}

// Offset returns the bit offset of the named field, for callers that
// need the absolute position (diagrams, documentation).
func (l *Layout) Offset(name string) (uint, bool) {
	var off uint
	for _, f := range l.Fields {
		if f.Name == name {
			return off, true
		}
		off += f.Width
	}
	return 0, false
}

// Pack pushes every field in declaration order and returns the packed
// word. values must name each field exactly once; signed fields take the
// two's-complement pattern of their int64 value.
func (l *Layout) Pack(values map[string]uint64) (uint64, error) {
	known := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		known[f.Name] = true
	}
	for name := range values {
		if !known[name] {
			return 0, fmt.Errorf("layout %q: unknown field %q", l.Name, name)
		}
	}

	var r bitrow.Row[uint64]
	for _, f := range l.Fields {
		v, ok := values[f.Name]
		if !ok {
			return 0, fmt.Errorf("layout %q: missing value for field %q", l.Name, f.Name)
		}
		var err error
		if f.Signed {
			err = r.PushInt(int64(v), f.Width)
		} else {
			err = r.Push(v, f.Width)
		}
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return r.Raw(), nil
}

// Unpack splits a packed word back into its fields, in declaration
// order. Bits above the layout's total width are ignored.
func (l *Layout) Unpack(word uint64) ([]Value, error) {
	r, err := bitrow.FromRaw(word, l.TotalWidth())
	if err != nil {
		return nil, err
	}
	values := make([]Value, 0, len(l.Fields))
	for _, f := range l.Fields {
		v := Value{Name: f.Name, Width: f.Width, Signed: f.Signed}
		if f.Signed {
			iv, err := r.PopInt(f.Width)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			v.Int = iv
			v.Bits = uint64(iv) & (uint64(1)<<f.Width - 1)
		} else {
			bv, err := r.Pop(f.Width)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			v.Bits = bv
			v.Int = int64(bv)
		}
		values = append(values, v)
	}
	return values, nil
}
