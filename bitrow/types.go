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

// Package bitrow provides fixed-width bit containers for packed protocol
// header rows.
//
// Network protocols commonly pack several narrow fields into one
// fixed-width header row. Each field has its own bit width, and its offset
// within the row is the sum of the widths of the fields before it. Keeping
// track of those cumulative offsets by hand is redundant once every field
// of the row is visited in order, so a Row tracks the fill level itself:
// callers push and pop fields and never compute an offset.
//
//	var r bitrow.Row[uint8]
//	r.Push(0b101, 3)
//	r.Push(0b11, 2)
//	// r.Raw() == 0b11101, r.Used() == 5
//
// When the widths are constants the checks, masks and shifts fold into a
// few branch-free instructions.
package bitrow

import "unsafe"

// Unsigned is a constraint for the storage types a Row can wrap.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is a constraint for signed integer types. Signed field values
// cross the Row boundary as int64; the constraint exists for callers
// converting their own typed fields.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Width returns the total bit width of the storage type T.
func Width[T Unsigned]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}
