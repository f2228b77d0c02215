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

package bitrow

import "fmt"

// width128 is the capacity of a Row128.
const width128 = 128

// Row128 is a fixed-width bit container over a 128-bit word pair, for
// header rows wider than any native integer. The contract matches Row:
// occupied bits are right-aligned, bits at or above the fill level are
// zero, and the zero value is an empty row.
type Row128 struct {
	bits Uint128
	used uint
}

// FromRaw128 builds a 128-bit row from a word pair already in hand, with
// the low used bits considered occupied. Bits at or above used are
// cleared. Returns ErrOutOfRange when used exceeds 128.
func FromRaw128(bits Uint128, used uint) (Row128, error) {
	if used > width128 {
		return Row128{}, fmt.Errorf("%w: used %d, width %d", ErrOutOfRange, used, width128)
	}
	return Row128{bits: bits.And(mask128(used)), used: used}, nil
}

// Raw returns the packed word pair.
func (r Row128) Raw() Uint128 { return r.bits }

// Used returns the number of occupied bits.
func (r Row128) Used() uint { return r.used }

// Remaining returns the number of free bits.
func (r Row128) Remaining() uint { return width128 - r.used }

// Push appends the low width bits of value as the new most significant
// occupied bits. Same error rules as Row.Push.
func (r *Row128) Push(value Uint128, width uint) error {
	if width == 0 {
		return nil
	}
	// Subtraction form: the sum used+width could wrap for huge widths.
	if width > width128-r.used {
		return fmt.Errorf("%w: %d occupied + %d pushed > %d", ErrOverflow, r.used, width, width128)
	}
	if uint(value.Len()) > width {
		return fmt.Errorf("%w: %v does not fit in %d bits", ErrValueTooWide, value, width)
	}
	r.bits = r.bits.Or(value.Shl(r.used))
	r.used += width
	return nil
}

// Pop removes and returns the width least significant occupied bits,
// shifting the remaining occupied bits down.
func (r *Row128) Pop(width uint) (Uint128, error) {
	if width == 0 {
		return Uint128{}, nil
	}
	if width > r.used {
		return Uint128{}, fmt.Errorf("%w: %d requested, %d occupied", ErrUnderflow, width, r.used)
	}
	v := r.bits.And(mask128(width))
	r.bits = r.bits.Shr(width)
	r.used -= width
	return v, nil
}

// PopTop removes and returns the width most significant occupied bits,
// so the most recently pushed field comes off first.
func (r *Row128) PopTop(width uint) (Uint128, error) {
	if width == 0 {
		return Uint128{}, nil
	}
	if width > r.used {
		return Uint128{}, fmt.Errorf("%w: %d requested, %d occupied", ErrUnderflow, width, r.used)
	}
	r.used -= width
	v := r.bits.Shr(r.used)
	r.bits = r.bits.And(mask128(r.used))
	return v, nil
}

// PushBool pushes a single bit.
func (r *Row128) PushBool(v bool) error {
	var b Uint128
	if v {
		b.Lo = 1
	}
	return r.Push(b, 1)
}

// PopBool pops a single bit as a bool.
func (r *Row128) PopBool() (bool, error) {
	v, err := r.Pop(1)
	return !v.IsZero(), err
}

// PopTopBool pops the most recently pushed bit as a bool.
func (r *Row128) PopTopBool() (bool, error) {
	v, err := r.PopTop(1)
	return !v.IsZero(), err
}
