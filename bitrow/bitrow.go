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

// Row is a fixed-width bit container over an unsigned storage type.
//
// Occupied bits are right-aligned: the first pushed field sits in the
// least significant bits, and each subsequent push lands at the offset
// equal to the sum of the widths pushed before it. Bits at or above the
// fill level are always zero. The zero value is an empty row.
//
// A Row is a plain value with no shared state; copies are independent.
// Sharing one instance between goroutines needs external synchronization.
type Row[T Unsigned] struct {
	bits T
	used uint
}

// FromRaw builds a row from a packed word already in hand, typically one
// received from the wire, with the low used bits considered occupied.
// Bits at or above used are cleared, not reported as an error. Returns
// ErrOutOfRange when used exceeds the storage width.
func FromRaw[T Unsigned](bits T, used uint) (Row[T], error) {
	if w := Width[T](); used > w {
		return Row[T]{}, fmt.Errorf("%w: used %d, width %d", ErrOutOfRange, used, w)
	}
	return Row[T]{bits: bits & mask[T](used), used: used}, nil
}

// Raw returns the packed word. After a full sequence of pushes this is
// the value to hand to the serialization layer; byte-order conversion is
// the caller's concern.
func (r Row[T]) Raw() T { return r.bits }

// Used returns the number of occupied bits.
func (r Row[T]) Used() uint { return r.used }

// Remaining returns the number of free bits.
func (r Row[T]) Remaining() uint { return Width[T]() - r.used }

// Push appends the low width bits of value as the new most significant
// occupied bits. Returns ErrOverflow when the row cannot take width more
// bits, and ErrValueTooWide when value has bits set at or above width.
// A zero width pushes nothing and always succeeds.
func (r *Row[T]) Push(value T, width uint) error {
	if width == 0 {
		return nil
	}
	// Subtraction form: the sum used+width could wrap for huge widths.
	if w := Width[T](); width > w-r.used {
		return fmt.Errorf("%w: %d occupied + %d pushed > %d", ErrOverflow, r.used, width, w)
	}
	if value&^mask[T](width) != 0 {
		return fmt.Errorf("%w: %#x does not fit in %d bits", ErrValueTooWide, uint64(value), width)
	}
	r.bits |= value << r.used
	r.used += width
	return nil
}

// Pop removes and returns the width least significant occupied bits,
// shifting the remaining occupied bits down. Fields come back in the
// order they were pushed. Returns ErrUnderflow when fewer than width
// bits are occupied. A zero width returns 0 without touching the row.
func (r *Row[T]) Pop(width uint) (T, error) {
	if width == 0 {
		return 0, nil
	}
	if width > r.used {
		return 0, fmt.Errorf("%w: %d requested, %d occupied", ErrUnderflow, width, r.used)
	}
	v := r.bits & mask[T](width)
	r.bits >>= width
	r.used -= width
	return v, nil
}

// PopTop removes and returns the width most significant occupied bits,
// so the most recently pushed field comes off first. Returns ErrUnderflow
// when fewer than width bits are occupied. A zero width returns 0 without
// touching the row.
func (r *Row[T]) PopTop(width uint) (T, error) {
	if width == 0 {
		return 0, nil
	}
	if width > r.used {
		return 0, fmt.Errorf("%w: %d requested, %d occupied", ErrUnderflow, width, r.used)
	}
	r.used -= width
	v := r.bits >> r.used
	r.bits &= mask[T](r.used)
	return v, nil
}

// mask returns a value with the low width bits set. Shifting by the full
// storage width is well defined in Go: the shift yields zero and the
// subtraction wraps to all ones.
func mask[T Unsigned](width uint) T {
	return T(1)<<width - 1
}
