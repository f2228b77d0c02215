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

// Signed fields ride on the unsigned core: a push stores the low width
// bits of the two's-complement pattern, a pop reconstructs the value by
// sign-extending from bit width-1.

// PushInt appends a signed field of the given width. Returns
// ErrValueTooWide when v is outside [-2^(width-1), 2^(width-1)-1], the
// range representable in width bits as two's complement. A zero width
// pushes nothing and always succeeds.
func (r *Row[T]) PushInt(v int64, width uint) error {
	if width == 0 {
		return nil
	}
	if width < 64 {
		if min := int64(-1) << (width - 1); v < min || v > -min-1 {
			return fmt.Errorf("%w: %d does not fit in %d bits as two's complement", ErrValueTooWide, v, width)
		}
	}
	return r.Push(T(uint64(v))&mask[T](width), width)
}

// PopInt removes the width least significant occupied bits and returns
// them sign-extended from bit width-1.
func (r *Row[T]) PopInt(width uint) (int64, error) {
	v, err := r.Pop(width)
	if err != nil || width == 0 {
		return 0, err
	}
	return signExtend(uint64(v), width), nil
}

// PopTopInt removes the width most significant occupied bits and returns
// them sign-extended from bit width-1.
func (r *Row[T]) PopTopInt(width uint) (int64, error) {
	v, err := r.PopTop(width)
	if err != nil || width == 0 {
		return 0, err
	}
	return signExtend(uint64(v), width), nil
}

// signExtend interprets the low width bits of pattern as a two's
// complement value. width must be in [1, 64].
func signExtend(pattern uint64, width uint) int64 {
	shift := 64 - width
	return int64(pattern<<shift) >> shift
}
