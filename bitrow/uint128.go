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

import (
	"fmt"
	"math/bits"
)

// Uint128 is a 128-bit unsigned integer held as a hi/lo pair of words.
// It carries just the operations Row128 needs.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// U128 builds a Uint128 from two words.
func U128(hi, lo uint64) Uint128 { return Uint128{Hi: hi, Lo: lo} }

// U128From64 widens a single word.
func U128From64(lo uint64) Uint128 { return Uint128{Lo: lo} }

// IsZero reports whether u == 0. Cheaper than comparing against the zero
// struct because it compiles to a single or+test.
func (u Uint128) IsZero() bool { return u.Hi|u.Lo == 0 }

// And returns u & m.
func (u Uint128) And(m Uint128) Uint128 { return Uint128{u.Hi & m.Hi, u.Lo & m.Lo} }

// Or returns u | m.
func (u Uint128) Or(m Uint128) Uint128 { return Uint128{u.Hi | m.Hi, u.Lo | m.Lo} }

// AndNot returns u &^ m.
func (u Uint128) AndNot(m Uint128) Uint128 { return Uint128{u.Hi &^ m.Hi, u.Lo &^ m.Lo} }

// Shl returns u << n. Any n of 128 or more yields zero.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	case n < 128:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		return Uint128{}
	}
}

// Shr returns u >> n. Any n of 128 or more yields zero.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	case n < 128:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{}
	}
}

// Len returns the minimum number of bits required to represent u; the
// result is 0 for u == 0.
func (u Uint128) Len() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

// String formats u in hexadecimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("%#x", u.Lo)
	}
	return fmt.Sprintf("%#x%016x", u.Hi, u.Lo)
}

// mask128 returns a value with the low width bits set, for width in
// [0, 128]; larger widths saturate to all ones.
func mask128(width uint) Uint128 {
	switch {
	case width == 0:
		return Uint128{}
	case width < 64:
		return Uint128{Lo: 1<<width - 1}
	case width == 64:
		return Uint128{Lo: ^uint64(0)}
	case width < 128:
		return Uint128{Hi: 1<<(width-64) - 1, Lo: ^uint64(0)}
	default:
		return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	}
}
