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

import "errors"

// Errors reported by row operations. Every failure is returned at the
// offending call; no operation truncates a value or retries. Returned
// errors wrap one of these sentinels, so callers match with errors.Is.
var (
	// ErrOverflow means a push would exceed the row's total capacity.
	ErrOverflow = errors.New("bitrow: push exceeds row capacity")

	// ErrValueTooWide means a pushed value has bits set at or above its
	// declared width. Accepting it would corrupt the adjacent field, so
	// the value is rejected rather than truncated.
	ErrValueTooWide = errors.New("bitrow: value wider than declared width")

	// ErrUnderflow means a pop requested more bits than are occupied.
	ErrUnderflow = errors.New("bitrow: pop exceeds occupied bits")

	// ErrOutOfRange means a raw construction declared a fill level beyond
	// the storage width.
	ErrOutOfRange = errors.New("bitrow: used bits exceed row width")
)
