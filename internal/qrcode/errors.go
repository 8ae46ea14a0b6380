/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

import "errors"

// Sentinel errors returned by Encode and its helpers. Callers should
// use errors.Is to test for these, since they are frequently wrapped
// with additional context via fmt.Errorf("...: %w", err).
var (
	// ErrEmptyInput is returned when the input text has zero characters.
	ErrEmptyInput = errors.New("qrcode: empty input")

	// ErrInputTooLarge is returned when the computed version would
	// exceed 40 at the requested error correction level.
	ErrInputTooLarge = errors.New("qrcode: input too large for version 40")

	// ErrInvalidMinVersion is returned when a requested minimum version
	// falls outside [1, 40].
	ErrInvalidMinVersion = errors.New("qrcode: invalid minimum version")

	// ErrInvalidPadBits is a programming-bug indicator: pushBits was
	// called with n > 8 in the narrow bit-stream variant.
	ErrInvalidPadBits = errors.New("qrcode: invalid bit count for push_bits")

	// ErrEncodingFailure indicates the Kanji segment encoder found a
	// character that does not round-trip through Shift-JIS, despite the
	// planner having classified it as Kanji-eligible. This signals a
	// mismatch between the planner's oracle and the encoder's and is
	// always a bug, not a user error.
	ErrEncodingFailure = errors.New("qrcode: internal encoding failure")
)
