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

import (
	"golang.org/x/text/encoding/japanese"
)

// isKanjiEligible reports whether r round-trips losslessly through
// Shift-JIS and falls in one of the two ranges the QR standard's
// Kanji mode can pack into 13 bits per character.
func isKanjiEligible(r rune) bool {
	encoded, err := japanese.ShiftJIS.NewEncoder().String(string(r))
	if err != nil || len(encoded) != 2 {
		return false
	}
	v := int(encoded[0])<<8 | int(encoded[1])
	return (v >= 0x8140 && v <= 0x9FFC) || (v >= 0xE040 && v <= 0xEBBF)
}

// shiftJISPair encodes a single rune already known to be Kanji-eligible
// into its 2-byte Shift-JIS representation, collapsed into the 13-bit
// QR Kanji code per ISO/IEC 18004 §7.4.6.
func shiftJISPair(r rune) (int, error) {
	encoded, err := japanese.ShiftJIS.NewEncoder().String(string(r))
	if err != nil || len(encoded) != 2 {
		return 0, ErrEncodingFailure
	}

	v := int(encoded[0])<<8 | int(encoded[1])
	if v <= 0x9FFC {
		v -= 0x8140
	} else {
		v -= 0xC140
	}
	return (v>>8)*0xC0 + (v & 0xFF), nil
}
