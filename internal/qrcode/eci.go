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

import "golang.org/x/text/encoding/charmap"

// eciUTF8AssignmentValue is the ECI assignment number for UTF-8. The
// emitted header is the 4-bit mode indicator 0b0111 followed by this
// value in 8 bits, declaring that subsequent byte-mode data is UTF-8.
const eciUTF8AssignmentValue = 26

// needsECI decides whether the given byte-mode segments require a
// leading ECI-26 (UTF-8) designator.
//
// The standards-conforming rule (the default) emits ECI whenever any
// byte-mode segment contains a non-ASCII code point. The legacy rule
// instead probes whether the text round-trips losslessly through
// Windows-1252 and only emits ECI when it does not; it exists for
// compatibility with older readers that assume cp1252 byte payloads,
// and is selected via Options.LegacyECIHeuristic.
func needsECI(text []rune, legacy bool) bool {
	if legacy {
		return !isWindows1252Representable(text)
	}
	for _, r := range text {
		if r > 0x7F {
			return true
		}
	}
	return false
}

// isWindows1252Representable reports whether every rune of text
// round-trips losslessly through Windows-1252 (cp1252).
func isWindows1252Representable(text []rune) bool {
	enc := charmap.Windows1252.NewEncoder()
	for _, r := range text {
		b, err := enc.String(string(r))
		if err != nil || len(b) != 1 {
			return false
		}
		dec, err := charmap.Windows1252.NewDecoder().Bytes([]byte(b))
		if err != nil || string(dec) != string(r) {
			return false
		}
	}
	return true
}
