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

package render

import (
	"strings"

	"github.com/sparrowqr/qrencode/internal/qrcode"
)

// ToTerminalString renders result as two-characters-per-module block
// art, with the standard quiet zone, suitable for printing to a
// monospace terminal.
func ToTerminalString(result *qrcode.Result) string {
	var sb strings.Builder

	for y := -quietZone; y < result.Size+quietZone; y++ {
		for x := -quietZone; x < result.Size+quietZone; x++ {
			c := ' '
			if y >= 0 && y < result.Size && x >= 0 && x < result.Size && result.Matrix.Get(y, x) {
				c = '█'
			}
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
