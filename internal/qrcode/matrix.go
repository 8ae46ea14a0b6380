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

// drawFunctionPatterns lays down every non-data module: timing
// patterns, the three finder patterns (with separators), alignment
// patterns, placeholder format bits (overwritten once a mask is
// chosen) that reserve the format region, and the version information
// for versions 7 and above.
func drawFunctionPatterns(m *BitMatrix, v Version) {
	size := m.Size

	for i := 0; i < size; i++ {
		m.setFunction(6, i, i%2 == 0)
		m.setFunction(i, 6, i%2 == 0)
	}

	drawFinderPattern(m, 3, 3)
	drawFinderPattern(m, size-4, 3)
	drawFinderPattern(m, 3, size-4)

	positions := alignmentPatternPositions[v]
	numAlign := len(positions)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0 {
				continue // Overlaps a finder corner.
			}
			drawAlignmentPattern(m, positions[j], positions[i])
		}
	}

	drawFormatBits(m, Low, 0) // Placeholder format bits, overwritten by masking.
	drawVersionBits(m, v)
}

// drawFinderPattern draws the 9x9 finder pattern (7x7 nested squares
// plus a one-module separator ring) centred at (cx, cy).
func drawFinderPattern(m *BitMatrix, cx, cy int) {
	size := m.Size
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= size || y < 0 || y >= size {
				continue
			}
			dist := maxInt(abs(dx), abs(dy))
			m.setFunction(y, x, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws the 5x5 nested-square alignment pattern
// centred at (cx, cy).
func drawAlignmentPattern(m *BitMatrix, cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.setFunction(cy+dy, cx+dx, maxInt(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawCodewords places the interleaved data+ECC codewords into the
// unreserved (non-function) modules in the standard zig-zag order:
// two-column strips scanned right to left, each strip alternating
// upward and downward traversal, skipping the timing column.
func drawCodewords(m *BitMatrix, v Version, data []byte) {
	size := m.Size
	bitIdx := 0
	totalBits := len(data) * 8

	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = size - 1 - vert
				} else {
					y = vert
				}

				if !m.isReserved(y, x) && bitIdx < totalBits {
					bit := (data[bitIdx>>3] >> (7 - uint(bitIdx&7))) & 1
					m.modules[y][x] = module(bit)
					bitIdx++
				}
				// Remaining unreserved modules (remainder bits) stay 0.
			}
		}
	}
}
