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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 */

// Package qrcode implements the core QR Code symbol encoder: segment
// planning, segment encoding, Reed-Solomon error correction, matrix
// placement, masking, and format/version information. It is a pure,
// single-threaded transform from text to a BitMatrix; it does not
// read files or render images.
package qrcode

import "fmt"

// Version is a QR Code symbol version, in the range [1, 40].
type Version int

// MinVersion and MaxVersion bound the legal Version range.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// Size returns the side length, in modules, of a symbol of this version.
func (v Version) Size() int {
	return 21 + 4*(int(v)-1)
}

// indicatorTier returns which column of the character-count-indicator
// tables (V1-9, V10-26, V27-40) applies to this version.
func (v Version) indicatorTier() int {
	switch {
	case v <= 9:
		return 0
	case v <= 26:
		return 1
	default:
		return 2
	}
}

// ECC is the error correction level used in a QR Code symbol.
type ECC int8

// ECC levels, in the order the QR standard numbers them for boosting.
const (
	Low      ECC = iota // recovers ~7% of codewords
	Medium              // recovers ~15% of codewords
	Quartile            // recovers ~25% of codewords
	High                // recovers ~30% of codewords
)

// formatBits returns the 2-bit ECC indicator used in format information.
func (e ECC) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown ECC level")
	}
}

func (e ECC) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return fmt.Sprintf("ECC(%d)", int8(e))
	}
}

// Mode is the encoding mode of a segment.
type Mode int8

// The four data modes and the ECI control mode. Bit patterns match the
// QR standard's mode indicator field.
const (
	Numeric      Mode = 0x1
	Alphanumeric Mode = 0x2
	Byte         Mode = 0x4
	Kanji        Mode = 0x8
	eciMode      Mode = 0x7
)

// numCharCountBits returns the width, in bits, of the character-count
// indicator for this mode at the given version.
func (m Mode) numCharCountBits(v Version) int {
	tier := v.indicatorTier()
	switch m {
	case Numeric:
		return [3]int{10, 12, 14}[tier]
	case Alphanumeric:
		return [3]int{9, 11, 13}[tier]
	case Byte:
		return [3]int{8, 16, 16}[tier]
	case Kanji:
		return [3]int{8, 10, 12}[tier]
	case eciMode:
		return 0
	default:
		panic("unknown mode")
	}
}

// Mask selects one of the eight data-masking patterns, or autoMask to
// request automatic penalty-minimizing selection.
type Mask int8

const autoMask Mask = -1

// module is the state of a single BitMatrix cell: 0 (light) or 1 (dark).
type module uint8

// BitMatrix is the S×S grid of modules that make up a finished QR Code
// symbol, plus the parallel reserved mask that distinguishes function
// modules (finder/separator/timing/alignment/format/version/dark
// module) from data modules.
type BitMatrix struct {
	Size     int
	modules  [][]module
	reserved [][]bool
}

func newBitMatrix(size int) *BitMatrix {
	m := &BitMatrix{
		Size:     size,
		modules:  make([][]module, size),
		reserved: make([][]bool, size),
	}
	for i := range m.modules {
		m.modules[i] = make([]module, size)
		m.reserved[i] = make([]bool, size)
	}
	return m
}

// Get reports whether the module at (row, col) is dark.
func (m *BitMatrix) Get(row, col int) bool {
	return m.modules[row][col] == 1
}

func (m *BitMatrix) setFunction(row, col int, dark bool) {
	m.modules[row][col] = bToModule(dark)
	m.reserved[row][col] = true
}

func (m *BitMatrix) isReserved(row, col int) bool {
	return m.reserved[row][col]
}

// Result is the outcome of a successful Encode call.
type Result struct {
	Version Version
	ECC     ECC
	Mask    Mask
	Size    int
	Matrix  *BitMatrix
}

func bToModule(b bool) module {
	if b {
		return 1
	}
	return 0
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
