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
 * Modeled after https://github.com/nayuki/QR-Code-generator. Table
 * values reproduce ISO/IEC 18004 Tables 7, 9 and E.1.
 */

package qrcode

var (
	// eccCodeWordsPerBlock[ecc][version] is the number of ECC codewords
	// in each block. Index 0 is unused padding.
	eccCodeWordsPerBlock = [4][41]int{
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	// numErrorCorrectionBlocks[ecc][version] is the total number of
	// blocks (short plus long) the data is split into.
	numErrorCorrectionBlocks = [4][41]int{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}

	// numRawDataModules[version] is the number of bits available for
	// data+ECC codewords (including remainder bits) after subtracting
	// every function module.
	numRawDataModules [41]int

	// numDataCodewords[ecc][version] is the number of 8-bit data
	// codewords (ECC and remainder bits excluded).
	numDataCodewords [4][41]int

	// alignmentPatternPositions[version] lists the ascending alignment
	// centre coordinates used on both axes; empty for version 1.
	alignmentPatternPositions [41][]int
)

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("qrcode: numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodeWordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentPatternPositions[v] = computeAlignmentPatternPositions(Version(v))
	}
}

// computeAlignmentPatternPositions derives the ISO/IEC 18004 Annex E
// alignment centre coordinates for a version.
func computeAlignmentPatternPositions(v Version) []int {
	if v == 1 {
		return nil
	}

	numAlign := int(v)/7 + 2
	var step int
	if v == 32 {
		step = 26 // Special case called out by the standard.
	} else {
		step = (int(v)*4+numAlign*2+1)/(numAlign*2-2)*2
	}

	result := make([]int, numAlign)
	result[0] = 6
	pos := int(v)*4 + 17 - 7
	for i := len(result) - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

// dataCapacityBits returns the data-codeword capacity, in bits, for
// (version, ecc).
func dataCapacityBits(v Version, e ECC) int {
	return numDataCodewords[e][v] * 8
}

// minVersionForBits returns the smallest version whose capacity holds
// requiredBits at the given ECC level, or 41 to signal overflow.
func minVersionForBits(e ECC, requiredBits int) Version {
	for v := MinVersion; v <= MaxVersion; v++ {
		if dataCapacityBits(v, e) >= requiredBits {
			return v
		}
	}
	return Version(41)
}

// block describes one Reed-Solomon block's codeword layout.
type block struct {
	dataLen int
	eccLen  int
}

// blockLayout returns the ordered list of blocks (short blocks first,
// long blocks last) for (version, ecc), per ISO/IEC 18004 Table 9.
func blockLayout(v Version, e ECC) []block {
	numBlocks := numErrorCorrectionBlocks[e][v]
	eccLen := eccCodeWordsPerBlock[e][v]
	rawCodewords := numRawDataModules[v] / 8
	shortBlockDataLen := rawCodewords/numBlocks - eccLen
	numLongBlocks := rawCodewords % numBlocks

	blocks := make([]block, numBlocks)
	for i := 0; i < numBlocks; i++ {
		dataLen := shortBlockDataLen
		if i >= numBlocks-numLongBlocks {
			dataLen++
		}
		blocks[i] = block{dataLen: dataLen, eccLen: eccLen}
	}
	return blocks
}

// remainderBits returns the number of zero bits appended after the
// last interleaved codeword to exactly fill the data-module count.
func remainderBits(v Version) int {
	return numRawDataModules[v] % 8
}
