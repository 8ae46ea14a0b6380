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

import "fmt"

// Options configures Encode. The zero value selects error correction
// level L (the zero ECC value; Quartile is not applied by default),
// automatic version/mode selection, and the standards-conforming ECI
// heuristic.
type Options struct {
	ECC ECC // Zero value: Low.

	// MinVersion floors the chosen version; 0 means no floor (1).
	MinVersion Version

	// ForceByte short-circuits the segment planner and emits the whole
	// input as a single Byte-mode segment, suppressing ECI detection.
	ForceByte bool

	// LegacyECIHeuristic selects the Windows-1252 round-trip heuristic
	// for ECI detection instead of the standards-conforming
	// "any non-ASCII byte" rule.
	LegacyECIHeuristic bool
}

// Encode turns text into a masked, standards-conforming QR Code
// symbol. It is a pure function: identical (text, options) always
// yields a byte-identical Result.
func Encode(text string, opts Options) (*Result, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, ErrEmptyInput
	}

	minVersion := opts.MinVersion
	if minVersion == 0 {
		minVersion = MinVersion
	}
	if minVersion < MinVersion || minVersion > MaxVersion {
		return nil, ErrInvalidMinVersion
	}

	var segments []segment
	var eci bool
	var version Version

	if opts.ForceByte {
		segments = []segment{{mode: Byte, text: runes}}
		byteLen := byteLength(runes)
		// v1 assumes the tier0 (V1-9) 8-bit count indicator; if that
		// assumption holds (v1 <= 9) the 12-bit overhead was correct and
		// v1 is the answer. Otherwise the true indicator is 16 bits
		// (tier1/2, 20-bit overhead), which v2 already accounts for; v2
		// is never smaller than v1, so this never regresses the v1 <= 9
		// case.
		v1 := minVersionForBits(opts.ECC, 8*byteLen+12)
		v2 := minVersionForBits(opts.ECC, 8*byteLen+20)
		if v1 <= 9 {
			version = v1
		} else {
			version = v2
		}
	} else {
		segments, version, eci = planVersion(runes, opts.ECC, minVersion, opts.LegacyECIHeuristic)
	}

	if version > MaxVersion {
		return nil, fmt.Errorf("%w: requires version %d", ErrInputTooLarge, version)
	}
	if version < minVersion {
		version = minVersion
	}

	stream := newBitStream()
	if eci {
		if err := encodeECIHeader(stream); err != nil {
			return nil, err
		}
	}
	for _, seg := range segments {
		if err := encodeSegment(stream, seg, version); err != nil {
			return nil, err
		}
	}

	capacityBits := dataCapacityBits(version, opts.ECC)
	if stream.bitLength() > capacityBits {
		return nil, fmt.Errorf("%w: data length = %d bits, capacity = %d bits", ErrInputTooLarge, stream.bitLength(), capacityBits)
	}

	if err := terminateAndPad(stream, capacityBits); err != nil {
		return nil, err
	}

	dataBytes, bits := stream.consume()
	if bits != capacityBits || bits%8 != 0 {
		panic("qrcode: padded stream length mismatch")
	}

	codewords := addECCAndInterleave(dataBytes, version, opts.ECC)

	matrix := newBitMatrix(version.Size())
	drawFunctionPatterns(matrix, version)
	drawCodewords(matrix, version, codewords)
	chosenMask := applyBestMask(matrix, opts.ECC)

	return &Result{
		Version: version,
		ECC:     opts.ECC,
		Mask:    chosenMask,
		Size:    matrix.Size,
		Matrix:  matrix,
	}, nil
}

func containsByteSegment(segments []segment) bool {
	for _, s := range segments {
		if s.mode == Byte {
			return true
		}
	}
	return false
}

// byteSegmentRunes concatenates the characters of every Byte-mode
// segment, which is the text ECI detection runs over.
func byteSegmentRunes(segments []segment) []rune {
	var out []rune
	for _, s := range segments {
		if s.mode == Byte {
			out = append(out, s.text...)
		}
	}
	return out
}

// terminateAndPad appends the up-to-4-bit zero terminator (clipped to
// remaining capacity), zero-pads to the next byte boundary, then
// alternates 0xEC/0x11 pad bytes until the data capacity is filled.
func terminateAndPad(stream *bitStream, capacityBits int) error {
	remaining := capacityBits - stream.bitLength()
	termLen := minInt(4, remaining)
	if termLen > 0 {
		if err := stream.pushBits(0, uint8(termLen)); err != nil {
			return err
		}
	}

	if pad := (8 - stream.bitLength()%8) % 8; pad > 0 {
		if err := stream.pushBits(0, uint8(pad)); err != nil {
			return err
		}
	}

	padBytes := [2]byte{0xEC, 0x11}
	i := 0
	for stream.bitLength() < capacityBits {
		if err := stream.pushBits(int(padBytes[i%2]), 8); err != nil {
			return err
		}
		i++
	}
	return nil
}

// addECCAndInterleave splits data into the blocks prescribed for
// (version, ecc), computes each block's Reed-Solomon remainder, and
// interleaves data columns then ECC columns across blocks.
func addECCAndInterleave(data []byte, v Version, e ECC) []byte {
	blocks := blockLayout(v, e)

	type builtBlock struct {
		data []byte
		ecc  []byte
	}
	built := make([]builtBlock, len(blocks))
	offset := 0
	maxDataLen := 0
	for i, b := range blocks {
		d := data[offset : offset+b.dataLen]
		offset += b.dataLen
		built[i] = builtBlock{data: d, ecc: rsEncode(d, b.eccLen)}
		maxDataLen = maxInt(maxDataLen, b.dataLen)
	}

	result := make([]byte, 0, numRawDataModules[v]/8)
	for col := 0; col < maxDataLen; col++ {
		for _, b := range built {
			if col < len(b.data) {
				result = append(result, b.data[col])
			}
		}
	}
	eccLen := blocks[0].eccLen
	for col := 0; col < eccLen; col++ {
		for _, b := range built {
			result = append(result, b.ecc[col])
		}
	}
	return result
}
