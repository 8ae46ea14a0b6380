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
	"strconv"
	"strings"
	"unicode/utf8"
)

// alphanumericCharset is the 45-character set usable in Alphanumeric
// mode, in the order the standard assigns them values 0..44.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// segment is a contiguous, mode-homogeneous slice of the input text,
// as chosen by the planner and realized by the encoder.
type segment struct {
	mode Mode
	text []rune
}

func isNumericRune(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumericRune(r rune) bool {
	return strings.ContainsRune(alphanumericCharset, r)
}

// byteLength returns the number of UTF-8 bytes the given run of
// characters occupies, which is what Byte mode's character-count
// indicator and bit cost are measured in.
func byteLength(text []rune) int {
	n := 0
	for _, r := range text {
		n += utf8.RuneLen(r)
	}
	return n
}

// numericBits, alphanumericBits, byteBits and kanjiBits compute the
// payload bit cost of a segment of the given extent, excluding the
// mode indicator and character-count indicator.
func numericBits(n int) int {
	switch n % 3 {
	case 1:
		return 10*(n/3) + 4
	case 2:
		return 10*(n/3) + 7
	default:
		return 10 * (n / 3)
	}
}

func alphanumericBits(n int) int {
	bits := 11 * (n / 2)
	if n%2 == 1 {
		bits += 6
	}
	return bits
}

func byteBits(byteLen int) int {
	return 8 * byteLen
}

func kanjiBits(n int) int {
	return 13 * n
}

// encodeSegment appends seg's mode indicator, character-count
// indicator (width depends on version), and payload to stream.
func encodeSegment(stream *bitStream, seg segment, version Version) error {
	switch seg.mode {
	case Numeric:
		return encodeNumeric(stream, seg.text, version)
	case Alphanumeric:
		return encodeAlphanumeric(stream, seg.text, version)
	case Byte:
		return encodeByte(stream, seg.text, version)
	case Kanji:
		return encodeKanji(stream, seg.text, version)
	default:
		panic("qrcode: unknown segment mode")
	}
}

func encodeNumeric(stream *bitStream, text []rune, version Version) error {
	if err := stream.pushBitsWide(int(Numeric), 4); err != nil {
		return err
	}
	if err := stream.pushBitsWide(len(text), Numeric.numCharCountBits(version)); err != nil {
		return err
	}

	for i := 0; i < len(text); i += 3 {
		end := minInt(i+3, len(text))
		n := end - i
		d, err := strconv.Atoi(string(text[i:end]))
		if err != nil {
			return ErrEncodingFailure
		}
		width := [4]int{0, 4, 7, 10}[n]
		if err := stream.pushBitsWide(d, width); err != nil {
			return err
		}
	}
	return nil
}

func encodeAlphanumeric(stream *bitStream, text []rune, version Version) error {
	if err := stream.pushBitsWide(int(Alphanumeric), 4); err != nil {
		return err
	}
	if err := stream.pushBitsWide(len(text), Alphanumeric.numCharCountBits(version)); err != nil {
		return err
	}

	i := 0
	for ; i+1 < len(text); i += 2 {
		c1 := strings.IndexRune(alphanumericCharset, text[i])
		c2 := strings.IndexRune(alphanumericCharset, text[i+1])
		if err := stream.pushBitsWide(c1*45+c2, 11); err != nil {
			return err
		}
	}
	if i < len(text) {
		c := strings.IndexRune(alphanumericCharset, text[i])
		if err := stream.pushBitsWide(c, 6); err != nil {
			return err
		}
	}
	return nil
}

func encodeByte(stream *bitStream, text []rune, version Version) error {
	data := []byte(string(text))

	if err := stream.pushBitsWide(int(Byte), 4); err != nil {
		return err
	}
	if err := stream.pushBitsWide(len(data), Byte.numCharCountBits(version)); err != nil {
		return err
	}
	for _, b := range data {
		if err := stream.pushBits(int(b), 8); err != nil {
			return err
		}
	}
	return nil
}

func encodeKanji(stream *bitStream, text []rune, version Version) error {
	if err := stream.pushBitsWide(int(Kanji), 4); err != nil {
		return err
	}
	if err := stream.pushBitsWide(len(text), Kanji.numCharCountBits(version)); err != nil {
		return err
	}
	for _, r := range text {
		v, err := shiftJISPair(r)
		if err != nil {
			return err
		}
		if err := stream.pushBitsWide(v, 13); err != nil {
			return err
		}
	}
	return nil
}

// encodeECIHeader appends the 12-bit ECI-UTF8 designator
// (0b0111 || 8-bit assignment 26) at the start of the stream.
func encodeECIHeader(stream *bitStream) error {
	if err := stream.pushBitsWide(int(eciMode), 4); err != nil {
		return err
	}
	return stream.pushBitsWide(eciUTF8AssignmentValue, 8)
}
