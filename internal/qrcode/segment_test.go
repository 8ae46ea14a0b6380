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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericBits(t *testing.T) {
	assert.Equal(t, 0, numericBits(0))
	assert.Equal(t, 4, numericBits(1))
	assert.Equal(t, 7, numericBits(2))
	assert.Equal(t, 10, numericBits(3))
	assert.Equal(t, 17, numericBits(5))
}

func TestAlphanumericBits(t *testing.T) {
	assert.Equal(t, 0, alphanumericBits(0))
	assert.Equal(t, 6, alphanumericBits(1))
	assert.Equal(t, 11, alphanumericBits(2))
	assert.Equal(t, 17, alphanumericBits(3))
}

// Scenario 3: "A" at ECC=L encodes to the 6-bit payload 001010.
func TestEncodeAlphanumericSingleCharacter(t *testing.T) {
	s := newBitStream()
	require.NoError(t, encodeAlphanumeric(s, []rune("A"), 1))

	bytes, bits := s.consume()
	assert.Equal(t, 4+9+6, bits) // mode + V1 char-count (9 bits) + payload.

	// Mode indicator 0010, count indicator 000000001, payload 001010.
	full := ""
	for i := 0; i < bits; i++ {
		byteIdx, bitIdx := i/8, 7-i%8
		if (bytes[byteIdx]>>uint(bitIdx))&1 == 1 {
			full += "1"
		} else {
			full += "0"
		}
	}
	assert.Equal(t, "0010"+"000000001"+"001010", full)
}

// Scenario 2: "12345" at ECC=Q: count indicator 0000000101, payload
// splits into the 10-bit group "123" (0001111011) and the 7-bit group
// "45" (0101101).
func TestEncodeNumericFiveDigits(t *testing.T) {
	s := newBitStream()
	require.NoError(t, encodeNumeric(s, []rune("12345"), 1))

	bytes, bits := s.consume()
	full := ""
	for i := 0; i < bits; i++ {
		byteIdx, bitIdx := i/8, 7-i%8
		if (bytes[byteIdx]>>uint(bitIdx))&1 == 1 {
			full += "1"
		} else {
			full += "0"
		}
	}
	assert.Equal(t, "0001"+"0000000101"+"0001111011"+"0101101", full)
}

func TestByteLengthCountsUTF8Bytes(t *testing.T) {
	assert.Equal(t, 3, byteLength([]rune("abc")))
	assert.Equal(t, 2, byteLength([]rune("é"))) // e acute, 2 UTF-8 bytes.
	assert.Equal(t, 3, byteLength([]rune("龗")))  // kanji, 3 UTF-8 bytes.
}

func TestIsAlphanumericRune(t *testing.T) {
	assert.True(t, isAlphanumericRune('A'))
	assert.True(t, isAlphanumericRune('9'))
	assert.True(t, isAlphanumericRune(' '))
	assert.False(t, isAlphanumericRune('a'))
	assert.False(t, isAlphanumericRune('@'))
}
