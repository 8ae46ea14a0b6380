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

func TestIsKanjiEligible(t *testing.T) {
	assert.True(t, isKanjiEligible('茗'))
	assert.False(t, isKanjiEligible('A'))
	assert.False(t, isKanjiEligible('1'))
}

func TestShiftJISPairFitsThirteenBits(t *testing.T) {
	v, err := shiftJISPair('茗')
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0)
	assert.Less(t, v, 1<<13)
}

func TestShiftJISPairRejectsNonKanji(t *testing.T) {
	_, err := shiftJISPair('A')
	assert.ErrorIs(t, err, ErrEncodingFailure)
}

// Scenario 5: "茗" alone encodes at version 1 as the Kanji mode
// indicator, an 8-bit count of 1, and its 13-bit Shift-JIS payload.
func TestEncodeKanjiSingleCharacter(t *testing.T) {
	stream := newBitStream()
	require.NoError(t, encodeKanji(stream, []rune("茗"), 1))

	bytes, bits := stream.consume()
	assert.Equal(t, 4+8+13, bits) // mode + V1 kanji char-count (8 bits) + 13-bit payload.

	full := 0
	for i := 0; i < bits; i++ {
		byteIdx, bitIdx := i/8, 7-i%8
		full <<= 1
		full |= int((bytes[byteIdx] >> uint(bitIdx)) & 1)
	}

	wantPayload, err := shiftJISPair('茗')
	require.NoError(t, err)
	want := int(Kanji)<<(8+13) | 1<<13 | wantPayload
	assert.Equal(t, want, full)
}

func TestPlanSegmentsChoosesKanjiForEligibleCharacter(t *testing.T) {
	segs := planSegments([]rune("茗"), 0)
	require.Len(t, segs, 1)
	assert.Equal(t, Kanji, segs[0].mode)
}
