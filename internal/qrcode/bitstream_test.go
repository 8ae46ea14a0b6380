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

func TestBitStreamPushBits(t *testing.T) {
	s := newBitStream()

	require.NoError(t, s.pushBits(0, 0))
	assert.Equal(t, 0, s.bitLength())

	require.NoError(t, s.pushBits(1, 1))
	assert.Equal(t, 1, s.bitLength())
	bytes, bits := s.consume()
	assert.Equal(t, 1, bits)
	assert.Equal(t, []byte{0b10000000}, bytes)

	require.NoError(t, s.pushBits(0, 1))
	require.NoError(t, s.pushBits(5, 3))
	bytes, bits = s.consume()
	assert.Equal(t, 5, bits)
	assert.Equal(t, []byte{0b10101000}, bytes)

	require.NoError(t, s.pushBits(6, 3))
	bytes, bits = s.consume()
	assert.Equal(t, 8, bits)
	assert.Equal(t, []byte{0b10101110}, bytes)
}

func TestBitStreamPushBitsWide(t *testing.T) {
	s := newBitStream()
	require.NoError(t, s.pushBitsWide(0b0001111011, 10))
	require.NoError(t, s.pushBitsWide(0b0101100, 7))

	bytes, bits := s.consume()
	assert.Equal(t, 17, bits)
	assert.Equal(t, []byte{0b00011110, 0b11010110, 0b00000000}, bytes)
}

func TestBitStreamPushBitsRejectsOverflow(t *testing.T) {
	s := newBitStream()
	err := s.pushBits(0, 9)
	assert.ErrorIs(t, err, ErrInvalidPadBits)
}

func TestBitStreamByteAligned(t *testing.T) {
	s := newBitStream()
	require.NoError(t, s.pushBits(0xAB, 8))
	require.NoError(t, s.pushBits(0xCD, 8))
	bytes, bits := s.consume()
	assert.Equal(t, 16, bits)
	assert.Equal(t, []byte{0xAB, 0xCD}, bytes)
}
