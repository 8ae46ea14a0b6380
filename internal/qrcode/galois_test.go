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
)

func TestGFMulZero(t *testing.T) {
	assert.Equal(t, byte(0), gfMul(0, 200))
	assert.Equal(t, byte(0), gfMul(200, 0))
}

func TestGFMulIdentity(t *testing.T) {
	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(a), gfMul(byte(a), 1))
	}
}

func TestGFMulMatchesBootstrap(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			assert.Equal(t, gfMulNoTable(byte(a), byte(b)), gfMul(byte(a), byte(b)))
		}
	}
}

func TestGFExpLogRoundTrip(t *testing.T) {
	for i := 0; i < 255; i++ {
		assert.Equal(t, byte(i), gfLog[gfExp[i]])
	}
}

// The generator alpha = 2 must have multiplicative order 255 over GF(256).
func TestGFGeneratorOrder(t *testing.T) {
	assert.Equal(t, byte(1), gfExp[0])
	assert.Equal(t, byte(1), gfExp[255])
	for i := 1; i < 255; i++ {
		assert.NotEqual(t, byte(1), gfExp[i])
	}
}
