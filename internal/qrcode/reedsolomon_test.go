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

func TestReedSolomonDivisorDegree(t *testing.T) {
	for _, degree := range []int{7, 10, 13, 17, 30} {
		g := reedSolomonComputeDivisor(degree)
		assert.Len(t, g, degree)
	}
}

func TestReedSolomonDivisorCached(t *testing.T) {
	a := reedSolomonDivisor(10)
	b := reedSolomonDivisor(10)
	assert.Equal(t, a, b)
}

// rsEncode(data, t) followed by syndrome evaluation at alpha^0..alpha^(t-1)
// must yield zero for every syndrome, since the codeword (data || remainder)
// is by construction a multiple of the generator polynomial.
func TestReedSolomonSyndromesZero(t *testing.T) {
	data := []byte("HELLO WORLD, THIS IS A TEST MESSAGE")
	for _, t_ := range []int{7, 10, 13, 17, 22, 30} {
		remainder := rsEncode(data, t_)
		codeword := append(append([]byte{}, data...), remainder...)

		for i := 0; i < t_; i++ {
			syndrome := evalPolynomial(codeword, gfExp[i%255])
			assert.Equalf(t, byte(0), syndrome, "syndrome at alpha^%d for t=%d", i, t_)
		}
	}
}

// evalPolynomial evaluates codeword (highest-degree coefficient first)
// at x using Horner's method over GF(256).
func evalPolynomial(codeword []byte, x byte) byte {
	var result byte
	for _, c := range codeword {
		result = gfMul(result, x) ^ c
	}
	return result
}

func TestReedSolomonRemainderLength(t *testing.T) {
	remainder := rsEncode([]byte{1, 2, 3, 4}, 10)
	assert.Len(t, remainder, 10)
}
