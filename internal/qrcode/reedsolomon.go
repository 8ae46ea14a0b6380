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

// reedSolomonDivisors caches the generator polynomial for each degree
// (number of ECC codewords) the static block-layout tables actually
// use. Built once during package initialization and read-only after,
// so concurrent Encode calls share it without locking.
var reedSolomonDivisors = computeDivisorTable()

func computeDivisorTable() map[int][]byte {
	table := make(map[int][]byte)
	for _, row := range eccCodeWordsPerBlock {
		for _, degree := range row[1:] {
			if _, ok := table[degree]; !ok {
				table[degree] = reedSolomonComputeDivisor(degree)
			}
		}
	}
	return table
}

func reedSolomonDivisor(degree int) []byte {
	if g, ok := reedSolomonDivisors[degree]; ok {
		return g
	}
	return reedSolomonComputeDivisor(degree)
}

// reedSolomonComputeDivisor builds the generator polynomial
// g(x) = product_{i=0..degree-1} (x - alpha^i) over GF(256).
// Coefficients are stored highest-to-lowest degree, omitting the
// always-1 leading term.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("reed-solomon: degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // x^0 coefficient of the monomial "1".

	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the running product by (x - alpha^i); alpha = 2.
		for j := 0; j < len(result); j++ {
			result[j] = gfMul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMul(root, 2)
	}

	return result
}

// rsEncode returns the t-byte Reed-Solomon remainder of data*x^t modulo
// the generator polynomial for t ECC codewords, computed by in-place
// polynomial long division.
func rsEncode(data []byte, t int) []byte {
	divisor := reedSolomonDivisor(t)
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := range result {
			result[i] ^= gfMul(divisor[i], factor)
		}
	}
	return result
}
