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

// GF(2^8) under the QR standard's primitive polynomial 0x11D
// (x^8 + x^4 + x^3 + x^2 + 1), with generator alpha = 2.
//
// exp and log are precomputed once at package initialization so
// rsEncode's polynomial division never falls back to the slow
// russian-peasant multiply. exp is doubled in length
// (exp[i+255] = exp[i]) so that exp[log[a]+log[b]] never needs a
// modulo reduction. Using a variable initializer (rather than an init
// func) lets other package-level initializers depend on the tables.
var gfExp, gfLog = computeGFTables()

func computeGFTables() ([512]byte, [256]byte) {
	var exp [512]byte
	var log [256]byte
	x := byte(1)
	for i := 0; i < 255; i++ {
		exp[i] = x
		log[x] = byte(i)
		x = gfMulNoTable(x, 2)
	}
	for i := 0; i < 255; i++ {
		exp[i+255] = exp[i]
	}
	return exp, log
}

// gfMulNoTable multiplies two field elements by repeated doubling,
// reducing modulo the primitive polynomial on overflow. Used only to
// bootstrap the exp/log tables above.
func gfMulNoTable(a, b byte) byte {
	var res byte
	for b != 0 {
		if b&1 != 0 {
			res ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= 0x1D
		}
		b >>= 1
	}
	return res
}

// gfMul multiplies two field elements using the precomputed tables.
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+int(gfLog[b])]
}
