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

import "math"

// plannerModes enumerates the DP's mode axis in ascending tie-break order.
var plannerModes = [4]Mode{Numeric, Alphanumeric, Byte, Kanji}

func modeIndex(m Mode) int {
	switch m {
	case Numeric:
		return 0
	case Alphanumeric:
		return 1
	case Byte:
		return 2
	case Kanji:
		return 3
	default:
		panic("qrcode: unknown mode in planner")
	}
}

func isEligible(m Mode, r rune) bool {
	switch m {
	case Numeric:
		return isNumericRune(r)
	case Alphanumeric:
		return isAlphanumericRune(r)
	case Byte:
		return true
	case Kanji:
		return isKanjiEligible(r)
	default:
		return false
	}
}

// segmentBits returns the payload bit cost of a segment of mode m over
// all of text, excluding mode and character-count indicators.
func segmentBits(m Mode, text []rune) int {
	switch m {
	case Numeric:
		return numericBits(len(text))
	case Alphanumeric:
		return alphanumericBits(len(text))
	case Byte:
		return byteBits(byteLength(text))
	case Kanji:
		return kanjiBits(len(text))
	default:
		panic("qrcode: unknown mode in planner")
	}
}

// planStep is one entry of the DP backpointer chain: the segment
// [pos, nextPos) encoded in mode, followed by nextMode.
type planStep struct {
	nextPos  int
	nextMode int
}

// planSegments runs the minimum-cost mode-segmentation DP over text
// and returns the collapsed segment list. The switch cost charged when
// crossing into a new segment is the new segment's mode indicator (4
// bits) plus its character-count indicator at the given tier, so the
// DP's notion of "segment overhead" matches what a real symbol at that
// tier will actually pay. Since tier depends on the version the
// segmentation itself influences, planVersion re-runs this at each
// candidate tier and tightens.
func planSegments(text []rune, tier int) []segment {
	n := len(text)
	if n == 0 {
		return nil
	}

	const inf = math.MaxInt32
	tierVersion := tierRepresentative[tier]

	dp := make([][4]int, n+1)
	next := make([][4]planStep, n+1)
	for m := range dp[n] {
		dp[n][m] = 0
	}
	for idx := 0; idx <= n; idx++ {
		for m := 0; m < 4; m++ {
			if idx < n {
				dp[idx][m] = inf
			}
			next[idx][m] = planStep{nextPos: -1}
		}
	}

	for idx := n - 1; idx >= 0; idx-- {
		for _, mode := range plannerModes {
			mi := modeIndex(mode)
			if !isEligible(mode, text[idx]) {
				continue
			}

			maxRun := 0
			for idx+maxRun < n && isEligible(mode, text[idx+maxRun]) {
				maxRun++
			}

			for s := 1; s <= maxRun; s++ {
				cost := segmentBits(mode, text[idx:idx+s])

				// Try the no-switch continuation first so equal-cost
				// ties prefer staying in the current mode, then the
				// lower-numbered mode, matching plannerModes' order.
				tryNext := func(nextMode Mode) {
					ni := modeIndex(nextMode)
					switchCost := 0
					if mode != nextMode {
						switchCost = 4 + nextMode.numCharCountBits(tierVersion)
					}
					total := cost + switchCost + dp[idx+s][ni]
					if total < dp[idx][mi] {
						dp[idx][mi] = total
						next[idx][mi] = planStep{nextPos: idx + s, nextMode: ni}
					}
				}
				tryNext(mode)
				for _, nm := range plannerModes {
					if nm != mode {
						tryNext(nm)
					}
				}
			}
		}
	}

	startMode := 0
	for m := 1; m < 4; m++ {
		if dp[0][m] < dp[0][startMode] {
			startMode = m
		}
	}

	type rawStep struct {
		pos  int
		mode int
	}
	var chain []rawStep
	pos, mode := 0, startMode
	for pos < n {
		chain = append(chain, rawStep{pos: pos, mode: mode})
		step := next[pos][mode]
		if step.nextPos < 0 {
			break
		}
		pos, mode = step.nextPos, step.nextMode
	}

	segments := make([]segment, 0, len(chain))
	i := 0
	for i < len(chain) {
		j := i + 1
		for j < len(chain) && chain[j].mode == chain[i].mode {
			j++
		}
		end := n
		if j < len(chain) {
			end = chain[j].pos
		}
		segments = append(segments, segment{
			mode: plannerModes[chain[i].mode],
			text: text[chain[i].pos:end],
		})
		i = j
	}

	return segments
}

// tierRepresentative maps an indicator tier (0 = V1-9, 1 = V10-26,
// 2 = V27-40) to a version whose numCharCountBits falls in that tier.
var tierRepresentative = [3]Version{9, 26, 40}

// totalBitsAtTier sums, over segments (plus an optional ECI header),
// the mode indicator, character-count indicator (at the given tier),
// and payload bits.
func totalBitsAtTier(segments []segment, tier int, eci bool) int {
	total := 0
	if eci {
		total += 12
	}
	v := tierRepresentative[tier]
	for _, seg := range segments {
		total += 4 + seg.mode.numCharCountBits(v) + segmentBits(seg.mode, seg.text)
	}
	return total
}

// eciFor reports whether segments require a leading ECI-UTF8 header
// under the selected heuristic.
func eciFor(segments []segment, legacy bool) bool {
	return containsByteSegment(segments) && needsECI(byteSegmentRunes(segments), legacy)
}

// planVersion runs the segment planner once per character-count-
// indicator tier (the DP's switch cost depends on indicator width,
// which depends on the version, which depends on the segmentation),
// tightening from the widest tier down per the standard's monotone
// narrowing rule, and returns the segmentation, version, and ECI
// decision consistent with each other.
func planVersion(text []rune, ecc ECC, minVersion Version, legacyECI bool) (segments []segment, version Version, eci bool) {
	segments = planSegments(text, 2)
	eci = eciFor(segments, legacyECI)
	version = minVersionForBits(ecc, totalBitsAtTier(segments, 2, eci))

	if version <= 26 {
		segs1 := planSegments(text, 1)
		eci1 := eciFor(segs1, legacyECI)
		v1 := minVersionForBits(ecc, totalBitsAtTier(segs1, 1, eci1))

		if v1 <= 9 {
			segs0 := planSegments(text, 0)
			eci0 := eciFor(segs0, legacyECI)
			segments, version, eci = segs0, minVersionForBits(ecc, totalBitsAtTier(segs0, 0, eci0)), eci0
		} else {
			segments, version, eci = segs1, v1, eci1
		}
	}

	if version < minVersion {
		version = minVersion
	}
	return segments, version, eci
}
