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

func TestPlanSegmentsSingleMode(t *testing.T) {
	segs := planSegments([]rune("HELLO WORLD"), 0)
	require.Len(t, segs, 1)
	assert.Equal(t, Alphanumeric, segs[0].mode)
}

func TestPlanSegmentsNumericOnly(t *testing.T) {
	segs := planSegments([]rune("12345"), 0)
	require.Len(t, segs, 1)
	assert.Equal(t, Numeric, segs[0].mode)
}

// "ABC123" spans a mode boundary; with only 3 trailing digits, the
// switch overhead (a mode indicator plus a full character-count
// indicator) outweighs whatever numeric mode saves, so the planner
// should keep the whole string in a single alphanumeric segment.
func TestPlanSegmentsShortNumericRunStaysAlphanumeric(t *testing.T) {
	segs := planSegments([]rune("ABC123"), 0)
	require.Len(t, segs, 1)
	assert.Equal(t, Alphanumeric, segs[0].mode)
}

// "A123456789" has a long enough digit run that switching to numeric
// mode for it pays for the switch overhead, so the planner should
// split into an alphanumeric segment followed by a numeric one.
func TestPlanSegmentsLongNumericRunSwitches(t *testing.T) {
	segs := planSegments([]rune("A123456789"), 0)
	require.Len(t, segs, 2)
	assert.Equal(t, Alphanumeric, segs[0].mode)
	assert.Equal(t, Numeric, segs[1].mode)
	assert.Equal(t, "A", string(segs[0].text))
	assert.Equal(t, "123456789", string(segs[1].text))
}

func TestPlanSegmentsByteFallback(t *testing.T) {
	segs := planSegments([]rune("hello, world!"), 0)
	require.Len(t, segs, 1)
	assert.Equal(t, Byte, segs[0].mode)
}

func TestPlanVersionMonotoneTightening(t *testing.T) {
	_, v, eci := planVersion([]rune("HELLO WORLD"), Medium, MinVersion, false)
	assert.Equal(t, Version(1), v)
	assert.False(t, eci)
}

func TestPlanVersionHonorsMinVersionFloor(t *testing.T) {
	_, v, _ := planVersion([]rune("A"), Low, 7, false)
	assert.Equal(t, Version(7), v)
}
