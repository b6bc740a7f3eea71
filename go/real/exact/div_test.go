/*
Copyright 2024 The Lazyreal Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package exact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivideVector(t *testing.T) {
	tests := []struct {
		x, y      string
		precision int
		roundUp   bool
		want      string
	}{
		{"1", "3", 2, false, "0.33"},
		{"1", "3", 2, true, "0.34"},
		{"1", "3", 5, false, "0.33333"},
		{"2", "3", 3, false, "0.666"},
		{"2", "3", 3, true, "0.667"},
		{"1", "0.5", 1, false, "2"},
		{"1", "4", 3, false, "0.25"},
		{"1", "4", 3, true, "0.25"},
		{"10", "4", 0, false, "2"},
		{"10", "4", 0, true, "3"},
		{"144", "12", 4, false, "12"},
		{"0", "7", 3, false, "0"},
		// Signed directed rounding: rounding down moves toward -infinity.
		{"-1", "3", 2, false, "-0.34"},
		{"-1", "3", 2, true, "-0.33"},
		{"1", "-3", 2, false, "-0.34"},
		{"-1", "-3", 2, false, "0.33"},
		{"-1", "-3", 2, true, "0.34"},
		// Tiny quotients truncate to zero or one trailing unit.
		{"0.001", "2", 1, false, "0"},
		{"0.001", "2", 1, true, "0.1"},
		{"0.001", "2", 4, false, "0.0005"},
	}
	for _, tc := range tests {
		x, y := numFromString(t, tc.x), numFromString(t, tc.y)
		got := DivideVector(x, y, tc.precision, tc.roundUp)
		assert.Equalf(t, tc.want, got.String(), "DivideVector(%s, %s, %d, %v)", tc.x, tc.y, tc.precision, tc.roundUp)
	}
}

func TestDivideVectorEnclosure(t *testing.T) {
	// lower <= x/y <= upper at every precision, and the pair tightens.
	x := numFromString(t, "1.9")
	y := numFromString(t, "0.7")
	prev := Interval{Lower: FromInt64(-100), Upper: FromInt64(100)}
	for p := 1; p <= 20; p++ {
		lower := DivideVector(x, y, p, false)
		upper := DivideVector(x, y, p, true)
		require.LessOrEqual(t, Cmp(lower, upper), 0)
		require.LessOrEqual(t, Cmp(prev.Lower, lower), 0, "lower bound regressed at precision %d", p)
		require.GreaterOrEqual(t, Cmp(prev.Upper, upper), 0, "upper bound regressed at precision %d", p)
		prev = Interval{Lower: lower, Upper: upper}
	}
	// 1.9/0.7 = 2.714285..., so both bounds sit next to it.
	assert.Equal(t, -1, Cmp(prev.Lower, numFromString(t, "2.7142858")))
	assert.Equal(t, 1, Cmp(prev.Upper, numFromString(t, "2.7142857")))
}

func TestDivideVectorByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		DivideVector(FromInt64(1), Zero(), 3, false)
	})
}
