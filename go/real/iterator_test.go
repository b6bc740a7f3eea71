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

package real

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazyreal/lazyreal/go/real/exact"
)

// ones produces the digit stream 1.111..., nines 1.999...; both are the
// algorithmic fixtures of the original interval tests.
func ones(int) uint8 { return 1 }

func nines(n int) uint8 {
	if n == 1 {
		return 1
	}
	return 9
}

// intervalStrings collects the interval rendering of the first n refinement
// steps of a fresh iterator.
func intervalStrings(t *testing.T, r Real, n int) []string {
	t.Helper()
	it, err := r.Begin()
	require.NoError(t, err)
	out := []string{it.Interval().String()}
	for i := 1; i < n; i++ {
		require.NoError(t, it.Increment())
		out = append(out, it.Interval().String())
	}
	return out
}

func TestExplicitLeafIntervals(t *testing.T) {
	r, err := NewFromString("1.9")
	require.NoError(t, err)
	got := intervalStrings(t, r, 3)
	want := []string{
		"[1, 2]",
		"[1.9, 1.9]", // the value is fully known from here on
		"[1.9, 1.9]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interval mismatch (-want +got):\n%s", diff)
	}
}

func TestNegativeExplicitLeafIntervals(t *testing.T) {
	r, err := NewFromString("-1.9")
	require.NoError(t, err)
	got := intervalStrings(t, r, 2)
	want := []string{
		"[-2, -1]",
		"[-1.9, -1.9]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interval mismatch (-want +got):\n%s", diff)
	}
}

func TestAlgorithmLeafIntervals(t *testing.T) {
	r := NewAlgorithm(ones, 1, true)
	got := intervalStrings(t, r, 4)
	want := []string{
		"[1, 2]",
		"[1.1, 1.2]",
		"[1.11, 1.12]",
		"[1.111, 1.112]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interval mismatch (-want +got):\n%s", diff)
	}
}

func TestAlgorithmLeafCarryRollover(t *testing.T) {
	// With a tail of nines the ceiling stays pinned at 2 while the floor
	// creeps up; the upper bound must never increase.
	r := NewAlgorithm(nines, 1, true)
	got := intervalStrings(t, r, 4)
	want := []string{
		"[1, 2]",
		"[1.9, 2]",
		"[1.99, 2]",
		"[1.999, 2]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interval mismatch (-want +got):\n%s", diff)
	}
}

func TestNegativeAlgorithmLeafIntervals(t *testing.T) {
	r := NewAlgorithm(ones, 1, false)
	got := intervalStrings(t, r, 2)
	want := []string{
		"[-2, -1]",
		"[-1.2, -1.1]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interval mismatch (-want +got):\n%s", diff)
	}
}

func TestRationalLeafIntervals(t *testing.T) {
	r, err := NewRational(1, 3)
	require.NoError(t, err)
	it, err := r.Begin()
	require.NoError(t, err)
	assert.Equal(t, "[0.3, 0.4]", it.Interval().String())
	require.NoError(t, it.Increment())
	assert.Equal(t, "[0.33, 0.34]", it.Interval().String())

	half, err := NewRational(-1, 2)
	require.NoError(t, err)
	it, err = half.Begin()
	require.NoError(t, err)
	require.NoError(t, it.Increment())
	assert.Equal(t, "[-0.5, -0.5]", it.Interval().String())
}

func TestRationalRejectsZeroDenominator(t *testing.T) {
	_, err := NewRational(1, 0)
	require.Error(t, err)
}

func TestMonotoneRefinement(t *testing.T) {
	// Property: advancing precision never widens the interval.
	reals := map[string]Real{
		"algorithm": NewAlgorithm(ones, 1, true),
		"nines":     NewAlgorithm(nines, 1, true),
	}
	if r, err := NewFromString("3.14159"); assert.NoError(t, err) {
		reals["explicit"] = r
	}
	if r, err := NewRational(22, 7); assert.NoError(t, err) {
		reals["rational"] = r
	}
	for name, r := range reals {
		t.Run(name, func(t *testing.T) {
			it, err := r.Begin()
			require.NoError(t, err)
			prev := it.Interval()
			for i := 0; i < 8; i++ {
				require.NoError(t, it.Increment())
				cur := it.Interval()
				assert.LessOrEqual(t, exact.Cmp(prev.Lower, cur.Lower), 0, "lower regressed at step %d", i)
				assert.GreaterOrEqual(t, exact.Cmp(prev.Upper, cur.Upper), 0, "upper regressed at step %d", i)
				prev = cur
			}
		})
	}
}

func TestSharedSubtreeRatchet(t *testing.T) {
	// A shared operand advances once per root step, not once per parent
	// reference.
	a := NewAlgorithm(ones, 1, true)
	square := a.Mul(a)

	it, err := square.Begin()
	require.NoError(t, err)
	require.Equal(t, 1, it.Precision())
	require.Equal(t, 1, a.node.itr.Precision())

	require.NoError(t, it.Increment())
	assert.Equal(t, 2, it.Precision())
	assert.Equal(t, 2, a.node.itr.Precision())

	require.NoError(t, it.Increment())
	assert.Equal(t, 3, a.node.itr.Precision())
}

func TestLeafStopsAtMaxPrecision(t *testing.T) {
	r := NewAlgorithm(ones, 1, true)
	it, err := r.Begin()
	require.NoError(t, err)
	for i := 0; i < DefaultMaxPrecision+5; i++ {
		require.NoError(t, it.Increment())
	}
	assert.Equal(t, DefaultMaxPrecision, it.Precision())
}

func TestIterateNTimes(t *testing.T) {
	r := NewAlgorithm(ones, 1, true)
	s := r.Add(r)
	it, err := s.Begin()
	require.NoError(t, err)
	require.NoError(t, it.IterateNTimes(3))
	assert.Equal(t, 4, it.Precision())
	iv := it.Interval()
	want, err := parseNumber("2.2222")
	require.NoError(t, err)
	assert.True(t, exact.Cmp(iv.Lower, want) <= 0 && exact.Cmp(iv.Upper, want) >= 0)
}
