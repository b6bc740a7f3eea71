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
)

func TestBinaryExponentiation(t *testing.T) {
	tests := []struct {
		base string
		exp  int64
		want string
	}{
		{"2", 10, "1024"},
		{"1.5", 2, "2.25"},
		{"10", 5, "100000"},
		{"7", 0, "1"},
		{"7", 1, "7"},
		{"-2", 3, "-8"},
		{"-2", 4, "16"},
		{"0.1", 3, "0.001"},
		{"2", 13, "8192"},
		{"0", 5, "0"},
	}
	for _, tc := range tests {
		base := numFromString(t, tc.base)
		got := BinaryExponentiation(base, FromInt64(tc.exp))
		assert.Equalf(t, tc.want, got.String(), "%s^%d", tc.base, tc.exp)
	}
}

func TestHalveDigits(t *testing.T) {
	assert.Equal(t, []uint8{6}, halveDigits([]uint8{1, 3}))
	assert.Equal(t, []uint8{5, 0}, halveDigits([]uint8{1, 0, 0}))
	assert.Empty(t, halveDigits([]uint8{1}))
	assert.Empty(t, halveDigits([]uint8{0}))
}
