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

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalDigits(t *testing.T, input string, digits int) string {
	t.Helper()
	r, err := parseExpression(input)
	require.NoError(t, err)
	r.SetMaxPrecision(30)
	iv, err := r.Eval(digits)
	require.NoError(t, err)
	return iv.String()
}

func TestParseExpressionStructure(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.9*1.9", "(1.9 * 1.9)"},
		{"1+2*3", "(1 + (2 * 3))"},
		{"(1+2)*3", "((1 + 2) * 3)"},
		{"sin(1)", "sin(1)"},
		{"exp(log(2))", "exp(log(2))"},
		{"rat(1,3)", "1/3"},
		{"2^3", "(2 ^ 3)"},
		{"-1.5", "(0 - 1.5)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			r, err := parseExpression(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.String())
		})
	}
}

func TestParseExpressionEval(t *testing.T) {
	assert.Equal(t, "[3.61, 3.61]", evalDigits(t, "1.9*1.9", 2))
	assert.Equal(t, "[7, 7]", evalDigits(t, "1+2*3", 2))
	assert.Equal(t, "[8, 8]", evalDigits(t, "2^3", 2))
}

func TestParseExpressionErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"1 +",
		"(1",
		"foo(1)",
		"1..2",
		"rat(1)",
		"rat(1,0)",
		"2 ** 3",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := parseExpression(in)
			assert.Error(t, err)
		})
	}
}
