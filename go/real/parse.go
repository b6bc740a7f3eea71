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
	"strconv"
	"strings"

	"github.com/lazyreal/lazyreal/go/real/exact"
	"github.com/lazyreal/lazyreal/go/realerrors"
)

// NewFromString parses a decimal number of the form
//
//	[+-]digits[.digits][(e|E)[+-]digits]
//
// into an explicit leaf. Either the integer or the fraction part may be
// omitted, but not both.
func NewFromString(s string) (Real, error) {
	v, err := parseNumber(s)
	if err != nil {
		return Real{}, err
	}
	return newLeaf(&explicitNumber{value: v}), nil
}

func parseNumber(s string) (exact.Number, error) {
	invalid := func() (exact.Number, error) {
		return exact.Number{}, realerrors.Errorf(realerrors.CodeInvalidStringNumber,
			"%q is not a valid decimal number", s)
	}
	if s == "" {
		return invalid()
	}
	rest := s
	positive := true
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		positive = false
		rest = rest[1:]
	}

	mantissa := rest
	addExponent := 0
	if i := strings.IndexAny(rest, "eE"); i >= 0 {
		mantissa = rest[:i]
		e, err := strconv.Atoi(rest[i+1:])
		if err != nil {
			return invalid()
		}
		addExponent = e
	}

	intPart := mantissa
	fracPart := ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart = mantissa[:i]
		fracPart = mantissa[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return invalid()
		}
	}
	if intPart == "" && fracPart == "" {
		return invalid()
	}
	for _, part := range []string{intPart, fracPart} {
		for _, c := range part {
			if c < '0' || c > '9' {
				return invalid()
			}
		}
	}

	// Leading zeros of the integer part carry no information; the decimal
	// point sits after whatever remains of it.
	intPart = strings.TrimLeft(intPart, "0")
	exponent := len(intPart) + addExponent

	digits := make([]uint8, 0, len(intPart)+len(fracPart))
	for _, c := range intPart {
		digits = append(digits, uint8(c-'0'))
	}
	for _, c := range fracPart {
		digits = append(digits, uint8(c-'0'))
	}
	if len(digits) == 0 {
		return exact.Zero(), nil
	}
	v, err := exact.New(digits, exponent, positive)
	if err != nil {
		return invalid()
	}
	return v, nil
}
