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

import "slices"

// BinaryExponentiation raises base to a non-negative integer exponent using
// square-and-multiply driven by halving the exponent's digit vector, so
// exponents of any magnitude work without machine-word conversion. The
// exponent must satisfy IsInteger and be non-negative; callers validate.
func BinaryExponentiation(base, exponent Number) Number {
	e := integerDigits(exponent)
	result := One()
	b := base
	for !allZero(e) {
		if e[len(e)-1]%2 == 1 {
			result = Mul(result, b)
		}
		e = halveDigits(e)
		if !allZero(e) {
			b = Mul(b, b)
		}
	}
	return result
}

// integerDigits returns the value's digit vector padded with the trailing
// zeros implied by the exponent, i.e. the plain integer digit string.
func integerDigits(x Number) []uint8 {
	if x.IsZero() {
		return []uint8{0}
	}
	d := slices.Clone(x.digits)
	for len(d) < x.exponent {
		d = append(d, 0)
	}
	return d
}

// halveDigits divides an integer digit slice by two, discarding the
// remainder.
func halveDigits(d []uint8) []uint8 {
	out := make([]uint8, len(d))
	carry := 0
	for i, v := range d {
		cur := carry*10 + int(v)
		out[i] = uint8(cur / 2)
		carry = cur % 2
	}
	return trimLeadingZeros(out)
}

func allZero(d []uint8) bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}
