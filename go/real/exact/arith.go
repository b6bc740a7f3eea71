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

// Add returns x + y exactly.
func Add(x, y Number) Number {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	if x.positive == y.positive {
		digits, exponent := addMagnitude(x, y)
		return normalize(digits, exponent, x.positive)
	}
	switch cmpMagnitude(x, y) {
	case 0:
		return Zero()
	case 1:
		digits, exponent := subMagnitude(x, y)
		return normalize(digits, exponent, x.positive)
	default:
		digits, exponent := subMagnitude(y, x)
		return normalize(digits, exponent, y.positive)
	}
}

// Sub returns x - y exactly.
func Sub(x, y Number) Number {
	return Add(x, y.Neg())
}

// Mul returns x * y exactly via schoolbook multiplication.
func Mul(x, y Number) Number {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	product := mulDigits(x.digits, y.digits)
	return normalize(product, x.exponent+y.exponent, x.positive == y.positive)
}

// addMagnitude adds |x| + |y|. Digit i of a value occupies decimal place
// exponent-i-1; both operands are spread over the union of their place
// ranges before a single carry pass.
func addMagnitude(x, y Number) ([]uint8, int) {
	hi := max(x.exponent, y.exponent)
	lo := min(x.exponent-len(x.digits), y.exponent-len(y.digits))
	buf := make([]int, hi-lo)
	for i, d := range x.digits {
		buf[hi-x.exponent+i] += int(d)
	}
	for i, d := range y.digits {
		buf[hi-y.exponent+i] += int(d)
	}
	digits := make([]uint8, len(buf))
	carry := 0
	for i := len(buf) - 1; i >= 0; i-- {
		v := buf[i] + carry
		digits[i] = uint8(v % 10)
		carry = v / 10
	}
	if carry > 0 {
		digits = append([]uint8{uint8(carry)}, digits...)
		hi++
	}
	return digits, hi
}

// subMagnitude computes |x| - |y|, requiring |x| >= |y|.
func subMagnitude(x, y Number) ([]uint8, int) {
	hi := max(x.exponent, y.exponent)
	lo := min(x.exponent-len(x.digits), y.exponent-len(y.digits))
	buf := make([]int, hi-lo)
	for i, d := range x.digits {
		buf[hi-x.exponent+i] += int(d)
	}
	for i, d := range y.digits {
		buf[hi-y.exponent+i] -= int(d)
	}
	digits := make([]uint8, len(buf))
	borrow := 0
	for i := len(buf) - 1; i >= 0; i-- {
		v := buf[i] - borrow
		if v < 0 {
			v += 10
			borrow = 1
		} else {
			borrow = 0
		}
		digits[i] = uint8(v)
	}
	return digits, hi
}

// mulDigits multiplies two significands as integers, returning exactly
// len(x)+len(y) digits with any leading zeros preserved for the caller's
// exponent bookkeeping.
func mulDigits(x, y []uint8) []uint8 {
	buf := make([]int, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		for j := len(y) - 1; j >= 0; j-- {
			buf[i+j+1] += int(x[i]) * int(y[j])
		}
	}
	digits := make([]uint8, len(buf))
	carry := 0
	for i := len(buf) - 1; i >= 0; i-- {
		v := buf[i] + carry
		digits[i] = uint8(v % 10)
		carry = v / 10
	}
	return digits
}
