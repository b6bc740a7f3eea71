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

// Package realmath evaluates the transcendental functions on exact numbers.
//
// Every kernel sums its Maclaurin series at a working precision several guard
// digits past the requested one, then shifts the sum by a slack of one unit
// at position precision+1 in the requested direction before truncating. The
// slack dominates the accumulated division and tail errors, so a round-up
// result never falls below the true value and a round-down result never
// exceeds it.
//
// There is no argument reduction beyond the power-of-ten split in Log;
// arguments with large integer parts converge slowly.
package realmath

import (
	"github.com/lazyreal/lazyreal/go/real/exact"
)

const baseGuard = 8

// intBound returns a small-integer upper bound for |x|: 10^exponent for
// values with an integer part, 1 otherwise.
func intBound(x exact.Number) int {
	e := x.Exponent()
	if x.IsZero() || e <= 0 {
		return 1
	}
	b := 1
	for i := 0; i < e && b < 1<<30; i++ {
		b *= 10
	}
	return b
}

// workingPrecision picks the internal series precision for an argument. The
// extra digits cover the cancellation of large alternating terms, which peak
// near exp(|x|).
func workingPrecision(x exact.Number, precision int) int {
	w := precision + baseGuard
	if b := intBound(x); b > 1 {
		w += b/2 + 2
	}
	return w
}

// directed shifts an approximate sum outward by one unit at position
// precision+1 and truncates in the same direction.
func directed(sum exact.Number, precision int, roundUp bool) exact.Number {
	slack := exact.Ulp(precision + 1)
	if roundUp {
		return exact.Add(sum, slack).UpTo(precision, true)
	}
	return exact.Sub(sum, slack).UpTo(precision, false)
}

// Exp returns e^x truncated to the given precision with directed rounding.
func Exp(x exact.Number, precision int, roundUp bool) exact.Number {
	if x.IsZero() {
		return exact.One()
	}
	w := workingPrecision(x, precision)
	limit := exact.Ulp(w)
	bound := intBound(x)

	sum := exact.One()
	term := exact.One()
	for k := 1; ; k++ {
		term = exact.Mul(term, x)
		term = exact.DivideVector(term, exact.FromInt64(int64(k)), w, false)
		sum = exact.Add(sum, term)
		// Once the term ratio |x|/(k+1) has dropped below 1/2, the tail is
		// bounded by the current term.
		if k >= 2*bound && exact.Cmp(term.Abs(), limit) <= 0 {
			break
		}
	}
	return directed(sum, precision, roundUp)
}

// Log returns the natural logarithm of x truncated to the given precision
// with directed rounding. The argument must be strictly positive; operator
// propagation refines its operand until that holds before calling here.
func Log(x exact.Number, precision int, roundUp bool) exact.Number {
	if x.IsZero() || !x.IsPositive() {
		panic("realmath: logarithm of non-positive number")
	}
	e := x.Exponent()
	w := precision + 12 + numDigits(e)

	// x = m * 10^e with the mantissa m in [0.1, 1).
	m, err := exact.New(x.Digits(), 0, true)
	if err != nil {
		panic(err)
	}
	one := exact.One()
	var sum exact.Number
	if exact.Equal(m, one) {
		sum = exact.Zero()
	} else {
		z := exact.DivideVector(exact.Sub(m, one), exact.Add(m, one), w, false)
		sum = artanhTwice(z, w)
	}
	if e != 0 {
		sum = exact.Add(sum, exact.Mul(exact.FromInt64(int64(e)), lnTen(w)))
	}
	return directed(sum, precision, roundUp)
}

// artanhTwice sums 2*artanh(z) = 2*(z + z^3/3 + z^5/5 + ...) at working
// precision w. Convergence requires |z| < 1; both call sites keep
// |z| <= 9/11.
func artanhTwice(z exact.Number, w int) exact.Number {
	if z.IsZero() {
		return exact.Zero()
	}
	limit := exact.Ulp(w)
	zsq := exact.Mul(z, z).UpTo(w, false)
	sum := z
	pow := z
	for k := 1; ; k++ {
		pow = exact.Mul(pow, zsq).UpTo(w, false)
		term := exact.DivideVector(pow, exact.FromInt64(int64(2*k+1)), w, false)
		sum = exact.Add(sum, term)
		if exact.Cmp(term.Abs(), limit) <= 0 {
			break
		}
	}
	return exact.Mul(sum, exact.FromInt64(2))
}

// lnTen computes ln 10 = 2*artanh(9/11) at working precision w.
func lnTen(w int) exact.Number {
	z := exact.DivideVector(exact.FromInt64(9), exact.FromInt64(11), w, false)
	return artanhTwice(z, w)
}

// SinCos returns sine and cosine of x, each truncated to the given precision
// with directed rounding applied in the same direction to both.
func SinCos(x exact.Number, precision int, roundUp bool) (sin, cos exact.Number) {
	sinSum, cosSum := sinCosSeries(x, precision)
	return directed(sinSum, precision, roundUp), directed(cosSum, precision, roundUp)
}

// SinCosBounds returns enclosing intervals for sine and cosine of x at the
// given precision, from a single series evaluation.
func SinCosBounds(x exact.Number, precision int) (sin, cos exact.Interval) {
	sinSum, cosSum := sinCosSeries(x, precision)
	sin = exact.Interval{
		Lower: directed(sinSum, precision, false),
		Upper: directed(sinSum, precision, true),
	}
	cos = exact.Interval{
		Lower: directed(cosSum, precision, false),
		Upper: directed(cosSum, precision, true),
	}
	return sin, cos
}

// sinCosSeries sums both Maclaurin series in one pass at the working
// precision for x.
func sinCosSeries(x exact.Number, precision int) (sinSum, cosSum exact.Number) {
	w := workingPrecision(x, precision)
	if x.IsZero() {
		return exact.Zero(), exact.One()
	}
	limit := exact.Ulp(w)
	bound := intBound(x)
	x2 := exact.Mul(x, x).UpTo(w, false)

	sinTerm := x.UpTo(w, false)
	cosTerm := exact.One()
	sinSum = sinTerm
	cosSum = cosTerm
	for n := 1; ; n++ {
		cosTerm = exact.Mul(cosTerm, x2).Neg()
		cosTerm = exact.DivideVector(cosTerm, exact.FromInt64(int64(2*n-1)*int64(2*n)), w, false)
		cosSum = exact.Add(cosSum, cosTerm)

		sinTerm = exact.Mul(sinTerm, x2).Neg()
		sinTerm = exact.DivideVector(sinTerm, exact.FromInt64(int64(2*n)*int64(2*n+1)), w, false)
		sinSum = exact.Add(sinSum, sinTerm)

		// Alternating tails are bounded by the first omitted term once the
		// terms decrease, which holds as soon as 2n exceeds |x|.
		if 2*n >= bound &&
			exact.Cmp(sinTerm.Abs(), limit) <= 0 &&
			exact.Cmp(cosTerm.Abs(), limit) <= 0 {
			break
		}
	}
	return sinSum, cosSum
}

func numDigits(v int) int {
	if v < 0 {
		v = -v
	}
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
