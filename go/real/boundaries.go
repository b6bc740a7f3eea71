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
	"github.com/lazyreal/lazyreal/go/log"
	"github.com/lazyreal/lazyreal/go/real/exact"
	"github.com/lazyreal/lazyreal/go/real/realmath"
	"github.com/lazyreal/lazyreal/go/realerrors"
)

// updateOperationBoundaries recomputes this node's interval from its
// operands' current intervals. Lower bounds are always rounded toward
// -infinity and upper bounds toward +infinity, so the result encloses every
// combination of operand values.
func (it *Iterator) updateOperationBoundaries(num *operationNumber) error {
	p := it.precision
	l := num.lhs.itr.interval

	switch num.op {
	case opAdd:
		r := num.rhs.itr.interval
		it.interval = exact.Interval{
			Lower: exact.Add(l.Lower.UpTo(p, false), r.Lower.UpTo(p, false)),
			Upper: exact.Add(l.Upper.UpTo(p, true), r.Upper.UpTo(p, true)),
		}
		return nil

	case opSub:
		r := num.rhs.itr.interval
		it.interval = exact.Interval{
			Lower: exact.Sub(l.Lower.UpTo(p, false), r.Upper.UpTo(p, true)),
			Upper: exact.Sub(l.Upper.UpTo(p, true), r.Lower.UpTo(p, false)),
		}
		return nil

	case opMul:
		it.multiplicationBounds(num)
		return nil

	case opDiv:
		return it.divisionBounds(num)

	case opIntPow:
		return it.integerPowerBounds(num)

	case opExp:
		it.interval = exact.Interval{
			Lower: realmath.Exp(l.Lower, p, false),
			Upper: realmath.Exp(l.Upper, p, true),
		}
		return nil

	case opLog:
		return it.logarithmBounds(num)

	case opSin, opCos:
		it.sineCosineBounds(num)
		return nil

	case opTan, opCot, opSec, opCsc:
		return it.trigQuotientBounds(num)

	default:
		return realerrors.Errorf(realerrors.CodeNoneOperation, "operator %d has no propagation rule", num.op)
	}
}

// multiplicationBounds applies the sign-quadrant analysis. When either
// operand straddles zero, all four corner products are formed and the
// extremes written directly to the interval fields.
func (it *Iterator) multiplicationBounds(num *operationNumber) {
	p := it.precision
	l := num.lhs.itr.interval
	r := num.rhs.itr.interval

	ld := l.Lower.UpTo(p, false)
	lu := l.Upper.UpTo(p, true)
	rd := r.Lower.UpTo(p, false)
	ru := r.Upper.UpTo(p, true)

	switch {
	case l.Positive() && r.Positive():
		it.interval = exact.Interval{Lower: exact.Mul(ld, rd), Upper: exact.Mul(lu, ru)}
	case l.Negative() && r.Negative():
		it.interval = exact.Interval{Lower: exact.Mul(lu, ru), Upper: exact.Mul(ld, rd)}
	case l.Negative() && r.Positive():
		it.interval = exact.Interval{Lower: exact.Mul(ld, ru), Upper: exact.Mul(lu, rd)}
	case l.Positive() && r.Negative():
		it.interval = exact.Interval{Lower: exact.Mul(lu, rd), Upper: exact.Mul(ld, ru)}
	default:
		corners := []exact.Number{
			exact.Mul(ld, rd),
			exact.Mul(lu, ru),
			exact.Mul(ld, ru),
			exact.Mul(lu, rd),
		}
		lower, upper := corners[0], corners[0]
		for _, c := range corners[1:] {
			if exact.Cmp(c, lower) < 0 {
				lower = c
			}
			if exact.Cmp(c, upper) > 0 {
				upper = c
			}
		}
		it.interval = exact.Interval{Lower: lower, Upper: upper}
	}
}

// divisionBounds refines both operands in lockstep until the divisor
// interval excludes zero, then divides endpoint against endpoint by sign
// case.
func (it *Iterator) divisionBounds(num *operationNumber) error {
	for num.rhs.itr.interval.ContainsZero() && it.precision < it.maxPrecision {
		if err := it.advanceOperands(num); err != nil {
			return err
		}
		it.precision++
	}
	if num.rhs.itr.interval.ContainsZero() {
		log.Warningf("division: divisor interval %v still contains zero at precision %d", num.rhs.itr.interval, it.precision)
		return realerrors.Errorf(realerrors.CodeDivergentDivision,
			"divisor interval contains zero at maximum precision %d", it.precision)
	}
	iv, err := divideIntervals(num.lhs.itr.interval, num.rhs.itr.interval, it.precision)
	if err != nil {
		return err
	}
	it.interval = iv
	return nil
}

// advanceOperands steps each operand cursor that sits at this node's
// precision, mirroring the per-digit advance of operationIncrement without
// recomputing boundaries mid-loop.
func (it *Iterator) advanceOperands(num *operationNumber) error {
	if num.lhs.itr.precision == it.precision {
		if err := num.lhs.itr.Increment(); err != nil {
			return err
		}
	}
	if num.rhs != nil && num.rhs.itr.precision == it.precision {
		if err := num.rhs.itr.Increment(); err != nil {
			return err
		}
	}
	return nil
}

// divideIntervals divides interval n by interval d, which must exclude zero.
// Each bound selects the extreme endpoint pair for its side; lower bounds
// divide rounding down, upper bounds rounding up.
func divideIntervals(n, d exact.Interval, p int) (exact.Interval, error) {
	if d.ContainsZero() {
		return exact.Interval{}, realerrors.New(realerrors.CodeDivergentDivision, "divisor interval contains zero")
	}
	var loNum, loDen, upNum, upDen exact.Number
	switch {
	case n.Positive() && d.Positive():
		upNum, upDen = n.Upper, d.Lower
		loNum, loDen = n.Lower, d.Upper
	case n.Positive() && d.Negative():
		upNum, upDen = n.Lower, d.Lower
		loNum, loDen = n.Upper, d.Upper
	case n.Negative() && d.Positive():
		upNum, upDen = n.Upper, d.Upper
		loNum, loDen = n.Lower, d.Lower
	case n.Negative() && d.Negative():
		upNum, upDen = n.Lower, d.Upper
		loNum, loDen = n.Upper, d.Lower
	case d.Positive():
		// n straddles zero.
		upNum, upDen = n.Upper, d.Lower
		loNum, loDen = n.Lower, d.Lower
	default:
		upNum, upDen = n.Lower, d.Upper
		loNum, loDen = n.Upper, d.Upper
	}
	return exact.Interval{
		Lower: exact.DivideVector(loNum, loDen, p, false),
		Upper: exact.DivideVector(upNum, upDen, p, true),
	}, nil
}

// integerPowerBounds refines the exponent to full precision, validates it as
// a non-negative integer and raises the base interval by parity case.
func (it *Iterator) integerPowerBounds(num *operationNumber) error {
	rhs := &num.rhs.itr
	if d := rhs.maxPrecision - rhs.precision; d > 0 {
		if err := rhs.IterateNTimes(d); err != nil {
			return err
		}
	}
	r := rhs.interval
	if !exact.Equal(r.Lower, r.Upper) || !r.Upper.IsInteger() {
		return realerrors.Errorf(realerrors.CodeNonIntegralExponent,
			"exponent %v is not an integer", r)
	}
	exponent := r.Upper
	if !exponent.IsZero() && !exponent.IsPositive() {
		return realerrors.Errorf(realerrors.CodeNegativeExponent,
			"exponent %v is negative", exponent)
	}
	even := exponent.IsEven()

	l := num.lhs.itr.interval
	switch {
	case l.Positive():
		it.interval = exact.Interval{
			Lower: exact.BinaryExponentiation(l.Lower, exponent),
			Upper: exact.BinaryExponentiation(l.Upper, exponent),
		}
	case l.Negative():
		if even {
			it.interval = exact.Interval{
				Lower: exact.BinaryExponentiation(l.Upper, exponent),
				Upper: exact.BinaryExponentiation(l.Lower, exponent),
			}
		} else {
			it.interval = exact.Interval{
				Lower: exact.BinaryExponentiation(l.Lower, exponent),
				Upper: exact.BinaryExponentiation(l.Upper, exponent),
			}
		}
	default:
		if even {
			larger := l.Upper
			if exact.Cmp(l.Lower.Abs(), l.Upper.Abs()) > 0 {
				larger = l.Lower
			}
			it.interval = exact.Interval{
				Lower: exact.Zero(),
				Upper: exact.BinaryExponentiation(larger, exponent),
			}
		} else {
			it.interval = exact.Interval{
				Lower: exact.BinaryExponentiation(l.Lower, exponent),
				Upper: exact.BinaryExponentiation(l.Upper, exponent),
			}
		}
	}
	return nil
}

// logarithmBounds rejects operands that cannot be positive, refines the
// operand until its lower bound separates from zero, then applies the
// monotone kernel to both endpoints.
func (it *Iterator) logarithmBounds(num *operationNumber) error {
	l := num.lhs.itr.interval
	if l.Upper.IsZero() || !l.Upper.IsPositive() {
		return realerrors.Errorf(realerrors.CodeLogDomain,
			"logarithm operand %v is not positive", l)
	}
	for !l.Positive() {
		if it.precision >= num.lhs.itr.maxPrecision {
			log.Warningf("logarithm: operand %v not separable from zero at precision %d", l, it.precision)
			return realerrors.Errorf(realerrors.CodeLogDomain,
				"logarithm operand not separable from zero at maximum precision %d", it.precision)
		}
		if err := num.lhs.itr.IterateNTimes(1); err != nil {
			return err
		}
		it.precision++
		l = num.lhs.itr.interval
	}
	it.interval = exact.Interval{
		Lower: realmath.Log(l.Lower, it.precision, false),
		Upper: realmath.Log(l.Upper, it.precision, true),
	}
	return nil
}

// sineCosineBounds encloses sin or cos over the operand interval. With no
// interior extremum the image is the hull of the endpoint enclosures; with
// one, the extremum side is clamped to the corresponding unit. Operand
// intervals wide enough to hold more than one extremum collapse to [-1, 1].
func (it *Iterator) sineCosineBounds(num *operationNumber) {
	p := it.precision
	l := num.lhs.itr.interval
	sinL, cosL := realmath.SinCosBounds(l.Lower, p)
	sinU, cosU := realmath.SinCosBounds(l.Upper, p)

	one := exact.One()
	minusOne := one.Neg()

	// A derivative sign key; for sin the derivative is cos, for cos it is
	// -sin.
	var valL, valU, keyL, keyU exact.Interval
	if num.op == opSin {
		valL, valU, keyL, keyU = sinL, sinU, cosL, cosU
	} else {
		valL, valU, keyL, keyU = cosL, cosU, sinL, sinU
	}

	// Consecutive extrema of sine and cosine are pi apart; an operand
	// interval at least 3 wide may hold both a maximum and a minimum.
	if exact.Cmp(l.Width(), exact.FromInt64(3)) >= 0 {
		it.interval = exact.Interval{Lower: minusOne, Upper: one}
		return
	}

	switch {
	case (keyL.Positive() && keyU.Positive()) || (keyL.Negative() && keyU.Negative()):
		// Monotone over the interval.
		it.interval = hull(valL, valU)
	case num.op == opSin && keyL.Positive() && keyU.Negative(),
		num.op == opCos && keyL.Negative() && keyU.Positive():
		// Rising then falling: the interior extremum is the maximum.
		it.interval = exact.Interval{
			Lower: minNum(valL.Lower, valU.Lower),
			Upper: one,
		}
	case num.op == opSin && keyL.Negative() && keyU.Positive(),
		num.op == opCos && keyL.Positive() && keyU.Negative():
		it.interval = exact.Interval{
			Lower: minusOne,
			Upper: maxNum(valL.Upper, valU.Upper),
		}
	default:
		// The derivative's sign is unresolved at this precision.
		it.interval = exact.Interval{Lower: minusOne, Upper: one}
	}
}

// trigQuotientBounds handles tan, cot, sec and csc. Each is a quotient with
// a domain exclusion where its denominator vanishes: the operand is refined
// until the denominator is sign-definite across the interval, then the
// endpoint quotients are combined, with the interior +-1 extremum handled
// for sec and csc.
func (it *Iterator) trigQuotientBounds(num *operationNumber) error {
	// cot and csc exclude multiples of pi (sin = 0); tan and sec exclude odd
	// multiples of pi/2 (cos = 0).
	denomIsSin := num.op == opCot || num.op == opCsc

	var sinL, cosL, sinU, cosU exact.Interval
	for {
		l := num.lhs.itr.interval
		sinL, cosL = realmath.SinCosBounds(l.Lower, it.precision)
		sinU, cosU = realmath.SinCosBounds(l.Upper, it.precision)
		denL, denU := cosL, cosU
		if denomIsSin {
			denL, denU = sinL, sinU
		}
		if signDefinite(denL, denU) {
			break
		}
		if it.precision >= num.lhs.itr.maxPrecision {
			log.Warningf("%s: operand %v not separable from a pole at precision %d", num.op, l, it.precision)
			return realerrors.Errorf(realerrors.CodeMaxPrecisionTrigonometric,
				"%s operand not separable from a pole at maximum precision %d", num.op, it.precision)
		}
		if err := num.lhs.itr.IterateNTimes(1); err != nil {
			return err
		}
		it.precision++
	}
	p := it.precision

	var numL, numU, denL, denU exact.Interval
	switch num.op {
	case opTan:
		numL, numU, denL, denU = sinL, sinU, cosL, cosU
	case opCot:
		numL, numU, denL, denU = cosL, cosU, sinL, sinU
	case opSec:
		pointOne := exact.Interval{Lower: exact.One(), Upper: exact.One()}
		numL, numU, denL, denU = pointOne, pointOne, cosL, cosU
	case opCsc:
		pointOne := exact.Interval{Lower: exact.One(), Upper: exact.One()}
		numL, numU, denL, denU = pointOne, pointOne, sinL, sinU
	}

	qL, err := divideIntervals(numL, denL, p)
	if err != nil {
		return err
	}
	qU, err := divideIntervals(numU, denU, p)
	if err != nil {
		return err
	}

	if num.op == opTan || num.op == opCot {
		// Monotone on any pole-free interval.
		it.interval = hull(qL, qU)
		return nil
	}

	// sec has an interior extremum where sin changes sign, csc where cos
	// does. On the positive branch the extremum value is +1, on the negative
	// branch -1.
	extL, extU := sinL, sinU
	if num.op == opCsc {
		extL, extU = cosL, cosU
	}
	positiveBranch := denL.Positive()
	if (extL.Positive() && extU.Positive()) || (extL.Negative() && extU.Negative()) {
		it.interval = hull(qL, qU)
		return nil
	}
	if positiveBranch {
		it.interval = exact.Interval{
			Lower: exact.One(),
			Upper: maxNum(qL.Upper, qU.Upper),
		}
	} else {
		it.interval = exact.Interval{
			Lower: minNum(qL.Lower, qU.Lower),
			Upper: exact.One().Neg(),
		}
	}
	return nil
}

// signDefinite reports whether both intervals exclude zero with the same
// sign.
func signDefinite(a, b exact.Interval) bool {
	return (a.Positive() && b.Positive()) || (a.Negative() && b.Negative())
}

func hull(a, b exact.Interval) exact.Interval {
	return exact.Interval{
		Lower: minNum(a.Lower, b.Lower),
		Upper: maxNum(a.Upper, b.Upper),
	}
}

func minNum(a, b exact.Number) exact.Number {
	if exact.Cmp(a, b) <= 0 {
		return a
	}
	return b
}

func maxNum(a, b exact.Number) exact.Number {
	if exact.Cmp(a, b) >= 0 {
		return a
	}
	return b
}
