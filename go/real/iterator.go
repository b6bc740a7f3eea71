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
	"slices"

	"github.com/lazyreal/lazyreal/go/real/exact"
	"github.com/lazyreal/lazyreal/go/realerrors"
)

// Iterator is a pull-driven cursor over a number's refinement sequence. Each
// step tightens the cached enclosing interval by one decimal digit of
// precision. For explicit and algorithm leaves, precision counts significand
// digits consumed; for rational leaves it counts fractional digits of the
// quotient, and for operation nodes fractional digits carried through
// boundary propagation.
//
// A failed step leaves the previously cached interval intact; callers may
// raise the maximum precision and retry.
type Iterator struct {
	node         *node
	interval     exact.Interval
	precision    int
	maxPrecision int

	// digits fetched so far, for algorithm leaves.
	digits []uint8
}

// Interval returns the current enclosure of the true value.
func (it *Iterator) Interval() exact.Interval {
	return it.interval
}

// Precision returns the number of digits currently guaranteed.
func (it *Iterator) Precision() int {
	return it.precision
}

// MaxPrecision returns the refinement bound.
func (it *Iterator) MaxPrecision() int {
	return it.maxPrecision
}

// Increment advances the cursor by exactly one digit of precision. Advancing
// a leaf past its maximum precision is a no-op; operation nodes whose
// refinement loops exhaust the bound report a typed error instead.
func (it *Iterator) Increment() error {
	switch num := it.node.num.(type) {
	case *explicitNumber:
		if it.precision >= it.maxPrecision {
			return nil
		}
		it.precision++
		it.explicitBounds(num)
		return nil
	case *algorithmNumber:
		if it.precision >= it.maxPrecision {
			return nil
		}
		it.precision++
		it.algorithmBounds(num)
		return nil
	case *rationalNumber:
		if it.precision >= it.maxPrecision {
			return nil
		}
		it.precision++
		it.rationalBounds(num)
		return nil
	case *operationNumber:
		return it.operationIncrement(num)
	default:
		return realerrors.New(realerrors.CodeNoneOperation, "unrecognized number kind")
	}
}

// IterateNTimes advances by n digits. Operand cursors that are behind are
// ratcheted up to the target precision before a single boundary
// recomputation; operands already ahead, typically via a shared sub-tree,
// are left alone.
func (it *Iterator) IterateNTimes(n int) error {
	if n <= 0 {
		return nil
	}
	target := it.precision + n
	if target > it.maxPrecision {
		target = it.maxPrecision
	}
	switch num := it.node.num.(type) {
	case *operationNumber:
		if num.lhs.itr.precision < target {
			if err := num.lhs.itr.IterateNTimes(target - num.lhs.itr.precision); err != nil {
				return err
			}
		}
		if num.rhs != nil && num.rhs.itr.precision < target {
			if err := num.rhs.itr.IterateNTimes(target - num.rhs.itr.precision); err != nil {
				return err
			}
		}
		if target <= it.precision {
			return nil
		}
		it.precision = target
		return it.updateOperationBoundaries(num)
	default:
		for it.precision < target {
			if err := it.Increment(); err != nil {
				return err
			}
		}
		return nil
	}
}

// operationIncrement advances an operation node by one digit. An operand is
// advanced only if its precision equals this node's: operands ahead were
// already advanced through a shared sub-tree, operands behind are pinned at
// their own maximum precision.
func (it *Iterator) operationIncrement(num *operationNumber) error {
	if it.precision >= it.maxPrecision {
		return nil
	}
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
	it.precision++
	return it.updateOperationBoundaries(num)
}

// explicitBounds truncates the value in both directions. Once precision
// covers the whole significand both truncations return the value itself and
// the interval collapses to a point.
func (it *Iterator) explicitBounds(num *explicitNumber) {
	p := it.precision - num.value.Exponent()
	it.interval = exact.Interval{
		Lower: num.value.UpTo(p, false),
		Upper: num.value.UpTo(p, true),
	}
}

// algorithmBounds extends the fetched digit run to the current precision.
// The lower bound is the truncated run; the upper bound adds one unit at the
// last fetched position, since every future digit can only push the value up
// to that ceiling. The sign is applied last, swapping the bounds for
// negative numbers.
func (it *Iterator) algorithmBounds(num *algorithmNumber) {
	for len(it.digits) < it.precision {
		it.digits = append(it.digits, num.nth(len(it.digits)+1))
	}
	run := it.digits[:it.precision]
	lower, err := exact.New(slices.Clone(run), num.exponent, true)
	if err != nil {
		panic(err)
	}
	var upper exact.Number
	if upperOverflows(run) {
		// The carry rolled all the way over; the ceiling gains an integer
		// digit.
		upper, err = exact.New([]uint8{1}, num.exponent+1, true)
	} else {
		upper, err = exact.New(upperDigits(run), num.exponent, true)
	}
	if err != nil {
		panic(err)
	}
	if num.positive {
		it.interval = exact.Interval{Lower: lower, Upper: upper}
	} else {
		it.interval = exact.Interval{Lower: upper.Neg(), Upper: lower.Neg()}
	}
}

func upperDigits(digits []uint8) []uint8 {
	out := slices.Clone(digits)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < 9 {
			out[i]++
			return out
		}
		out[i] = 0
	}
	return out
}

func upperOverflows(digits []uint8) bool {
	for _, d := range digits {
		if d != 9 {
			return false
		}
	}
	return true
}

// rationalBounds long-divides with both rounding directions.
func (it *Iterator) rationalBounds(num *rationalNumber) {
	it.interval = exact.Interval{
		Lower: exact.DivideVector(num.num, num.den, it.precision, false),
		Upper: exact.DivideVector(num.num, num.den, it.precision, true),
	}
}
