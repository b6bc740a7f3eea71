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

// Package real implements exact real arithmetic via lazy interval refinement.
//
// A Real is a handle on an immutable expression DAG whose leaves are explicit
// decimals, on-demand digit streams or rationals, and whose internal nodes
// apply arithmetic and transcendental operators. Nothing is evaluated when an
// expression is built; requesting precision through an Iterator pulls
// enclosing intervals of the true value, one decimal digit per step, through
// the whole tree.
//
// Evaluation is single-threaded and pull-driven. Each DAG node carries one
// canonical cursor that every expression referencing it shares, so sharing a
// sub-expression between two expressions is safe: the precision ratchet
// advances each shared node at most once per root step.
package real

import (
	"fmt"

	"github.com/lazyreal/lazyreal/go/real/exact"
	"github.com/lazyreal/lazyreal/go/realerrors"
)

// DefaultMaxPrecision bounds refinement for fresh numbers. Divergent
// operations (division by an interval pinned on zero, logarithms of values
// indistinguishable from zero, tangents at a pole) fail once they reach it
// rather than refining forever. Raise it per number with SetMaxPrecision.
const DefaultMaxPrecision = 10

// Real is a lazily evaluated real number.
type Real struct {
	node *node
}

// NewFromDigits builds a number from a significand (most significant digit
// first), a decimal-point exponent and a sign.
func NewFromDigits(digits []uint8, exponent int, positive bool) (Real, error) {
	v, err := exact.New(digits, exponent, positive)
	if err != nil {
		return Real{}, realerrors.Errorf(realerrors.CodeInvalidStringNumber, "invalid digit vector: %v", err)
	}
	return newLeaf(&explicitNumber{value: v}), nil
}

// NewRational builds the ratio p/q. The denominator must be nonzero.
func NewRational(p, q int64) (Real, error) {
	if q == 0 {
		return Real{}, realerrors.New(realerrors.CodeDivergentDivision, "rational denominator is zero")
	}
	return newLeaf(&rationalNumber{
		num: exact.FromInt64(p),
		den: exact.FromInt64(q),
	}), nil
}

// NewAlgorithm builds a number whose digits are produced on demand. nth
// returns the n-th significand digit (1-indexed) and must be a total
// function with results in [0, 9].
func NewAlgorithm(nth func(n int) uint8, exponent int, positive bool) Real {
	return newLeaf(&algorithmNumber{nth: nth, exponent: exponent, positive: positive})
}

func newLeaf(num number) Real {
	n := &node{num: num}
	n.itr = Iterator{node: n, maxPrecision: DefaultMaxPrecision}
	// Leaves cannot fail to refine; bring the cursor to precision 1.
	if err := n.itr.Increment(); err != nil {
		panic(err)
	}
	return Real{node: n}
}

func newOperation(op opKind, lhs, rhs *node) Real {
	n := &node{num: &operationNumber{op: op, lhs: lhs, rhs: rhs}}
	// Operation intervals are computed on first use: boundary propagation
	// may fail (divergent division, domain errors), and errors belong to the
	// iterator, not the constructor.
	n.itr = Iterator{node: n, maxPrecision: DefaultMaxPrecision}
	return Real{node: n}
}

// Add returns a number representing r + o.
func (r Real) Add(o Real) Real { return newOperation(opAdd, r.node, o.node) }

// Sub returns a number representing r - o.
func (r Real) Sub(o Real) Real { return newOperation(opSub, r.node, o.node) }

// Mul returns a number representing r * o.
func (r Real) Mul(o Real) Real { return newOperation(opMul, r.node, o.node) }

// Div returns a number representing r / o.
func (r Real) Div(o Real) Real { return newOperation(opDiv, r.node, o.node) }

// Pow returns r raised to an exponent, which must refine to a non-negative
// integer.
func (r Real) Pow(exponent Real) Real { return newOperation(opIntPow, r.node, exponent.node) }

// Exp returns e^r.
func (r Real) Exp() Real { return newOperation(opExp, r.node, nil) }

// Log returns the natural logarithm of r; r must be positive.
func (r Real) Log() Real { return newOperation(opLog, r.node, nil) }

// Sin returns the sine of r.
func (r Real) Sin() Real { return newOperation(opSin, r.node, nil) }

// Cos returns the cosine of r.
func (r Real) Cos() Real { return newOperation(opCos, r.node, nil) }

// Tan returns the tangent of r.
func (r Real) Tan() Real { return newOperation(opTan, r.node, nil) }

// Cot returns the cotangent of r.
func (r Real) Cot() Real { return newOperation(opCot, r.node, nil) }

// Sec returns the secant of r.
func (r Real) Sec() Real { return newOperation(opSec, r.node, nil) }

// Csc returns the cosecant of r.
func (r Real) Csc() Real { return newOperation(opCsc, r.node, nil) }

// Begin returns a fresh iterator over r's refinement sequence, advanced to
// precision 1. Sub-expression cursors are shared with any previous iteration,
// so already-refined children are reused, never re-advanced.
func (r Real) Begin() (*Iterator, error) {
	it := &Iterator{node: r.node, maxPrecision: r.node.itr.maxPrecision}
	if err := it.Increment(); err != nil {
		return nil, err
	}
	return it, nil
}

// MaxPrecision returns the refinement bound of this number's canonical
// cursor.
func (r Real) MaxPrecision() int {
	return r.node.itr.maxPrecision
}

// SetMaxPrecision raises (or lowers) the refinement bound on this number and
// every sub-expression, so a failed evaluation can be retried deeper.
func (r Real) SetMaxPrecision(p int) {
	seen := make(map[*node]bool)
	setMaxPrecision(r.node, p, seen)
}

func setMaxPrecision(n *node, p int, seen map[*node]bool) {
	if n == nil || seen[n] {
		return
	}
	seen[n] = true
	n.itr.maxPrecision = p
	if op, ok := n.num.(*operationNumber); ok {
		setMaxPrecision(op.lhs, p, seen)
		setMaxPrecision(op.rhs, p, seen)
	}
}

// Eval refines until the enclosing interval is no wider than one unit in the
// requested fractional digit, or until maximum precision, and returns it.
func (r Real) Eval(digits int) (exact.Interval, error) {
	it, err := r.Begin()
	if err != nil {
		return exact.Interval{}, err
	}
	target := exact.Ulp(digits)
	for exact.Cmp(it.interval.Width(), target) > 0 && it.precision < it.maxPrecision {
		if err := it.Increment(); err != nil {
			return exact.Interval{}, err
		}
	}
	return it.Interval(), nil
}

// String renders the expression structure, not its value.
func (r Real) String() string {
	return formatNode(r.node)
}

func formatNode(n *node) string {
	switch num := n.num.(type) {
	case *explicitNumber:
		return num.value.String()
	case *algorithmNumber:
		return "{algorithmic}"
	case *rationalNumber:
		return fmt.Sprintf("%s/%s", num.num, num.den)
	case *operationNumber:
		if num.op.unary() {
			return fmt.Sprintf("%s(%s)", num.op, formatNode(num.lhs))
		}
		return fmt.Sprintf("(%s %s %s)", formatNode(num.lhs), num.op, formatNode(num.rhs))
	default:
		return "{invalid}"
	}
}
