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
	"github.com/lazyreal/lazyreal/go/real/exact"
)

type (
	// number is the closed sum over the four representation kinds. Dispatch
	// happens by type switch in the iterator, keeping the operator table in
	// one place.
	number interface {
		isNumber()
	}

	// explicitNumber is a leaf with a fully known finite value.
	explicitNumber struct {
		value exact.Number
	}

	// algorithmNumber is a leaf producing digits on demand. nth returns the
	// n-th significand digit (1-indexed, most significant first) and must be
	// total; returned digits must lie in [0, 9].
	algorithmNumber struct {
		nth      func(n int) uint8
		exponent int
		positive bool
	}

	// rationalNumber is a leaf holding a ratio of two integers.
	rationalNumber struct {
		num exact.Number
		den exact.Number
	}

	// operationNumber is an internal expression node. Unary operators leave
	// rhs nil. Operands are shared: the same node may appear in several
	// expressions.
	operationNumber struct {
		op  opKind
		lhs *node
		rhs *node
	}
)

func (*explicitNumber) isNumber()  {}
func (*algorithmNumber) isNumber() {}
func (*rationalNumber) isNumber()  {}
func (*operationNumber) isNumber() {}

// node couples a number with its canonical precision iterator. Operation
// nodes reference their operands' nodes, so advancing a parent advances the
// shared child cursors.
type node struct {
	num number
	itr Iterator
}

type opKind int8

const (
	opAdd opKind = iota
	opSub
	opMul
	opDiv
	opIntPow
	opExp
	opLog
	opSin
	opCos
	opTan
	opCot
	opSec
	opCsc
)

func (op opKind) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opIntPow:
		return "^"
	case opExp:
		return "exp"
	case opLog:
		return "log"
	case opSin:
		return "sin"
	case opCos:
		return "cos"
	case opTan:
		return "tan"
	case opCot:
		return "cot"
	case opSec:
		return "sec"
	case opCsc:
		return "csc"
	default:
		return "none"
	}
}

// unary reports whether the operator takes a single operand.
func (op opKind) unary() bool {
	switch op {
	case opExp, opLog, opSin, opCos, opTan, opCot, opSec, opCsc:
		return true
	}
	return false
}
