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

// Package realerrors provides the typed error values reported by precision
// iterators. Every failure carries a Code so callers can branch on the kind
// of failure (and, for the divergence errors, retry with a higher maximum
// precision) without string matching.
package realerrors

import (
	"errors"
	"fmt"
)

// Code identifies a failure kind.
type Code int

// All failure kinds an iterator may report.
const (
	// CodeUnknown is the code of errors that did not originate here.
	CodeUnknown Code = iota
	// CodeInvalidStringNumber: the decimal parser rejected its input.
	CodeInvalidStringNumber
	// CodeDivergentDivision: a divisor interval still contains zero at the
	// iterator's maximum precision.
	CodeDivergentDivision
	// CodeNonIntegralExponent: an integer-power exponent has a nonzero
	// fractional part at full precision.
	CodeNonIntegralExponent
	// CodeNegativeExponent: integer powers with negative exponents are not
	// supported.
	CodeNegativeExponent
	// CodeLogDomain: a logarithm operand's upper bound is not positive, or
	// its lower bound could not be separated from zero in time.
	CodeLogDomain
	// CodeMaxPrecisionTrigonometric: a trigonometric operand could not be
	// separated from a pole within the maximum precision.
	CodeMaxPrecisionTrigonometric
	// CodeNoneOperation: the evaluator reached an unrecognized operator.
	CodeNoneOperation
)

func (c Code) String() string {
	switch c {
	case CodeInvalidStringNumber:
		return "invalid_string_number"
	case CodeDivergentDivision:
		return "divergent_division"
	case CodeNonIntegralExponent:
		return "non_integral_exponent"
	case CodeNegativeExponent:
		return "negative_exponent_unsupported"
	case CodeLogDomain:
		return "log_domain_error"
	case CodeMaxPrecisionTrigonometric:
		return "max_precision_for_trigonometric_function"
	case CodeNoneOperation:
		return "none_operation"
	default:
		return "unknown"
	}
}

type codedError struct {
	code Code
	msg  string
}

func (e *codedError) Error() string {
	return e.code.String() + ": " + e.msg
}

// New returns an error with the given code and message.
func New(code Code, msg string) error {
	return &codedError{code: code, msg: msg}
}

// Errorf formats according to a format specifier and returns the string as an
// error carrying the given code.
func Errorf(code Code, format string, args ...any) error {
	return &codedError{code: code, msg: fmt.Sprintf(format, args...)}
}

type wrappedError struct {
	err error
	msg string
}

func (e *wrappedError) Error() string { return e.msg + ": " + e.err.Error() }
func (e *wrappedError) Unwrap() error { return e.err }

// Wrap annotates err with a message, preserving its code. Wrapping nil
// returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{err: err, msg: msg}
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// CodeOf extracts the failure code from anywhere in err's chain, or
// CodeUnknown for foreign errors.
func CodeOf(err error) Code {
	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return CodeUnknown
}
