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

import "fmt"

// Interval is an enclosing pair of exact numbers with Lower <= Upper.
type Interval struct {
	Lower Number
	Upper Number
}

// Positive reports Lower > 0.
func (iv Interval) Positive() bool {
	return !iv.Lower.IsZero() && iv.Lower.IsPositive()
}

// Negative reports Upper < 0.
func (iv Interval) Negative() bool {
	return !iv.Upper.IsZero() && !iv.Upper.IsPositive()
}

// ContainsZero reports whether zero lies in the interval, endpoints
// included.
func (iv Interval) ContainsZero() bool {
	return !iv.Positive() && !iv.Negative()
}

// IsPoint reports whether both bounds coincide.
func (iv Interval) IsPoint() bool {
	return Equal(iv.Lower, iv.Upper)
}

// Width returns Upper - Lower.
func (iv Interval) Width() Number {
	return Sub(iv.Upper, iv.Lower)
}

// Contains reports whether x lies in the interval, endpoints included.
func (iv Interval) Contains(x Number) bool {
	return Cmp(iv.Lower, x) <= 0 && Cmp(x, iv.Upper) <= 0
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s]", iv.Lower, iv.Upper)
}
