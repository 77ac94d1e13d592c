/*
Copyright 2025 Netaddr Authors

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

// Package ascii provides small, allocation-free ASCII string primitives —
// case folding, case-insensitive equality, and hex-digit decoding — shared
// by the ipaddr and weburl packages.
package ascii

// ToLower folds 'A'..'Z' to 'a'..'z' and leaves every other byte untouched.
func ToLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ToUpper folds 'a'..'z' to 'A'..'Z' and leaves every other byte untouched.
func ToUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// FoldSide tells IEqual which side of a comparison, if any, is already
// known to be case-folded, letting it skip redundant ToLower calls.
type FoldSide uint8

const (
	BothUnknown FoldSide = iota
	FirstLowered
	SecondLowered
	FirstUppered
	SecondUppered
	BothLowered
	BothUppered
)

// IEqual reports whether a and b are equal, ignoring ASCII case. side hints
// which operand, if any, is already folded so IEqual does not re-fold it.
func IEqual(a, b []byte, side FoldSide) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ac, bc := a[i], b[i]
		switch side {
		case FirstLowered:
			// a is already lowercase; only fold b.
			bc = ToLower(bc)
		case SecondLowered:
			ac = ToLower(ac)
		case FirstUppered:
			bc = ToUpper(bc)
		case SecondUppered:
			ac = ToUpper(ac)
		case BothLowered, BothUppered:
			// Both operands are already case-folded; compare verbatim.
		default: // BothUnknown
			ac, bc = ToLower(ac), ToLower(bc)
		}
		if ac != bc {
			return false
		}
	}
	return true
}

// IEqualString is the string-typed convenience form of IEqual.
func IEqualString(a, b string, side FoldSide) bool {
	return IEqual([]byte(a), []byte(b), side)
}

// IIEqual is IEqual but bytes present in ignore are skipped on either side
// before comparison. It is used to compare URL fragments that may legally
// carry stripped whitespace depending on parse options.
func IIEqual(a, b []byte, ignore func(byte) bool, side FoldSide) bool {
	fa := stripIgnored(a, ignore)
	fb := stripIgnored(b, ignore)
	return IEqual(fa, fb, side)
}

func stripIgnored(s []byte, ignore func(byte) bool) []byte {
	if ignore == nil {
		return s
	}
	out := make([]byte, 0, len(s))
	for _, c := range s {
		if !ignore(c) {
			out = append(out, c)
		}
	}
	return out
}
