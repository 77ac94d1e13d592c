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

// Package charset implements immutable sets of byte values with O(1) or
// O(size) membership queries, depending on representation. A Set is a
// compact list sized to its literal, holding the bytes in the order given
// (it is not sorted) — fast to build and fine for 1-4 element alphabets.
// A Bitmap is a 256-entry lookup table, appropriate whenever a predicate is evaluated more than once per input
// byte.
package charset

// Set is a small, comparison-based byte set built from a literal string or
// a contiguous range. Construction is pure; Contains degrades gracefully
// from a handful of branches (size <= 4) to a linear scan.
type Set struct {
	bytes []byte
}

// New builds a Set containing exactly the bytes of s.
func New(s string) Set {
	return Set{bytes: []byte(s)}
}

// Range builds a Set containing every byte in [lo, hi], inclusive.
func Range(lo, hi byte) Set {
	if hi < lo {
		return Set{}
	}
	bytes := make([]byte, 0, int(hi-lo)+1)
	for c := int(lo); c <= int(hi); c++ {
		bytes = append(bytes, byte(c))
	}
	return Set{bytes: bytes}
}

// Union returns a new Set containing every byte present in any of sets.
func Union(sets ...Set) Set {
	var out []byte
	for _, s := range sets {
		out = append(out, s.bytes...)
	}
	return Set{bytes: out}
}

// Contains reports whether c belongs to the set.
func (s Set) Contains(c byte) bool {
	switch len(s.bytes) {
	case 0:
		return false
	case 1:
		return c == s.bytes[0]
	case 2:
		return c == s.bytes[0] || c == s.bytes[1]
	case 3:
		return c == s.bytes[0] || c == s.bytes[1] || c == s.bytes[2]
	case 4:
		return c == s.bytes[0] || c == s.bytes[1] || c == s.bytes[2] || c == s.bytes[3]
	default:
		for _, b := range s.bytes {
			if b == c {
				return true
			}
		}
		return false
	}
}

// ContainsAll reports whether every byte of data is in the set.
func (s Set) ContainsAll(data []byte) bool {
	for _, c := range data {
		if !s.Contains(c) {
			return false
		}
	}
	return true
}

// ContainsUntil scans data and returns the index of the first byte not in
// the set, or len(data) if every byte matched.
func (s Set) ContainsUntil(data []byte) int {
	for i, c := range data {
		if !s.Contains(c) {
			return i
		}
	}
	return len(data)
}

// Bitmap is a 256-entry boolean table, the right representation whenever a
// predicate is checked more than once per input byte: membership is a
// single array load with no branch chain or length check.
type Bitmap struct {
	table [256]bool
}

// NewBitmap builds a Bitmap from the union of the given sets.
func NewBitmap(sets ...Set) Bitmap {
	var b Bitmap
	for _, s := range sets {
		for _, c := range s.bytes {
			b.table[c] = true
		}
	}
	return b
}

// Contains reports whether c belongs to the bitmap, in O(1).
func (b Bitmap) Contains(c byte) bool {
	return b.table[c]
}

// ContainsAll reports whether every byte of data is in the bitmap.
func (b Bitmap) ContainsAll(data []byte) bool {
	for _, c := range data {
		if !b.table[c] {
			return false
		}
	}
	return true
}

// ContainsUntil scans data and returns the index of the first byte not in
// the bitmap, or len(data) if every byte matched.
func (b Bitmap) ContainsUntil(data []byte) int {
	for i, c := range data {
		if !b.table[c] {
			return i
		}
	}
	return len(data)
}
