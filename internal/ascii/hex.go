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

package ascii

// HexDigitValue returns the numeric value (0..15) of a hex digit byte, or
// sentinel if c is not a hex digit. Both cases are accepted regardless of
// register; callers that only want lowercase hex should reject the byte
// themselves when it is in the 'A'..'F' range.
func HexDigitValue(c byte, sentinel int) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return sentinel
	}
}

// DigitValue returns the numeric value (0..9) of a decimal digit byte, or
// sentinel if c is not a decimal digit. It is the decimal-only sibling of
// HexDigitValue, with the same sentinel convention; IPv4 octet parsing
// uses both.
func DigitValue(c byte, sentinel int) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return sentinel
}

// IsHexDigit reports whether c is one of '0'..'9', 'a'..'f', 'A'..'F'.
func IsHexDigit(c byte) bool {
	return HexDigitValue(c, -1) != -1
}
