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

// Package addrtext implements the presentation<->numeric conversion
// engines (pton/ntop) for IPv4 and IPv6 octet arrays. It is the lowest
// layer of the ip address stack: it knows nothing about CIDR semantics,
// classification, or sockets — only how to turn bytes into text and back.
package addrtext

// V4Status is the outcome of an IPv4 pton parse. Values are chosen so a
// V4Status fits in the same uint8 field that, for a valid parse, instead
// holds a CIDR prefix length (0-32): every status value here sits above
// the largest possible prefix, with 255 reserved to mean "valid, no
// prefix was given".
type V4Status uint8

const (
	V4Valid              V4Status = 255
	V4TooLittleOctets    V4Status = 254
	V4TooManyOctets      V4Status = 253
	V4InvalidOctetRange  V4Status = 252
	V4InvalidLeadingZero V4Status = 251
	V4InvalidCharacter   V4Status = 250
	V4BadEnding          V4Status = 249
	V4InvalidOctet       V4Status = 248
	V4InvalidPrefix      V4Status = 247
)

// String returns a short, stable, human-readable sentence describing the
// status, as used by diagnostics (never logged or thrown by this package
// itself).
func (s V4Status) String() string {
	switch s {
	case V4Valid:
		return "Valid IPv4 address"
	case V4TooLittleOctets:
		return "The IPv4 doesn't have enough octets; it should contain exactly 4 octets"
	case V4TooManyOctets:
		return "The IPv4 has too many octets; it should contain exactly 4 octets"
	case V4InvalidOctetRange:
		return "At least one of the IPv4 octets is of an invalid range"
	case V4InvalidLeadingZero:
		return "The IPv4's octet started with a zero which is not valid"
	case V4InvalidCharacter:
		return "Invalid character found in the IPv4"
	case V4BadEnding:
		return "IPv4 ended unexpectedly"
	case V4InvalidOctet:
		return "Found an invalid character in the IPv4 octets"
	case V4InvalidPrefix:
		return "IPv4 has an invalid prefix"
	default:
		return "Unknown IPv4 parse status"
	}
}

// V6Status is the outcome of an IPv6 pton parse. Values are chosen so a
// V6Status fits in the same uint8 field that, for a valid parse, instead
// holds a CIDR prefix length (0-128): every status value here sits above
// the largest possible prefix, with 255 reserved to mean "valid, no
// prefix was given".
type V6Status uint8

const (
	V6Valid             V6Status = 255
	V6InvalidOctetRange V6Status = 252
	V6InvalidCharacter  V6Status = 250
	V6BadEnding         V6Status = 249
	V6InvalidPrefix     V6Status = 247
	V6InvalidColonUsage V6Status = 246
	// V6ValidSpecial means the parse succeeded and stopped at the
	// caller's terminator byte, which the caller is responsible for
	// consuming. It is not part of the original status taxonomy, so it
	// is given a value above the largest IPv6 prefix (128) but clear of
	// every error code above, so it can never be mistaken for either.
	V6ValidSpecial V6Status = 200
)

// String returns a short, stable, human-readable sentence describing the
// status.
func (s V6Status) String() string {
	switch s {
	case V6Valid, V6ValidSpecial:
		return "Valid IPv6 address"
	case V6InvalidOctetRange:
		return "At least one of the IPv6 octets is of an invalid range."
	case V6InvalidColonUsage:
		return "The colon is used in the wrong place in IPv6"
	case V6BadEnding:
		return "The IPv6 ended unexpectedly"
	case V6InvalidCharacter:
		return "Invalid character found in the IPv6"
	case V6InvalidPrefix:
		return "IPv6 has an invalid prefix"
	default:
		return "Unknown IPv6 parse status"
	}
}
