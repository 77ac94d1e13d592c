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

// Package weburl implements a WHATWG-flavored URL parser: a state machine
// that walks a byte range and emits a position-tagged Components record
// plus a Status describing how far the parse got. Host parsing dispatches
// to internal/addrtext for IPv4/IPv6 literals.
package weburl

// Phase marks how far a parse progressed. Parse reports PhaseValid for
// every parse that finishes without error, whether or not the input went
// on past the authority; the PhaseValidX values name the phase boundaries
// but Parse does not produce them. A failed parse leaves Phase at its
// zero value, so check HasError first.
type Phase uint8

const (
	PhaseValidAuthority Phase = iota
	PhaseValidPath
	PhaseValidPort
	PhaseValidQueries
	PhaseValidFragment
	PhaseValid
)

func (p Phase) String() string {
	switch p {
	case PhaseValidAuthority:
		return "valid up to the authority"
	case PhaseValidPath:
		return "valid up to the path"
	case PhaseValidPort:
		return "valid up to the port"
	case PhaseValidQueries:
		return "valid up to the query"
	case PhaseValidFragment:
		return "valid up to the fragment"
	case PhaseValid:
		return "valid"
	default:
		return "unknown phase"
	}
}

// Warnings is an independent bitmask of non-fatal conditions noticed
// during a parse that completed anyway.
type Warnings uint8

const (
	// WarnIPv4EmptyOctet marks a host parsed as IPv4 that contained an
	// empty octet position (e.g. "1..2.3") tolerated only because
	// Options.AllowIPv4EmptyOctets was set.
	WarnIPv4EmptyOctet Warnings = 1 << iota
	// WarnInvalidSchemeChar marks a scheme containing a byte outside
	// alnum/+/-/., tolerated only because
	// Options.TolerateInvalidSchemeChar was set.
	WarnInvalidSchemeChar
)

// Has reports whether every bit set in w is also set in the receiver.
func (w Warnings) Has(flag Warnings) bool { return w&flag == flag }

// ErrorCode names why a parse stopped before reaching PhaseValid. The
// zero value, ErrNone, is never reported alongside HasError==true.
type ErrorCode uint8

const (
	ErrNone ErrorCode = iota
	ErrSchemeMissingFollowingSolidus
	ErrIPv6Unclosed
	ErrIPv6CharAfterClosing
	ErrIPTooManyOctets
	ErrIPTooLittleOctets
	ErrIPInvalidCharacter
	ErrIPInvalidOctetRange
	ErrIPInvalidPrefix
	ErrIPBadEnding
	ErrIPInvalidColonUsage
	ErrRegNameInvalidCharacter
	ErrPortOutOfRange
	ErrInvalidSchemeChar
)

func (e ErrorCode) String() string {
	switch e {
	case ErrNone:
		return "no error"
	case ErrSchemeMissingFollowingSolidus:
		return "scheme_missing_following_solidus"
	case ErrIPv6Unclosed:
		return "ipv6_unclosed"
	case ErrIPv6CharAfterClosing:
		return "ipv6_char_after_closing"
	case ErrIPTooManyOctets:
		return "ip_too_many_octets"
	case ErrIPTooLittleOctets:
		return "ip_too_little_octets"
	case ErrIPInvalidCharacter:
		return "ip_invalid_character"
	case ErrIPInvalidOctetRange:
		return "ip_invalid_octet_range"
	case ErrIPInvalidPrefix:
		return "ip_invalid_prefix"
	case ErrIPBadEnding:
		return "ip_bad_ending"
	case ErrIPInvalidColonUsage:
		return "ip_invalid_colon_usage"
	case ErrRegNameInvalidCharacter:
		return "reg_name_invalid_character"
	case ErrPortOutOfRange:
		return "port_out_of_range"
	case ErrInvalidSchemeChar:
		return "invalid_scheme_char"
	default:
		return "unknown_error"
	}
}

// Status is the status/error word attached to every parsed URL: a phase
// marker, an independent warnings bitmask, and — when HasError is set —
// the specific error code that halted the parse.
type Status struct {
	Phase    Phase
	Warnings Warnings
	HasError bool
	Err      ErrorCode
}

// IsValid reports whether the parse reached PhaseValid with no error.
func (s Status) IsValid() bool { return !s.HasError && s.Phase == PhaseValid }

// String renders a short diagnostic sentence: the error code if one is
// set, otherwise the phase reached.
func (s Status) String() string {
	if s.HasError {
		return s.Err.String()
	}
	return s.Phase.String()
}

func fail(code ErrorCode) Status {
	return Status{HasError: true, Err: code}
}
