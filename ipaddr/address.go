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

package ipaddr

import (
	"strings"

	"github.com/jplu/netaddr/internal/addrtext"
)

// Addr is an IPv4 or IPv6 address, picked at parse time. The zero value
// holds the zero value of IPv4, 0.0.0.0/0, which reports IsValid true.
type Addr struct {
	v4    IPv4
	v6    IPv6
	isV6  bool
}

// AddrFromV4 wraps an IPv4 address as an Addr.
func AddrFromV4(v IPv4) Addr { return Addr{v4: v} }

// AddrFromV6 wraps an IPv6 address as an Addr.
func AddrFromV6(v IPv6) Addr { return Addr{v6: v, isV6: true} }

// ParseAddr parses s as an IPv4 address first and retries it as IPv6
// when that fails with V4InvalidOctet or when s contains a colon, a byte
// that never appears in a dotted-decimal address. The status alone does
// not catch every IPv6 string: "2001:db8::1" fails as IPv4 with
// V4InvalidOctetRange on its first group, and "1::2" with
// V4TooLittleOctets.
//
// Either way, the returned Addr's Status explains the outcome: once the
// IPv6 retry is made its result is returned, valid or not, and any other
// IPv4 failure (such as "256.1.1.1") is returned as an IPv4 Addr.
func ParseAddr(s string) Addr {
	v4 := ParseIPv4(s)
	if v4.Status() == addrtext.V4InvalidOctet || (!v4.IsValid() && strings.IndexByte(s, ':') >= 0) {
		return AddrFromV6(ParseIPv6(s))
	}
	return AddrFromV4(v4)
}

// ParseAddrPrefix is ParseAddr with support for a trailing "/prefix".
func ParseAddrPrefix(s string) Addr {
	v4 := ParseIPv4Prefix(s)
	if v4.Status() == addrtext.V4InvalidOctet || (!v4.IsValid() && strings.IndexByte(s, ':') >= 0) {
		return AddrFromV6(ParseIPv6Prefix(s))
	}
	return AddrFromV4(v4)
}

// IsV4 reports whether a holds an IPv4 address.
func (a Addr) IsV4() bool { return !a.isV6 }

// IsV6 reports whether a holds an IPv6 address.
func (a Addr) IsV6() bool { return a.isV6 }

// AsV4 returns the IPv4 address held by a; the zero IPv4 value if a
// holds an IPv6 address.
func (a Addr) AsV4() IPv4 { return a.v4 }

// AsV6 returns the IPv6 address held by a; the zero IPv6 value if a
// holds an IPv4 address.
func (a Addr) AsV6() IPv6 { return a.v6 }

// String renders the held address in its own textual form.
func (a Addr) String() string {
	if a.isV6 {
		return a.v6.String()
	}
	return a.v4.String()
}

// StringWithPrefix renders the held address with its CIDR prefix, if
// any.
func (a Addr) StringWithPrefix() string {
	if a.isV6 {
		return a.v6.StringWithPrefix()
	}
	return a.v4.StringWithPrefix()
}

// IsValid reports whether the held address parsed successfully.
func (a Addr) IsValid() bool {
	if a.isV6 {
		return a.v6.IsValid()
	}
	return a.v4.IsValid()
}

// IsZero reports whether every octet of the held address is zero.
func (a Addr) IsZero() bool {
	if a.isV6 {
		return a.v6.IsZero()
	}
	return a.v4.IsZero()
}

// HasPrefix reports whether the held address carries a CIDR prefix.
func (a Addr) HasPrefix() bool {
	if a.isV6 {
		return a.v6.HasPrefix()
	}
	return a.v4.HasPrefix()
}

// Prefix returns the held address's CIDR prefix length; meaningful only
// when HasPrefix reports true.
func (a Addr) Prefix() uint8 {
	if a.isV6 {
		return a.v6.Prefix()
	}
	return a.v4.Prefix()
}

// IsLoopback reports whether the held address is a loopback address.
func (a Addr) IsLoopback() bool {
	if a.isV6 {
		return a.v6.IsLoopback()
	}
	return a.v4.IsLoopback()
}

// IsMulticast reports whether the held address is a multicast address.
func (a Addr) IsMulticast() bool {
	if a.isV6 {
		return a.v6.IsMulticast()
	}
	return a.v4.IsMulticast()
}

// IsPrivate reports whether the held address is a private-use address.
func (a Addr) IsPrivate() bool {
	if a.isV6 {
		return a.v6.IsPrivate()
	}
	return a.v4.IsPrivate()
}

// IsBroadcast reports whether the held address is a broadcast address.
func (a Addr) IsBroadcast() bool {
	if a.isV6 {
		return a.v6.IsBroadcast()
	}
	return a.v4.IsBroadcast()
}

// IsNonroutable reports whether the held address is non-routable.
func (a Addr) IsNonroutable() bool {
	if a.isV6 {
		return a.v6.IsNonroutable()
	}
	return a.v4.IsNonroutable()
}

// Equal reports whether a and other hold the same address family and
// value. An IPv4 Addr is never equal to an IPv6 Addr, even for a
// v4-mapped address — use AsV6().MappedV4() to compare across families.
func (a Addr) Equal(other Addr) bool {
	if a.isV6 != other.isV6 {
		return false
	}
	if a.isV6 {
		return a.v6.Equal(other.v6)
	}
	return a.v4.Equal(other.v4)
}

// Status reports the combined IPv4/IPv6 parse status of the held
// address, exactly as webpp's original ip_address_status enumerates it:
// a single byte that is a valid marker (and, via Prefix, doubles as a
// CIDR length) or one of the shared error codes.
func (a Addr) Status() AddrStatus {
	prefix := a.Prefix()
	if prefix <= ipv6MaxPrefix {
		return AddrValid
	}
	return AddrStatus(prefix)
}

// AddrStatus is the parse outcome of an Addr, unifying V4Status and
// V6Status under the error codes they share.
type AddrStatus uint8

const (
	AddrValid                AddrStatus = 255
	AddrTooLittleOctets      AddrStatus = 254
	AddrTooManyOctets        AddrStatus = 253
	AddrInvalidOctetRange    AddrStatus = 252
	AddrInvalidLeadingZero   AddrStatus = 251
	AddrInvalidCharacter     AddrStatus = 250
	AddrBadEnding            AddrStatus = 249
	AddrInvalidOctet         AddrStatus = 248
	AddrInvalidPrefix        AddrStatus = 247
	AddrInvalidColonUsage    AddrStatus = 246
)

// String describes the status in a short sentence.
func (s AddrStatus) String() string {
	switch s {
	case AddrValid:
		return "Valid IP address"
	case AddrTooLittleOctets:
		return "The IPv4 doesn't have enough octets; it should contain exactly 4 octets"
	case AddrTooManyOctets:
		return "The IPv4 has too many octets; it should contain exactly 4 octets"
	case AddrInvalidOctetRange:
		return "At least one of the address's octets is of an invalid range"
	case AddrInvalidLeadingZero:
		return "The IPv4's octet started with a zero which is not valid"
	case AddrInvalidCharacter:
		return "Invalid character found in the address"
	case AddrBadEnding:
		return "The address ended unexpectedly"
	case AddrInvalidOctet:
		return "Found an invalid character in the IPv4 octets"
	case AddrInvalidPrefix:
		return "The address has an invalid prefix"
	case AddrInvalidColonUsage:
		return "The colon is used in the wrong place in the address"
	default:
		return "Unknown address parse status"
	}
}
