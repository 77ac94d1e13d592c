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

// Package ipaddr implements value types for IPv4 and IPv6 addresses, a
// tagged union over the two (Addr), and the socket address structures
// built on top of them. Text parsing and rendering is delegated to
// internal/addrtext; this package owns classification, CIDR bookkeeping,
// and byte/integer views.
package ipaddr

import "github.com/jplu/netaddr/internal/addrtext"

const ipv4MaxPrefix = 32

// IPv4Octets is the 4-byte presentation-order form of an IPv4 address.
type IPv4Octets = [4]byte

// IPv4 is a 32-bit IPv4 address paired with an optional CIDR prefix
// length. The zero value is 0.0.0.0/0: its prefix byte is 0, so
// HasPrefix and IsValid both report true.
//
// prefix packs three things into one byte, following the scheme of
// internal/addrtext.V4Status: a value in [0, 32] is a prefix length, 255
// means "valid address, no prefix given", and anything else is the
// addrtext.V4Status that explains why parsing failed.
type IPv4 struct {
	data   uint32
	prefix uint8
}

// IPv4Any is 0.0.0.0.
func IPv4Any() IPv4 { return IPv4{} }

// IPv4Loopback is 127.0.0.1.
func IPv4Loopback() IPv4 { return IPv4{data: 0x7F000001, prefix: uint8(addrtext.V4Valid)} }

// IPv4Broadcast is 255.255.255.255.
func IPv4Broadcast() IPv4 { return IPv4{data: 0xFFFFFFFF, prefix: uint8(addrtext.V4Valid)} }

// NewIPv4 builds an address from its four octets, with no prefix.
func NewIPv4(a, b, c, d byte) IPv4 {
	return IPv4{data: octetsToUint32(IPv4Octets{a, b, c, d}), prefix: uint8(addrtext.V4Valid)}
}

// NewIPv4FromOctets builds an address from an octet array, with no prefix.
func NewIPv4FromOctets(octets IPv4Octets) IPv4 {
	return IPv4{data: octetsToUint32(octets), prefix: uint8(addrtext.V4Valid)}
}

// NewIPv4FromInteger builds an address from its big-endian uint32 form.
func NewIPv4FromInteger(v uint32) IPv4 {
	return IPv4{data: v, prefix: uint8(addrtext.V4Valid)}
}

// ParseIPv4 parses a dotted-decimal (optionally octal/hex per-octet)
// address with no trailing "/prefix". On failure the returned value's
// IsValid reports false and Status explains why.
func ParseIPv4(s string) IPv4 {
	res := addrtext.ParseV4([]byte(s), addrtext.ParseV4Options{})
	if res.Status != addrtext.V4Valid || res.Consumed != len(s) {
		status := res.Status
		if res.Status == addrtext.V4Valid {
			status = addrtext.V4InvalidCharacter
		}
		return IPv4{prefix: uint8(status)}
	}
	return IPv4{data: octetsToUint32(res.Octets), prefix: uint8(addrtext.V4Valid)}
}

// ParseIPv4Prefix parses an address optionally followed by "/prefix".
func ParseIPv4Prefix(s string) IPv4 {
	res := addrtext.ParseV4CIDR([]byte(s))
	if res.Status != addrtext.V4Valid || res.Consumed != len(s) {
		status := res.Status
		if status == addrtext.V4Valid {
			status = addrtext.V4InvalidCharacter
		}
		return IPv4{prefix: uint8(status)}
	}
	v := IPv4{data: octetsToUint32(res.Octets), prefix: uint8(addrtext.V4Valid)}
	if res.HasPrefix {
		v.prefix = res.Prefix
	}
	return v
}

func octetsToUint32(o IPv4Octets) uint32 {
	return uint32(o[0])<<24 | uint32(o[1])<<16 | uint32(o[2])<<8 | uint32(o[3])
}

func uint32ToOctets(v uint32) IPv4Octets {
	return IPv4Octets{byte(v >> 24), byte(v >> 16 & 0xFF), byte(v >> 8 & 0xFF), byte(v & 0xFF)}
}

// PrefixFromOctets counts the leading run of set bits in octets, the way
// a subnet mask like 255.255.0.0 is read back as /16.
func PrefixFromOctets(octets IPv4Octets) uint8 {
	return PrefixFromInteger(octetsToUint32(octets))
}

// PrefixFromInteger counts the leading run of set bits in v.
func PrefixFromInteger(v uint32) uint8 {
	var prefix uint8
	for mask := uint32(0x80000000); mask != 0; mask >>= 1 {
		if v&mask != mask {
			return prefix
		}
		prefix++
	}
	return prefix
}

// SubnetFromPrefix renders prefix (clamped to [0, 32]) as a subnet mask.
func SubnetFromPrefix(prefix uint8) uint32 {
	if prefix > ipv4MaxPrefix {
		prefix = ipv4MaxPrefix
	}
	return 0xFFFFFFFF << (ipv4MaxPrefix - prefix)
}

// String renders the address in dotted-decimal form. An invalid address
// renders as "0.0.0.0" — use Status/IsValid to detect failure.
func (v IPv4) String() string {
	return addrtext.FormatV4(uint32ToOctets(v.data))
}

// StringWithPrefix renders the address followed by "/prefix" when one is
// set, otherwise it is identical to String.
func (v IPv4) StringWithPrefix() string {
	if !v.HasPrefix() {
		return v.String()
	}
	return addrtext.FormatV4Prefix(uint32ToOctets(v.data), v.prefix)
}

// Status reports the outcome of the parse that produced v.
func (v IPv4) Status() addrtext.V4Status {
	if v.prefix <= ipv4MaxPrefix {
		return addrtext.V4Valid
	}
	return addrtext.V4Status(v.prefix)
}

// StatusString describes Status in a short sentence.
func (v IPv4) StatusString() string { return v.Status().String() }

// IsValid reports whether v was parsed successfully (a valid address
// carrying either no prefix or a well-formed one).
func (v IPv4) IsValid() bool {
	return v.prefix <= ipv4MaxPrefix || v.prefix == uint8(addrtext.V4Valid)
}

// Integer returns the address as a big-endian uint32.
func (v IPv4) Integer() uint32 { return v.data }

// Octets returns the address as four presentation-order bytes.
func (v IPv4) Octets() IPv4Octets { return uint32ToOctets(v.data) }

// Prefix returns the CIDR prefix length last set on v; meaningful only
// when HasPrefix reports true.
func (v IPv4) Prefix() uint8 { return v.prefix }

// HasPrefix reports whether v carries a CIDR prefix length.
func (v IPv4) HasPrefix() bool { return v.prefix <= ipv4MaxPrefix }

// HasValidPrefix reports whether the prefix set on v, if any, was
// well-formed — false only when an explicit "/prefix" failed to parse.
func (v IPv4) HasValidPrefix() bool { return v.prefix != uint8(addrtext.V4InvalidPrefix) }

// WithPrefix returns a copy of v carrying prefix as its CIDR length.
// A value greater than 32 marks the prefix invalid.
func (v IPv4) WithPrefix(prefix uint8) IPv4 {
	if prefix > ipv4MaxPrefix {
		v.prefix = uint8(addrtext.V4InvalidPrefix)
	} else {
		v.prefix = prefix
	}
	return v
}

// ClearPrefix returns a copy of v with no CIDR prefix.
func (v IPv4) ClearPrefix() IPv4 {
	v.prefix = uint8(addrtext.V4Valid)
	return v
}

// Equal reports whether v and other have the same address and prefix.
func (v IPv4) Equal(other IPv4) bool {
	return v.data == other.data && v.prefix == other.prefix
}

// Compare orders v and other by their 32-bit integer value alone (the
// prefix is not part of the ordering), returning -1, 0, or 1.
func (v IPv4) Compare(other IPv4) int {
	switch {
	case v.data < other.data:
		return -1
	case v.data > other.data:
		return 1
	default:
		return 0
	}
}

// InRange reports whether v falls within [start, finish], inclusive.
func (v IPv4) InRange(start, finish IPv4) bool {
	return v.data >= start.data && v.data <= finish.data
}

// IsInSubnet reports whether v belongs to the subnet described by
// other's address and prefix, ignoring v's own prefix.
func (v IPv4) IsInSubnet(other IPv4) bool {
	mask := SubnetFromPrefix(other.prefix)
	return v.data&mask == other.data&mask
}

// IsLoopback reports whether v is in 127.0.0.0/8.
func (v IPv4) IsLoopback() bool {
	return v.IsInSubnet(IPv4{data: octetsToUint32(IPv4Octets{127, 0, 0, 0}), prefix: 8})
}

// IsLinkLocal reports whether v is in 169.254.0.0/16.
func (v IPv4) IsLinkLocal() bool {
	return v.IsInSubnet(IPv4{data: octetsToUint32(IPv4Octets{169, 254, 0, 0}), prefix: 16})
}

// IsBroadcast reports whether v is exactly 255.255.255.255.
func (v IPv4) IsBroadcast() bool { return v.data == 0xFFFFFFFF }

// IsMulticast reports whether v is in the 224.0.0.0/4 multicast block.
func (v IPv4) IsMulticast() bool { return v.data&0xF0000000 == 0xE0000000 }

// IsPrivate reports whether v falls in one of the RFC 1918 private
// ranges (10/8, 172.16/12, 192.168/16), regardless of v's own prefix.
func (v IPv4) IsPrivate() bool {
	classC := IPv4{data: octetsToUint32(IPv4Octets{192, 168, 0, 0}), prefix: 16}
	classBStart := NewIPv4(172, 16, 0, 0)
	classBFinish := NewIPv4(172, 31, 255, 255)
	classA := IPv4{data: octetsToUint32(IPv4Octets{10, 0, 0, 0}), prefix: 8}
	return v.IsInSubnet(classC) || v.InRange(classBStart, classBFinish) || v.IsInSubnet(classA)
}

// IsPublic reports the negation of IsPrivate.
func (v IPv4) IsPublic() bool { return !v.IsPrivate() }

// IsNonroutable reports whether v is a special-purpose address per RFC
// 6890: unspecified/this-network, the IETF protocol assignments and
// documentation blocks, benchmarking space, and the multicast/reserved
// range, in addition to the private ranges.
func (v IPv4) IsNonroutable() bool {
	a := v.data
	return v.IsPrivate() ||
		a <= 0x00FFFFFF || // 0.0.0.0      - 0.255.255.255
		(a >= 0xC0000000 && a <= 0xC00000FF) || // 192.0.0.0    - 192.0.0.255
		(a >= 0xC0000200 && a <= 0xC00002FF) || // 192.0.2.0    - 192.0.2.255
		(a >= 0xC6120000 && a <= 0xC613FFFF) || // 198.18.0.0   - 198.19.255.255
		(a >= 0xC6336400 && a <= 0xC63364FF) || // 198.51.100.0 - 198.51.100.255
		(a >= 0xCB007100 && a <= 0xCB0071FF) || // 203.0.113.0  - 203.0.113.255
		a >= 0xE0000000 // 224.0.0.0    - 255.255.255.255
}

// IsZero reports whether every octet of v is zero.
func (v IPv4) IsZero() bool { return v.data == 0 }

// Reversed returns v with its octets in reverse order; the prefix is
// unchanged.
func (v IPv4) Reversed() IPv4 {
	o := v.Octets()
	return IPv4{data: octetsToUint32(IPv4Octets{o[3], o[2], o[1], o[0]}), prefix: v.prefix}
}

// Mask returns v with all but the leading numBits bits cleared to zero.
func (v IPv4) Mask(numBits int) IPv4 {
	if numBits > ipv4MaxPrefix {
		numBits = ipv4MaxPrefix
	}
	if numBits < 0 {
		numBits = 0
	}
	return IPv4{data: v.data & (^uint32(0) << (ipv4MaxPrefix - numBits)), prefix: v.prefix}
}

// StartsWith reports whether v and other agree on their leading prefix
// bits, per each value's own masking.
func (v IPv4) StartsWith(other IPv4, prefix int) bool {
	return v.Mask(prefix).data == other.Mask(prefix).data
}
