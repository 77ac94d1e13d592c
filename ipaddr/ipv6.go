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

import "github.com/jplu/netaddr/internal/addrtext"

const ipv6MaxPrefix = 128

// IPv6Octets is the 16-byte presentation-order form of an IPv6 address.
type IPv6Octets = [16]byte

// Scope is an IPv6 address scope, used both standalone (Scope method) and
// as the low nibble of a multicast address's second byte.
type Scope uint8

const (
	ScopeNodeLocal      Scope = 0
	ScopeInterfaceLocal Scope = 1
	ScopeLinkLocal      Scope = 2
	ScopeRealmLocal     Scope = 3
	ScopeAdminLocal     Scope = 4
	ScopeSiteLocal      Scope = 5
	ScopeOrgLocal       Scope = 8
	ScopeGlobal         Scope = 14
)

// IPv6 is a 128-bit IPv6 address paired with an optional CIDR prefix
// length. The zero value is ::/0: its prefix byte is 0, so HasPrefix and
// IsValid both report true.
//
// prefix follows the same packing scheme as IPv4.prefix, scaled to
// IPv6's 0-128 prefix range and internal/addrtext.V6Status sentinels.
type IPv6 struct {
	data   IPv6Octets
	prefix uint8
}

// IPv6Loopback is ::1.
func IPv6Loopback() IPv6 {
	return IPv6{data: IPv6Octets{15: 1}, prefix: uint8(addrtext.V6Valid)}
}

// NewIPv6FromOctets builds an address from its 16 bytes, with no prefix.
func NewIPv6FromOctets(octets IPv6Octets) IPv6 {
	return IPv6{data: octets, prefix: uint8(addrtext.V6Valid)}
}

// NewIPv6FromGroups builds an address from eight 16-bit groups, with no
// prefix.
func NewIPv6FromGroups(groups [8]uint16) IPv6 {
	var octets IPv6Octets
	for i, g := range groups {
		octets[2*i] = byte(g >> 8)
		octets[2*i+1] = byte(g & 0xFF)
	}
	return IPv6{data: octets, prefix: uint8(addrtext.V6Valid)}
}

// ParseIPv6 parses an IPv6 address with no trailing "/prefix". On
// failure the returned value's IsValid reports false and Status explains
// why.
func ParseIPv6(s string) IPv6 {
	res := addrtext.ParseV6([]byte(s), addrtext.ParseV6Options{})
	if res.Status != addrtext.V6Valid || res.Consumed != len(s) {
		status := res.Status
		if status == addrtext.V6Valid || status == addrtext.V6ValidSpecial {
			status = addrtext.V6InvalidCharacter
		}
		return IPv6{prefix: uint8(status)}
	}
	return IPv6{data: res.Addr, prefix: uint8(addrtext.V6Valid)}
}

// ParseIPv6Prefix parses an address optionally followed by "/prefix".
func ParseIPv6Prefix(s string) IPv6 {
	res := addrtext.ParseV6CIDR([]byte(s))
	if res.Status != addrtext.V6Valid || res.Consumed != len(s) {
		status := res.Status
		if status == addrtext.V6Valid || status == addrtext.V6ValidSpecial {
			status = addrtext.V6InvalidCharacter
		}
		return IPv6{prefix: uint8(status)}
	}
	v := IPv6{data: res.Addr, prefix: uint8(addrtext.V6Valid)}
	if res.HasPrefix {
		v.prefix = res.Prefix
	}
	return v
}

// String renders the address in its canonical compressed form. An
// invalid address renders as "::" — use Status/IsValid to detect
// failure.
func (v IPv6) String() string { return addrtext.FormatV6(v.data) }

// StringWithPrefix renders the address followed by "/prefix" when one is
// set, otherwise it is identical to String.
func (v IPv6) StringWithPrefix() string {
	if !v.HasPrefix() {
		return v.String()
	}
	return addrtext.FormatV6Prefix(v.data, v.prefix)
}

// Status reports the outcome of the parse that produced v.
func (v IPv6) Status() addrtext.V6Status {
	if v.prefix <= ipv6MaxPrefix {
		return addrtext.V6Valid
	}
	return addrtext.V6Status(v.prefix)
}

// StatusString describes Status in a short sentence.
func (v IPv6) StatusString() string { return v.Status().String() }

// IsValid reports whether v was parsed successfully.
func (v IPv6) IsValid() bool {
	return v.prefix <= ipv6MaxPrefix || v.prefix == uint8(addrtext.V6Valid)
}

// Octets returns the address as sixteen presentation-order bytes.
func (v IPv6) Octets() IPv6Octets { return v.data }

// Groups16 returns the address as eight big-endian 16-bit groups,
// computed on demand from the stored bytes.
func (v IPv6) Groups16() [8]uint16 {
	var g [8]uint16
	for i := range g {
		g[i] = uint16(v.data[2*i])<<8 | uint16(v.data[2*i+1])
	}
	return g
}

// Groups32 returns the address as four big-endian 32-bit groups,
// computed on demand from the stored bytes.
func (v IPv6) Groups32() [4]uint32 {
	var g [4]uint32
	for i := range g {
		o := v.data[4*i : 4*i+4]
		g[i] = uint32(o[0])<<24 | uint32(o[1])<<16 | uint32(o[2])<<8 | uint32(o[3])
	}
	return g
}

// Groups64 returns the address as two big-endian 64-bit groups, computed
// on demand from the stored bytes.
func (v IPv6) Groups64() [2]uint64 {
	var g [2]uint64
	for i := range g {
		o := v.data[8*i : 8*i+8]
		var x uint64
		for _, b := range o {
			x = x<<8 | uint64(b)
		}
		g[i] = x
	}
	return g
}

// Prefix returns the CIDR prefix length last set on v; meaningful only
// when HasPrefix reports true.
func (v IPv6) Prefix() uint8 { return v.prefix }

// HasPrefix reports whether v carries a CIDR prefix length.
func (v IPv6) HasPrefix() bool { return v.prefix <= ipv6MaxPrefix }

// WithPrefix returns a copy of v carrying prefix as its CIDR length. A
// value greater than 128 marks the address invalid and clears its
// octets, matching how an out-of-range prefix invalidates the whole
// value rather than only the prefix field.
func (v IPv6) WithPrefix(prefix uint8) IPv6 {
	if prefix > ipv6MaxPrefix {
		v.data = IPv6Octets{}
		v.prefix = uint8(addrtext.V6InvalidPrefix)
	} else {
		v.prefix = prefix
	}
	return v
}

// ClearPrefix returns a copy of v with no CIDR prefix.
func (v IPv6) ClearPrefix() IPv6 {
	v.prefix = uint8(addrtext.V6Valid)
	return v
}

// Equal reports whether v and other have the same address and prefix.
func (v IPv6) Equal(other IPv6) bool {
	return v.data == other.data && v.prefix == other.prefix
}

// IsZero reports whether every octet of v is zero.
func (v IPv6) IsZero() bool { return v.data == IPv6Octets{} }

// IsUnspecified is an alias for IsZero (the address "::").
func (v IPv6) IsUnspecified() bool { return v.IsZero() }

// IsLoopback reports whether v is ::1 or its v4-mapped equivalent
// ::ffff:127.0.0.1.
func (v IPv6) IsLoopback() bool {
	return v.data == (IPv6Octets{15: 1}) ||
		v.data == (IPv6Octets{10: 0xff, 11: 0xff, 12: 0x7f, 15: 1})
}

// IsLinkLocal reports whether v is in fe80::/10.
func (v IPv6) IsLinkLocal() bool {
	return v.data[0] == 0xfe && v.data[1]&0xc0 == 0x80
}

// IsSiteLocal reports whether v is in the deprecated fec0::/10 block.
func (v IPv6) IsSiteLocal() bool {
	return v.data[0] == 0xfe && v.data[1]&0xc0 == 0xc0
}

// IsMulticast reports whether v is in ff00::/8.
func (v IPv6) IsMulticast() bool { return v.data[0] == 0xff }

// MulticastScope returns the multicast scope nibble of v; only
// meaningful when IsMulticast reports true.
func (v IPv6) MulticastScope() Scope { return Scope(v.data[1] & 0x0f) }

// Scope returns v's address scope: its multicast scope if v is
// multicast, link-local or node-local (loopback) otherwise, and global
// in every other case.
func (v IPv6) Scope() Scope {
	switch {
	case v.IsMulticast():
		return v.MulticastScope()
	case v.IsLinkLocal():
		return ScopeLinkLocal
	case v.IsLoopback():
		return ScopeNodeLocal
	default:
		return ScopeGlobal
	}
}

// IsMulticastGlobal reports whether v is a global-scope multicast
// address.
func (v IPv6) IsMulticastGlobal() bool { return v.IsMulticast() && v.MulticastScope() == ScopeGlobal }

// IsMulticastLinkLocal reports whether v is a link-local-scope multicast
// address.
func (v IPv6) IsMulticastLinkLocal() bool {
	return v.IsMulticast() && v.MulticastScope() == ScopeLinkLocal
}

// IsMulticastNodeLocal reports whether v is a node-local-scope multicast
// address.
func (v IPv6) IsMulticastNodeLocal() bool {
	return v.IsMulticast() && v.MulticastScope() == ScopeNodeLocal
}

// IsMulticastOrgLocal reports whether v is an organization-local-scope
// multicast address.
func (v IPv6) IsMulticastOrgLocal() bool {
	return v.IsMulticast() && v.MulticastScope() == ScopeOrgLocal
}

// IsMulticastSiteLocal reports whether v is a site-local-scope multicast
// address.
func (v IPv6) IsMulticastSiteLocal() bool {
	return v.IsMulticast() && v.MulticastScope() == ScopeSiteLocal
}

// IsV4Mapped reports whether v is "::ffff:a.b.c.d".
func (v IPv6) IsV4Mapped() bool {
	for i := 0; i < 10; i++ {
		if v.data[i] != 0 {
			return false
		}
	}
	return v.data[10] == 0xff && v.data[11] == 0xff
}

// MappedV4 returns the embedded IPv4 address of a v4-mapped v, or an
// invalid IPv4 with all-zero octets if v is not v4-mapped or is not
// valid.
func (v IPv6) MappedV4() IPv4 {
	if !v.IsValid() || !v.IsV4Mapped() {
		return IPv4{prefix: uint8(addrtext.V4InvalidCharacter)}
	}
	return NewIPv4(v.data[12], v.data[13], v.data[14], v.data[15])
}

// IsPrivate reports whether v is private per RFC 1918 (via an embedded
// private IPv4), loopback, or in the unique-local fc00::/7 block per RFC
// 4193.
func (v IPv6) IsPrivate() bool {
	v4 := v.MappedV4()
	if !v4.IsZero() && v4.IsPrivate() {
		return true
	}
	return v.IsLoopback() || v.startsWithBytes([]byte{0xfc, 0x00}, 7)
}

// IsUniqueLocal is an alias for the fc00::/7 portion of IsPrivate,
// matching RFC 4193's own name for the block.
func (v IPv6) IsUniqueLocal() bool { return v.startsWithBytes([]byte{0xfc, 0x00}, 7) }

// IsLinkLocalAllNodesMulticast reports whether v is ff02::1.
func (v IPv6) IsLinkLocalAllNodesMulticast() bool {
	return v.data == (IPv6Octets{0: 0xff, 1: 0x02, 15: 0x01})
}

// IsLinkLocalAllRoutersMulticast reports whether v is ff02::2.
func (v IPv6) IsLinkLocalAllRoutersMulticast() bool {
	return v.data == (IPv6Octets{0: 0xff, 1: 0x02, 15: 0x02})
}

// IsBroadcast reports whether v is the link-local broadcast address
// ff02::1, the closest IPv6 analogue of an IPv4 broadcast address.
func (v IPv6) IsBroadcast() bool { return v.IsLinkLocalAllNodesMulticast() }

// IsRoutable reports whether v falls in the global unicast block
// 2000::/3, or is a global-scope multicast address.
func (v IPv6) IsRoutable() bool {
	return v.startsWithBytes([]byte{0x20, 0x00}, 3) || (v.IsMulticast() && v.MulticastScope() == ScopeGlobal)
}

// IsNonroutable reports the negation of IsRoutable.
func (v IPv6) IsNonroutable() bool { return !v.IsRoutable() }

// IsSubnetRouterAnycast reports whether v's interface identifier (the
// low 64 bits) is all zero, the RFC 4291 Subnet-Router anycast form.
func (v IPv6) IsSubnetRouterAnycast() bool {
	for i := 8; i < 16; i++ {
		if v.data[i] != 0 {
			return false
		}
	}
	return true
}

// startsWithBytes reports whether v's leading prefix bits match the
// leading bits of pattern, up to prefix bits.
func (v IPv6) startsWithBytes(pattern []byte, prefix int) bool {
	masked := v.Mask(prefix).data
	for i, b := range pattern {
		if masked[i] != b {
			return false
		}
	}
	return true
}

// StartsWith reports whether v and other agree on their leading prefix
// bits, per each value's own masking.
func (v IPv6) StartsWith(other IPv6, prefix int) bool {
	return v.Mask(prefix).data == other.Mask(prefix).data
}

// Mask returns v with all but the leading numBits bits cleared to zero.
func (v IPv6) Mask(numBits int) IPv6 {
	if numBits > ipv6MaxPrefix {
		numBits = ipv6MaxPrefix
	}
	if numBits < 0 {
		numBits = 0
	}
	var out IPv6Octets
	fullBytes := numBits / 8
	copy(out[:fullBytes], v.data[:fullBytes])
	if rem := numBits % 8; rem != 0 {
		out[fullBytes] = v.data[fullBytes] & (0xFF << (8 - rem))
	}
	return IPv6{data: out, prefix: v.prefix}
}

// Reversed returns v with its octets in reverse order; the prefix is
// unchanged.
func (v IPv6) Reversed() IPv6 {
	var out IPv6Octets
	for i := range out {
		out[i] = v.data[len(v.data)-1-i]
	}
	return IPv6{data: out, prefix: v.prefix}
}
