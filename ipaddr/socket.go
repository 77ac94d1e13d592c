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
	"net"

	"github.com/jplu/netaddr/internal/addrtext"
)

// Address-family tags, matching the POSIX AF_INET / AF_INET6 values
// embedded in a sockaddr_storage's family byte.
const (
	AFInet  = 2
	AFInet6 = 10
)

// SockAddrIn mirrors the wire layout of POSIX's struct sockaddr_in:
// address family, port, and the 4-byte address. Port holds the value
// passed to IPv4.SockAddrIn as is; it is not byte-swapped.
type SockAddrIn struct {
	Family uint16
	Port   uint16
	Addr   IPv4Octets
}

// SockAddrIn6 mirrors struct sockaddr_in6: address family, port, flow
// label, the 16-byte address, and a scope/zone ID.
type SockAddrIn6 struct {
	Family   uint16
	Port     uint16
	FlowInfo uint32
	Addr     IPv6Octets
	ScopeID  uint32
}

// SockAddrStorage mirrors struct sockaddr_storage: large enough to hold
// either a SockAddrIn or a SockAddrIn6, discriminated by Family.
type SockAddrStorage struct {
	Family uint16
	data   [126]byte // room for the larger of the two payloads
}

// IPv4FromSockAddrIn decodes the address embedded in a SockAddrIn.
func IPv4FromSockAddrIn(s SockAddrIn) IPv4 {
	return NewIPv4FromOctets(s.Addr)
}

// SockAddrIn encodes v and port into a SockAddrIn.
func (v IPv4) SockAddrIn(port uint16) SockAddrIn {
	return SockAddrIn{Family: AFInet, Port: port, Addr: v.Octets()}
}

// IPv6FromSockAddrIn6 decodes the address embedded in a SockAddrIn6.
func IPv6FromSockAddrIn6(s SockAddrIn6) IPv6 {
	return NewIPv6FromOctets(s.Addr)
}

// SockAddrIn6 encodes v and port into a SockAddrIn6.
func (v IPv6) SockAddrIn6(port uint16) SockAddrIn6 {
	return SockAddrIn6{Family: AFInet6, Port: port, Addr: v.Octets()}
}

// AddrFromSockAddrStorage dispatches on storage's family byte to decode
// the embedded address, mirroring sockaddr_storage's role as a
// family-tagged union of sockaddr_in and sockaddr_in6.
func AddrFromSockAddrStorage(storage SockAddrStorage) Addr {
	switch storage.Family {
	case AFInet:
		var octets IPv4Octets
		copy(octets[:], storage.data[2:6])
		return AddrFromV4(NewIPv4FromOctets(octets))
	case AFInet6:
		var octets IPv6Octets
		copy(octets[:], storage.data[6:22])
		return AddrFromV6(NewIPv6FromOctets(octets))
	default:
		return AddrFromV4(IPv4{prefix: uint8(addrtext.V4InvalidCharacter)})
	}
}

// SockAddrStorage encodes a into a family-tagged SockAddrStorage.
func (a Addr) SockAddrStorage(port uint16) SockAddrStorage {
	var storage SockAddrStorage
	if a.IsV6() {
		storage.Family = AFInet6
		in6 := a.AsV6().SockAddrIn6(port)
		storage.data[0] = byte(in6.Port >> 8)
		storage.data[1] = byte(in6.Port)
		copy(storage.data[6:22], in6.Addr[:])
		return storage
	}
	storage.Family = AFInet
	in := a.AsV4().SockAddrIn(port)
	storage.data[0] = byte(in.Port >> 8)
	storage.data[1] = byte(in.Port)
	copy(storage.data[2:6], in.Addr[:])
	return storage
}

// AsNetIP converts v to the standard library's net.IP representation
// (net.IPv4's 16-byte v4-in-v6 form), the conversion a Go caller reaches for when handing an
// address to net.Dial or similar.
func (v IPv4) AsNetIP() net.IP {
	o := v.Octets()
	return net.IPv4(o[0], o[1], o[2], o[3])
}

// IPv4FromNetIP builds an IPv4 from a net.IP holding a 4-byte (or
// 4-in-16 mapped) address. An address that isn't an IPv4 form produces
// an invalid IPv4.
func IPv4FromNetIP(ip net.IP) IPv4 {
	v4 := ip.To4()
	if v4 == nil {
		return IPv4{prefix: uint8(addrtext.V4InvalidCharacter)}
	}
	return NewIPv4FromOctets(IPv4Octets{v4[0], v4[1], v4[2], v4[3]})
}

// AsNetIP converts v to the standard library's net.IP representation
// (16-byte form).
func (v IPv6) AsNetIP() net.IP {
	o := v.Octets()
	return net.IP(o[:])
}

// IPv6FromNetIP builds an IPv6 from a net.IP holding a 16-byte address.
// A 4-byte address is lifted through its net.IP v4-in-v6 form; any
// other length produces an invalid IPv6.
func IPv6FromNetIP(ip net.IP) IPv6 {
	v16 := ip.To16()
	if v16 == nil {
		return IPv6{prefix: uint8(addrtext.V6InvalidCharacter)}
	}
	var octets IPv6Octets
	copy(octets[:], v16)
	return NewIPv6FromOctets(octets)
}
