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

import "testing"

func TestSockAddrInRoundTrip(t *testing.T) {
	v := ParseIPv4("192.168.1.1")
	sa := v.SockAddrIn(8080)
	if sa.Family != AFInet || sa.Port != 8080 {
		t.Fatalf("sa = %+v", sa)
	}
	got := IPv4FromSockAddrIn(sa)
	if !got.Equal(v.ClearPrefix()) {
		t.Fatalf("got = %v, want %v", got, v)
	}
}

func TestSockAddrIn6RoundTrip(t *testing.T) {
	v := ParseIPv6("2001:db8::1")
	sa := v.SockAddrIn6(443)
	if sa.Family != AFInet6 || sa.Port != 443 {
		t.Fatalf("sa = %+v", sa)
	}
	got := IPv6FromSockAddrIn6(sa)
	if !got.Equal(v.ClearPrefix()) {
		t.Fatalf("got = %v, want %v", got, v)
	}
}

func TestSockAddrStorageRoundTripV4(t *testing.T) {
	a := AddrFromV4(ParseIPv4("10.0.0.1"))
	storage := a.SockAddrStorage(53)
	got := AddrFromSockAddrStorage(storage)
	if !got.IsV4() || got.AsV4().Octets() != a.AsV4().Octets() {
		t.Fatalf("got = %v", got)
	}
}

func TestSockAddrStorageRoundTripV6(t *testing.T) {
	a := AddrFromV6(ParseIPv6("fe80::1"))
	storage := a.SockAddrStorage(53)
	got := AddrFromSockAddrStorage(storage)
	if !got.IsV6() || got.AsV6().Octets() != a.AsV6().Octets() {
		t.Fatalf("got = %v", got)
	}
}

func TestAsNetIPAndBack(t *testing.T) {
	v4 := ParseIPv4("203.0.113.7")
	netIP := v4.AsNetIP()
	back := IPv4FromNetIP(netIP)
	if !back.Equal(v4.ClearPrefix()) {
		t.Fatalf("back = %v, want %v", back, v4)
	}

	v6 := ParseIPv6("2001:db8::cafe")
	netIP6 := v6.AsNetIP()
	back6 := IPv6FromNetIP(netIP6)
	if !back6.Equal(v6.ClearPrefix()) {
		t.Fatalf("back6 = %v, want %v", back6, v6)
	}
}
