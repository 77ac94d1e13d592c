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
	"testing"

	"github.com/jplu/netaddr/internal/addrtext"
)

func TestParseIPv6(t *testing.T) {
	v := ParseIPv6("2001:db8::1")
	if !v.IsValid() {
		t.Fatalf("expected valid, status=%v", v.StatusString())
	}
	if v.String() != "2001:db8::1" {
		t.Fatalf("String() = %q", v.String())
	}
}

func TestParseIPv6Invalid(t *testing.T) {
	v := ParseIPv6("1::2::3")
	if v.IsValid() {
		t.Fatal("expected invalid")
	}
	if v.Status() != addrtext.V6InvalidColonUsage {
		t.Fatalf("Status() = %v", v.Status())
	}
}

func TestParseIPv6Prefix(t *testing.T) {
	v := ParseIPv6Prefix("2001:db8::/32")
	if !v.IsValid() || !v.HasPrefix() || v.Prefix() != 32 {
		t.Fatalf("v = %+v", v)
	}
	if v.StringWithPrefix() != "2001:db8::/32" {
		t.Fatalf("StringWithPrefix() = %q", v.StringWithPrefix())
	}
}

func TestIPv6Loopback(t *testing.T) {
	if !IPv6Loopback().IsLoopback() {
		t.Fatal("IPv6Loopback() should be loopback")
	}
	mapped := ParseIPv6("::ffff:127.0.0.1")
	if !mapped.IsLoopback() {
		t.Fatal("v4-mapped loopback should be loopback")
	}
}

func TestIPv6LinkLocalAndSiteLocal(t *testing.T) {
	ll := ParseIPv6("fe80::1")
	if !ll.IsLinkLocal() {
		t.Fatal("fe80::1 should be link-local")
	}
	if ll.IsSiteLocal() {
		t.Fatal("fe80::1 should not be site-local")
	}
	sl := ParseIPv6("fec0::1")
	if !sl.IsSiteLocal() {
		t.Fatal("fec0::1 should be site-local")
	}
	if sl.IsLinkLocal() {
		t.Fatal("fec0::1 should not be link-local")
	}
}

func TestIPv6MulticastScopes(t *testing.T) {
	cases := []struct {
		in    string
		scope Scope
	}{
		{"ff01::1", ScopeInterfaceLocal},
		{"ff02::1", ScopeLinkLocal},
		{"ff05::1", ScopeSiteLocal},
		{"ff08::1", ScopeOrgLocal},
		{"ff0e::1", ScopeGlobal},
	}
	for _, c := range cases {
		v := ParseIPv6(c.in)
		if !v.IsMulticast() {
			t.Fatalf("%q should be multicast", c.in)
		}
		if got := v.MulticastScope(); got != c.scope {
			t.Errorf("%q.MulticastScope() = %v, want %v", c.in, got, c.scope)
		}
	}
}

func TestIPv6AllNodesAllRouters(t *testing.T) {
	allNodes := ParseIPv6("ff02::1")
	if !allNodes.IsLinkLocalAllNodesMulticast() {
		t.Fatal("ff02::1 should be all-nodes multicast")
	}
	if !allNodes.IsBroadcast() {
		t.Fatal("ff02::1 should report as IsBroadcast")
	}
	allRouters := ParseIPv6("ff02::2")
	if !allRouters.IsLinkLocalAllRoutersMulticast() {
		t.Fatal("ff02::2 should be all-routers multicast")
	}
}

func TestIPv6V4Mapped(t *testing.T) {
	v := ParseIPv6("::ffff:192.168.1.1")
	if !v.IsV4Mapped() {
		t.Fatal("expected v4-mapped")
	}
	v4 := v.MappedV4()
	if v4.String() != "192.168.1.1" {
		t.Fatalf("MappedV4() = %q", v4.String())
	}
	plain := ParseIPv6("2001:db8::1")
	if plain.IsV4Mapped() {
		t.Fatal("2001:db8::1 should not be v4-mapped")
	}
	if !plain.MappedV4().IsZero() {
		t.Fatal("MappedV4() of a non-mapped address should be zero")
	}
}

func TestIPv6Private(t *testing.T) {
	cases := []struct {
		in      string
		private bool
	}{
		{"fc00::1", true},
		{"fd12:3456::1", true},
		{"::1", true},
		{"::ffff:10.0.0.1", true},
		{"::ffff:8.8.8.8", false},
		{"2001:db8::1", false},
	}
	for _, c := range cases {
		v := ParseIPv6(c.in)
		if got := v.IsPrivate(); got != c.private {
			t.Errorf("%q.IsPrivate() = %v, want %v", c.in, got, c.private)
		}
	}
}

func TestIPv6Routable(t *testing.T) {
	cases := []struct {
		in        string
		routable  bool
	}{
		{"2001:db8::1", true},
		{"2000::1", true},
		{"fe80::1", false},
		{"ff0e::1", true},  // global multicast
		{"ff02::1", false}, // link-local multicast
	}
	for _, c := range cases {
		v := ParseIPv6(c.in)
		if got := v.IsRoutable(); got != c.routable {
			t.Errorf("%q.IsRoutable() = %v, want %v", c.in, got, c.routable)
		}
		if got := v.IsNonroutable(); got == c.routable {
			t.Errorf("%q.IsNonroutable() should be !IsRoutable()", c.in)
		}
	}
}

func TestIPv6SubnetRouterAnycast(t *testing.T) {
	v := ParseIPv6("2001:db8::")
	if !v.IsSubnetRouterAnycast() {
		t.Fatal("2001:db8:: should be a subnet-router anycast address")
	}
	v2 := ParseIPv6("2001:db8::1")
	if v2.IsSubnetRouterAnycast() {
		t.Fatal("2001:db8::1 should not be a subnet-router anycast address")
	}
}

func TestIPv6Mask(t *testing.T) {
	v := ParseIPv6("2001:db8:1234::5678")
	masked := v.Mask(32)
	if masked.String() != "2001:db8::" {
		t.Fatalf("Mask(32) = %q", masked.String())
	}
}

func TestIPv6MaskPreservesNoPrefix(t *testing.T) {
	v := ParseIPv6("2001:db8:1234::5678")
	masked := v.Mask(32)
	if masked.HasPrefix() {
		t.Fatalf("Mask(32).HasPrefix() = true, want false")
	}
	if masked.StringWithPrefix() != "2001:db8::" {
		t.Fatalf("Mask(32).StringWithPrefix() = %q, want %q", masked.StringWithPrefix(), "2001:db8::")
	}
}

func TestIPv6MaskPreservesExplicitPrefix(t *testing.T) {
	v := ParseIPv6Prefix("2001:db8:1234::5678/64")
	masked := v.Mask(32)
	if !masked.HasPrefix() || masked.Prefix() != 64 {
		t.Fatalf("Mask(32) prefix = %d, hasPrefix = %v, want 64, true", masked.Prefix(), masked.HasPrefix())
	}
	if masked.StringWithPrefix() != "2001:db8::/64" {
		t.Fatalf("Mask(32).StringWithPrefix() = %q, want %q", masked.StringWithPrefix(), "2001:db8::/64")
	}
}

func TestIPv6StartsWith(t *testing.T) {
	a := ParseIPv6("2001:db8::1")
	b := ParseIPv6("2001:db8::2")
	if !a.StartsWith(b, 64) {
		t.Fatal("expected shared /64 prefix")
	}
	if a.StartsWith(b, 128) {
		t.Fatal("did not expect full match")
	}
}

func TestIPv6Reversed(t *testing.T) {
	v := NewIPv6FromOctets(IPv6Octets{0: 1, 15: 2})
	r := v.Reversed()
	if r.Octets()[0] != 2 || r.Octets()[15] != 1 {
		t.Fatalf("Reversed() octets = %v", r.Octets())
	}
}

func TestIPv6Groups(t *testing.T) {
	v := ParseIPv6("2001:db8::1")
	groups := v.Groups16()
	if groups[0] != 0x2001 || groups[1] != 0x0db8 || groups[7] != 1 {
		t.Fatalf("Groups16() = %v", groups)
	}
	rebuilt := NewIPv6FromGroups(groups)
	if !rebuilt.Equal(v) {
		t.Fatalf("NewIPv6FromGroups round trip mismatch: %v vs %v", rebuilt, v)
	}
}

func TestIPv6IsZero(t *testing.T) {
	if !ParseIPv6("::").IsZero() {
		t.Fatal(":: should be zero")
	}
	if ParseIPv6("::1").IsZero() {
		t.Fatal("::1 should not be zero")
	}
}
