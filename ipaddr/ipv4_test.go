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

func TestParseIPv4(t *testing.T) {
	v := ParseIPv4("192.168.1.1")
	if !v.IsValid() {
		t.Fatalf("expected valid, status=%v", v.StatusString())
	}
	if v.String() != "192.168.1.1" {
		t.Fatalf("String() = %q", v.String())
	}
	if v.Octets() != (IPv4Octets{192, 168, 1, 1}) {
		t.Fatalf("Octets() = %v", v.Octets())
	}
}

func TestParseIPv4Invalid(t *testing.T) {
	v := ParseIPv4("256.1.1.1")
	if v.IsValid() {
		t.Fatal("expected invalid")
	}
	if v.Status() != addrtext.V4InvalidOctetRange {
		t.Fatalf("Status() = %v", v.Status())
	}
}

func TestParseIPv4Prefix(t *testing.T) {
	v := ParseIPv4Prefix("10.0.0.0/8")
	if !v.IsValid() || !v.HasPrefix() || v.Prefix() != 8 {
		t.Fatalf("v = %+v", v)
	}
	if v.StringWithPrefix() != "10.0.0.0/8" {
		t.Fatalf("StringWithPrefix() = %q", v.StringWithPrefix())
	}
}

func TestIPv4Classification(t *testing.T) {
	cases := []struct {
		in         string
		loopback   bool
		linkLocal  bool
		private    bool
		multicast  bool
		broadcast  bool
		nonroutable bool
	}{
		{"127.0.0.1", true, false, false, false, false, true},
		{"169.254.1.1", false, true, false, false, false, false},
		{"192.168.1.1", false, false, true, false, false, true},
		{"10.1.2.3", false, false, true, false, false, true},
		{"172.16.5.5", false, false, true, false, false, true},
		{"8.8.8.8", false, false, false, false, false, false},
		{"224.0.0.1", false, false, false, true, false, true},
		{"255.255.255.255", false, false, false, false, true, true},
	}
	for _, c := range cases {
		v := ParseIPv4(c.in)
		if !v.IsValid() {
			t.Fatalf("ParseIPv4(%q) invalid", c.in)
		}
		if got := v.IsLoopback(); got != c.loopback {
			t.Errorf("%q.IsLoopback() = %v, want %v", c.in, got, c.loopback)
		}
		if got := v.IsLinkLocal(); got != c.linkLocal {
			t.Errorf("%q.IsLinkLocal() = %v, want %v", c.in, got, c.linkLocal)
		}
		if got := v.IsPrivate(); got != c.private {
			t.Errorf("%q.IsPrivate() = %v, want %v", c.in, got, c.private)
		}
		if got := v.IsMulticast(); got != c.multicast {
			t.Errorf("%q.IsMulticast() = %v, want %v", c.in, got, c.multicast)
		}
		if got := v.IsBroadcast(); got != c.broadcast {
			t.Errorf("%q.IsBroadcast() = %v, want %v", c.in, got, c.broadcast)
		}
		if got := v.IsNonroutable(); got != c.nonroutable {
			t.Errorf("%q.IsNonroutable() = %v, want %v", c.in, got, c.nonroutable)
		}
	}
}

func TestIPv4PrefixFromOctets(t *testing.T) {
	cases := []struct {
		octets IPv4Octets
		want   uint8
	}{
		{IPv4Octets{255, 255, 255, 0}, 24},
		{IPv4Octets{255, 255, 0, 0}, 16},
		{IPv4Octets{255, 255, 255, 255}, 32},
		{IPv4Octets{0, 0, 0, 0}, 0},
	}
	for _, c := range cases {
		if got := PrefixFromOctets(c.octets); got != c.want {
			t.Errorf("PrefixFromOctets(%v) = %d, want %d", c.octets, got, c.want)
		}
	}
}

func TestIPv4Mask(t *testing.T) {
	v := ParseIPv4("192.168.1.200")
	masked := v.Mask(24)
	if masked.String() != "192.168.1.0" {
		t.Fatalf("Mask(24) = %q", masked.String())
	}
}

func TestIPv4MaskPreservesNoPrefix(t *testing.T) {
	v := ParseIPv4("10.1.2.3")
	masked := v.Mask(16)
	if masked.HasPrefix() {
		t.Fatalf("Mask(16).HasPrefix() = true, want false")
	}
	if masked.StringWithPrefix() != "10.1.0.0" {
		t.Fatalf("Mask(16).StringWithPrefix() = %q, want %q", masked.StringWithPrefix(), "10.1.0.0")
	}
}

func TestIPv4MaskPreservesExplicitPrefix(t *testing.T) {
	v := ParseIPv4Prefix("10.1.2.3/24")
	masked := v.Mask(16)
	if !masked.HasPrefix() || masked.Prefix() != 24 {
		t.Fatalf("Mask(16) prefix = %d, hasPrefix = %v, want 24, true", masked.Prefix(), masked.HasPrefix())
	}
	if masked.StringWithPrefix() != "10.1.0.0/24" {
		t.Fatalf("Mask(16).StringWithPrefix() = %q, want %q", masked.StringWithPrefix(), "10.1.0.0/24")
	}
}

func TestIPv4Reversed(t *testing.T) {
	v := NewIPv4(1, 2, 3, 4)
	if got := v.Reversed().String(); got != "4.3.2.1" {
		t.Fatalf("Reversed() = %q", got)
	}
}

func TestIPv4Compare(t *testing.T) {
	a := NewIPv4(1, 0, 0, 0)
	b := NewIPv4(1, 0, 0, 1)
	if a.Compare(b) >= 0 {
		t.Fatal("expected a < b")
	}
	if b.Compare(a) <= 0 {
		t.Fatal("expected b > a")
	}
	if a.Compare(a) != 0 {
		t.Fatal("expected equal")
	}
}

func TestIPv4StartsWith(t *testing.T) {
	a := ParseIPv4("192.168.1.1")
	b := ParseIPv4("192.168.1.200")
	if !a.StartsWith(b, 24) {
		t.Fatal("expected shared /24 prefix")
	}
	if a.StartsWith(b, 32) {
		t.Fatal("did not expect full match")
	}
}
