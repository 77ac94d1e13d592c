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

package addrtext

import "testing"

func TestFormatV4(t *testing.T) {
	cases := []struct {
		in   [4]byte
		want string
	}{
		{[4]byte{0, 0, 0, 0}, "0.0.0.0"},
		{[4]byte{127, 0, 0, 1}, "127.0.0.1"},
		{[4]byte{255, 255, 255, 255}, "255.255.255.255"},
	}
	for _, c := range cases {
		if got := FormatV4(c.in); got != c.want {
			t.Errorf("FormatV4(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatV4Prefix(t *testing.T) {
	got := FormatV4Prefix([4]byte{192, 168, 1, 0}, 24)
	want := "192.168.1.0/24"
	if got != want {
		t.Errorf("FormatV4Prefix = %q, want %q", got, want)
	}
}

func TestFormatV6(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"::1", "::1"},
		{"::", "::"},
		{"2001:db8::1", "2001:db8::1"},
		{"1:0:2:3:4:5:6:7", "1:0:2:3:4:5:6:7"},
		{"1:2:3:4:5:6:7:8", "1:2:3:4:5:6:7:8"},
		{"2001:0db8:0000:0000:0000:0000:0000:0001", "2001:db8::1"},
		{"::ffff:192.168.1.1", "::ffff:192.168.1.1"},
	}
	for _, c := range cases {
		parsed := ParseV6([]byte(c.in), ParseV6Options{})
		if parsed.Status != V6Valid {
			t.Fatalf("setup: ParseV6(%q) failed: %v", c.in, parsed.Status)
		}
		if got := FormatV6(parsed.Addr); got != c.want {
			t.Errorf("FormatV6(%q parsed) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatV6LoneZeroGroupNotCollapsed(t *testing.T) {
	addr := [16]byte{0, 1, 0, 0, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7}
	got := FormatV6(addr)
	want := "1:0:2:3:4:5:6:7"
	if got != want {
		t.Errorf("FormatV6 = %q, want %q", got, want)
	}
}

func TestFormatV6Prefix(t *testing.T) {
	parsed := ParseV6([]byte("2001:db8::"), ParseV6Options{})
	got := FormatV6Prefix(parsed.Addr, 32)
	want := "2001:db8::/32"
	if got != want {
		t.Errorf("FormatV6Prefix = %q, want %q", got, want)
	}
}

func TestFormatV6RoundTrip(t *testing.T) {
	inputs := []string{
		"::", "::1", "1::", "1::1", "fe80::1", "2001:db8:0:0:1:0:0:1",
		"ff02::1:ff00:0", "::ffff:10.0.0.1",
	}
	for _, in := range inputs {
		parsed := ParseV6([]byte(in), ParseV6Options{})
		if parsed.Status != V6Valid {
			t.Fatalf("ParseV6(%q) failed: %v", in, parsed.Status)
		}
		text := FormatV6(parsed.Addr)
		reparsed := ParseV6([]byte(text), ParseV6Options{})
		if reparsed.Status != V6Valid || reparsed.Addr != parsed.Addr {
			t.Errorf("round trip %q -> %q did not preserve address", in, text)
		}
	}
}
