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

package weburl

// Options controls the strictness of a Parse call. The zero value is
// strict WHATWG behavior: no tolerance, no stripping.
type Options struct {
	// MultipleTrailingEmptyIPv4Octets tolerates any number of trailing
	// '.' in a host before the IPv4 parse attempt, rather than exactly
	// one.
	MultipleTrailingEmptyIPv4Octets bool

	// AllowIPv4EmptyOctets allows an empty octet position inside an
	// IPv4 host ("1..2.3") and records WarnIPv4EmptyOctet instead of
	// failing.
	AllowIPv4EmptyOctets bool

	// StripLeadingC0AndSpace strips leading bytes <= 0x20 from the
	// input before parsing begins.
	StripLeadingC0AndSpace bool

	// StripTabsAndNewlines removes every ASCII tab and newline from the
	// input, anywhere it occurs, before parsing begins.
	StripTabsAndNewlines bool

	// TolerateInvalidSchemeChar downgrades an invalid scheme byte from
	// an error to a WarnInvalidSchemeChar warning; the offending byte
	// is treated as if it belonged to the scheme.
	TolerateInvalidSchemeChar bool

	// IDNEncoder, if set, is consulted by the registered-name host
	// branch: a host it fails to convert to ASCII (punycode) is rejected
	// with ErrRegNameInvalidCharacter. The converted form is not kept;
	// Components.Host still returns the host as written. Left nil, registered-name hosts are
	// passed through unmodified — the Non-goal this library draws
	// around Unicode IDN conversion.
	IDNEncoder IDNEncoder
}

// IDNEncoder converts a Unicode host label sequence to ASCII-compatible
// encoding (punycode), the boundary the core URL parser delegates IDNA
// conversion across. See weburl/idnaenc for an implementation backed by
// golang.org/x/net/idna.
type IDNEncoder interface {
	ToASCII(host string) (string, error)
}

// specialSchemes are the schemes with standard authority semantics
// (scheme "://" authority path ...), per the WHATWG URL standard.
var specialSchemes = map[string]bool{
	"ftp":   true,
	"file":  true,
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// IsSpecialScheme reports whether scheme (already lowercased) is one of
// the schemes with standard authority semantics.
func IsSpecialScheme(scheme string) bool { return specialSchemes[scheme] }
