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

// Package idnaenc implements weburl.IDNEncoder on top of
// golang.org/x/net/idna, keeping Unicode-to-ASCII host conversion out of
// the core URL parser: the parser only ever sees the ASCII form a caller
// chooses to hand it.
package idnaenc

import "golang.org/x/net/idna"

// Encoder converts Unicode host labels to their ASCII (punycode) form
// using an x/net/idna Profile. The zero value uses idna.Lookup, the
// profile the WHATWG URL standard itself specifies for host parsing.
type Encoder struct {
	profile *idna.Profile
}

// New returns an Encoder using idna.Lookup, the profile that rejects
// invalid labels rather than silently mapping them.
func New() Encoder {
	return Encoder{profile: idna.Lookup}
}

// NewWithProfile returns an Encoder using a caller-chosen profile, e.g.
// idna.Registration for stricter registration-time validation.
func NewWithProfile(profile *idna.Profile) Encoder {
	return Encoder{profile: profile}
}

// ToASCII converts host to its ASCII-compatible form. A host that is
// already all-ASCII is validated and returned unchanged.
func (e Encoder) ToASCII(host string) (string, error) {
	profile := e.profile
	if profile == nil {
		profile = idna.Lookup
	}
	return profile.ToASCII(host)
}
