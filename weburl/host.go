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

import (
	"github.com/jplu/netaddr/internal/addrtext"
	"github.com/jplu/netaddr/internal/charset"
)

var hostTerminators = charset.NewBitmap(charset.New("/?#:"))

// ipv6Host parses a bracketed IPv6 literal starting at the '[' under
// p.pos. It hands ']' to addrtext.ParseV6 as a stop byte so the pton
// engine, not this package, owns deciding where a valid IPv6 address
// ends.
func (p *parser) ipv6Host() state {
	start := p.pos
	p.pos++ // consume '['
	rest := p.input[p.pos:]
	res := addrtext.ParseV6([]byte(rest), addrtext.ParseV6Options{Stop: addrtext.NewStopSet(']')})
	switch res.Status {
	case addrtext.V6ValidSpecial:
		p.pos += res.Consumed
		if p.pos >= len(p.input) || p.input[p.pos] != ']' {
			return p.fail(ErrIPv6Unclosed)
		}
		p.pos++ // consume ']'
		p.c.HostStart = start
		p.c.HostEnd = p.pos
		return stateAfterHost
	case addrtext.V6Valid:
		// A structurally complete address that never reached ']': the
		// bracket was never closed.
		return p.fail(ErrIPv6Unclosed)
	case addrtext.V6InvalidCharacter:
		if res.Consumed < len(rest) && rest[res.Consumed] == '/' {
			// Same "valid address, stopped at an unrecognized
			// terminator" case as V6Valid above — '/' just happens to
			// be the byte ParseV6 defers to its CIDR wrapper.
			return p.fail(ErrIPv6Unclosed)
		}
		return p.fail(ErrIPInvalidCharacter)
	default:
		return p.translateV6Error(res.Status)
	}
}

func (p *parser) translateV6Error(status addrtext.V6Status) state {
	switch status {
	case addrtext.V6InvalidColonUsage:
		return p.fail(ErrIPInvalidColonUsage)
	case addrtext.V6InvalidOctetRange:
		return p.fail(ErrIPInvalidOctetRange)
	case addrtext.V6BadEnding:
		return p.fail(ErrIPv6Unclosed)
	default:
		return p.fail(ErrIPInvalidCharacter)
	}
}

// regNameOrIPv4Host scans the host substring up to the next authority
// terminator, then follows the WHATWG "ends in a number" rule to decide
// whether it should be reparsed as an IPv4 literal.
func (p *parser) regNameOrIPv4Host() state {
	start := p.pos
	for p.pos < len(p.input) && !hostTerminators.Contains(p.input[p.pos]) {
		p.pos++
	}
	host := p.input[start:p.pos]
	p.c.HostStart = start
	p.c.HostEnd = p.pos

	if endsInANumber(host, p.opts) {
		// Parse without the trailing '.' run that endsInANumber trimmed.
		v4host := host
		for trimmed := 0; len(v4host) > 0 && v4host[len(v4host)-1] == '.'; trimmed++ {
			if trimmed >= 1 && !p.opts.MultipleTrailingEmptyIPv4Octets {
				break
			}
			v4host = v4host[:len(v4host)-1]
		}
		v4opts := addrtext.ParseV4Options{AllowEmptyOctets: p.opts.AllowIPv4EmptyOctets}
		res := addrtext.ParseV4([]byte(v4host), v4opts)
		if res.Status != addrtext.V4Valid || res.Consumed != len(v4host) {
			return p.translateV4Error(res.Status)
		}
		if p.opts.AllowIPv4EmptyOctets && hostHasEmptyOctet(host) {
			p.c.Status.Warnings |= WarnIPv4EmptyOctet
		}
		return stateAfterHost
	}

	if p.opts.IDNEncoder != nil {
		if _, err := p.opts.IDNEncoder.ToASCII(host); err != nil {
			return p.fail(ErrRegNameInvalidCharacter)
		}
	}
	return stateAfterHost
}

func (p *parser) translateV4Error(status addrtext.V4Status) state {
	switch status {
	case addrtext.V4TooManyOctets:
		return p.fail(ErrIPTooManyOctets)
	case addrtext.V4TooLittleOctets:
		return p.fail(ErrIPTooLittleOctets)
	case addrtext.V4InvalidOctetRange:
		return p.fail(ErrIPInvalidOctetRange)
	case addrtext.V4BadEnding:
		return p.fail(ErrIPBadEnding)
	default:
		return p.fail(ErrIPInvalidCharacter)
	}
}

func hostHasEmptyOctet(host string) bool {
	for i := 0; i+1 < len(host); i++ {
		if host[i] == '.' && host[i+1] == '.' {
			return true
		}
	}
	return len(host) > 0 && host[0] == '.'
}

// endsInANumber implements the WHATWG "ends in a number" check: trim
// trailing empty '.'-separated segments (as many as Options allows),
// then test the final segment against ^[0-9]+$ or ^0[xX][0-9a-fA-F]+$.
// Any other shape for the final segment — in particular, any segment
// with letters that isn't a "0x..." form — routes the whole host to
// registered-name parsing instead.
func endsInANumber(host string, opts Options) bool {
	end := len(host)
	trimmed := 0
	for end > 0 && host[end-1] == '.' {
		end--
		trimmed++
		if !opts.MultipleTrailingEmptyIPv4Octets && trimmed >= 1 {
			break
		}
	}
	if end == 0 {
		return false
	}
	lastDot := -1
	for i := end - 1; i >= 0; i-- {
		if host[i] == '.' {
			lastDot = i
			break
		}
	}
	last := host[lastDot+1 : end]
	if last == "" {
		return false
	}
	if isAllDecimalDigits(last) {
		return true
	}
	if len(last) > 2 && last[0] == '0' && (last[1] == 'x' || last[1] == 'X') {
		return isAllHexDigits(last[2:]) && last[2:] != ""
	}
	return false
}

func isAllDecimalDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isAllHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
