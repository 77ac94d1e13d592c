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
	"github.com/jplu/netaddr/internal/ascii"
	"github.com/jplu/netaddr/internal/charset"
)

var (
	schemeFirst = charset.NewBitmap(charset.Range('a', 'z'), charset.Range('A', 'Z'))
	schemeRest  = charset.NewBitmap(
		charset.Range('a', 'z'), charset.Range('A', 'Z'), charset.Range('0', '9'),
		charset.New("+-."),
	)
	digits = charset.NewBitmap(charset.Range('0', '9'))
)

// Parse runs the URL state machine over raw with the given options and
// returns the emitted Components. A failed parse still returns every
// component emitted before the failure; Components.Status explains the
// outcome.
func Parse(raw string, opts Options) Components {
	input := raw
	if opts.StripLeadingC0AndSpace {
		i := 0
		for i < len(input) && input[i] <= 0x20 {
			i++
		}
		input = input[i:]
	}
	if opts.StripTabsAndNewlines {
		input = stripTabsAndNewlines(input)
	}

	p := &parser{input: input, opts: opts}
	p.c.Input = input
	p.run()
	p.c.PathStart = p.c.AuthorityEnd
	return p.c
}

func stripTabsAndNewlines(s string) string {
	hasAny := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' || s[i] == '\n' || s[i] == '\r' {
			hasAny = true
			break
		}
	}
	if !hasAny {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' || s[i] == '\n' || s[i] == '\r' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// parser holds the mutable cursor state driving the scheme_start -> ...
// -> terminal walk. It is a tagged loop rather than mutual recursion
// between state functions, so the state set stays a flat, readable list.
type parser struct {
	input string
	opts  Options
	pos   int
	c     Components
}

type state uint8

const (
	stateSchemeStart state = iota
	stateScheme
	stateNoScheme
	stateAfterScheme
	stateAuthority
	stateUserInfo
	stateHost
	stateAfterHost
	statePort
	statePath
	stateQuery
	stateFragment
	stateDone
)

func (p *parser) run() {
	st := stateSchemeStart
	for st != stateDone {
		switch st {
		case stateSchemeStart:
			st = p.schemeStart()
		case stateScheme:
			st = p.scheme()
		case stateNoScheme:
			st = p.noScheme()
		case stateAfterScheme:
			st = p.afterScheme()
		case stateAuthority:
			st = p.authority()
		case stateUserInfo:
			st = p.userInfo()
		case stateHost:
			st = p.host()
		case stateAfterHost:
			st = p.afterHost()
		case statePort:
			st = p.port()
		case statePath:
			st = p.path()
		case stateQuery:
			st = p.query()
		case stateFragment:
			st = p.fragment()
		default:
			st = stateDone
		}
	}
}

func (p *parser) fail(code ErrorCode) state {
	p.c.Status = fail(code)
	return stateDone
}

func (p *parser) succeed(phase Phase) state {
	p.c.Status.Phase = phase
	return stateDone
}

// schemeStart looks at the very first byte to decide whether input opens
// with a scheme at all.
func (p *parser) schemeStart() state {
	if p.pos < len(p.input) && schemeFirst.Contains(p.input[p.pos]) {
		return stateScheme
	}
	return stateNoScheme
}

func (p *parser) scheme() state {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ':' {
			p.c.SchemeEnd = p.pos
			p.pos++
			_ = start
			return stateAfterScheme
		}
		if !schemeRest.Contains(c) {
			if p.opts.TolerateInvalidSchemeChar {
				p.c.Status.Warnings |= WarnInvalidSchemeChar
				p.pos++
				continue
			}
			return p.fail(ErrInvalidSchemeChar)
		}
		p.pos++
	}
	// Ran off the end without ':': this was never a scheme after all.
	p.pos = start
	return stateNoScheme
}

// noScheme treats the whole input as an opaque, scheme-less body: a path.
func (p *parser) noScheme() state {
	p.c.SchemeEnd = 0
	p.c.AuthorityStart = p.pos
	p.c.UserInfoEnd = p.pos
	p.c.HostStart = p.pos
	p.c.HostEnd = p.pos
	p.c.PortStart = p.pos
	p.c.AuthorityEnd = p.pos
	return statePath
}

func (p *parser) afterScheme() state {
	special := IsSpecialScheme(lowerASCIIString(p.c.Scheme()))
	if hasPrefixAt(p.input, p.pos, "//") {
		p.pos += 2
		return stateAuthority
	}
	if special {
		// A special scheme without "//" following its colon is
		// malformed; WHATWG recovers by inserting the slashes, but the
		// core reports it explicitly instead of rewriting input.
		return p.fail(ErrSchemeMissingFollowingSolidus)
	}
	// Opaque scheme (e.g. "mailto:"): no authority, straight to path.
	p.c.AuthorityStart = p.pos
	p.c.UserInfoEnd = p.pos
	p.c.HostStart = p.pos
	p.c.HostEnd = p.pos
	p.c.PortStart = p.pos
	p.c.AuthorityEnd = p.pos
	return statePath
}

func lowerASCIIString(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = ascii.ToLower(s[i])
	}
	return string(out)
}

func hasPrefixAt(s string, pos int, prefix string) bool {
	return pos+len(prefix) <= len(s) && s[pos:pos+len(prefix)] == prefix
}

func (p *parser) authority() state {
	p.c.AuthorityStart = p.pos
	// Scan ahead for '@' before any of '/','?','#', or '[' — that marks
	// user-info; otherwise this is host straight away.
	i := p.pos
	atPos := -1
	for i < len(p.input) {
		switch p.input[i] {
		case '/', '?', '#':
			i = len(p.input) + 1 // sentinel: stop, not found in authority
		case '@':
			atPos = i
		case '[':
			// user-info cannot contain an unescaped '[' before '@' in
			// practice; treat the bracket as the start of the host.
			i = len(p.input) + 1
		}
		if i > len(p.input) {
			break
		}
		i++
	}
	if atPos >= 0 {
		return stateUserInfo
	}
	p.c.UserInfoEnd = p.pos
	return stateHost
}

func (p *parser) userInfo() state {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != '@' {
		p.pos++
	}
	p.c.UserInfoEnd = p.pos
	_ = start
	if p.pos < len(p.input) && p.input[p.pos] == '@' {
		p.pos++ // consume '@'
	}
	return stateHost
}

func (p *parser) host() state {
	p.c.HostStart = p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '[' {
		return p.ipv6Host()
	}
	return p.regNameOrIPv4Host()
}

func (p *parser) afterHost() state {
	if p.pos >= len(p.input) {
		p.c.PortStart = p.pos
		p.c.AuthorityEnd = p.pos
		return statePath
	}
	switch p.input[p.pos] {
	case ':':
		p.pos++
		return statePort
	case '/':
		p.c.PortStart = p.pos
		p.c.AuthorityEnd = p.pos
		return statePath
	case '?':
		p.c.PortStart = p.pos
		p.c.AuthorityEnd = p.pos
		p.pos++
		p.c.QueryStart = p.pos
		return stateQuery
	case '#':
		p.c.PortStart = p.pos
		p.c.AuthorityEnd = p.pos
		p.c.QueryStart = p.pos
		p.pos++
		p.c.FragmentStart = p.pos
		return stateFragment
	default:
		// A bracketed IPv6 host reports ipv6_char_after_closing for
		// anything but end-of-input, '/', ':', '?', '#' right after ']'.
		if p.pos > p.c.HostStart && p.input[p.pos-1] == ']' {
			return p.fail(ErrIPv6CharAfterClosing)
		}
		return p.fail(ErrRegNameInvalidCharacter)
	}
}

func (p *parser) port() state {
	p.c.PortStart = p.pos
	start := p.pos
	for p.pos < len(p.input) && digits.Contains(p.input[p.pos]) {
		p.pos++
	}
	if p.pos > start {
		port := p.input[start:p.pos]
		if len(port) > 5 || (len(port) == 5 && port > "65535") {
			return p.fail(ErrPortOutOfRange)
		}
	}
	p.c.AuthorityEnd = p.pos
	if p.pos >= len(p.input) {
		return statePath
	}
	switch p.input[p.pos] {
	case '/':
		return statePath
	case '?':
		p.pos++
		p.c.QueryStart = p.pos
		return stateQuery
	case '#':
		p.c.QueryStart = p.pos
		p.pos++
		p.c.FragmentStart = p.pos
		return stateFragment
	default:
		return p.fail(ErrPortOutOfRange)
	}
}

func (p *parser) path() state {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '?':
			p.pos++
			p.c.QueryStart = p.pos
			return stateQuery
		case '#':
			p.c.QueryStart = p.pos // no query: path ends where fragment begins
			p.pos++
			p.c.FragmentStart = p.pos
			return stateFragment
		}
		p.pos++
	}
	p.c.QueryStart = p.pos
	p.c.FragmentStart = p.pos
	return p.succeed(PhaseValid)
}

func (p *parser) query() state {
	for p.pos < len(p.input) {
		if p.input[p.pos] == '#' {
			p.pos++
			p.c.FragmentStart = p.pos
			return stateFragment
		}
		p.pos++
	}
	p.c.FragmentStart = p.pos
	return p.succeed(PhaseValid)
}

func (p *parser) fragment() state {
	p.pos = len(p.input)
	return p.succeed(PhaseValid)
}
