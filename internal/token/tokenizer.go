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

// Package token implements a forward-only, quote-aware tokenizer over a
// byte range. It underlies the header-style parsers that higher layers
// build on top of the ipaddr/weburl primitives (delimiter-separated,
// optionally quoted lists such as "no-cache=\"foo, bar\", private").
package token

import "github.com/jplu/netaddr/internal/charset"

// Options configures the behavior of Tokenizer.Next.
type Options struct {
	// ReturnDelims makes delimiter runs themselves reported as tokens,
	// distinguishable via Tokenizer.TokenIsDelim.
	ReturnDelims bool
	// ReturnEmptyTokens makes adjacent delimiters, or leading/trailing
	// delimiters, produce empty tokens instead of being skipped.
	ReturnEmptyTokens bool
}

// Tokenizer walks a byte slice one token at a time. The zero value is not
// usable; construct one with New.
type Tokenizer struct {
	data       []byte
	start      int
	tokenBegin int
	tokenEnd   int
	isDelim    bool
}

// New creates a Tokenizer over data, positioned before the first token.
func New(data []byte) *Tokenizer {
	return &Tokenizer{data: data, isDelim: true}
}

// Reset rewinds the tokenizer to the beginning of its original input.
func (t *Tokenizer) Reset() {
	t.tokenEnd = t.start
	t.isDelim = true
}

// TokenIsDelim reports whether the current token is a delimiter run. It is
// only meaningful when Options.ReturnDelims was used for the call that
// produced the current token.
func (t *Tokenizer) TokenIsDelim() bool { return t.isDelim }

// TokenBegin returns the start offset, in bytes, of the current token.
func (t *Tokenizer) TokenBegin() int { return t.tokenBegin }

// TokenEnd returns the end offset, in bytes, of the current token.
func (t *Tokenizer) TokenEnd() int { return t.tokenEnd }

// Token returns the bytes of the current token.
func (t *Tokenizer) Token() []byte { return t.data[t.tokenBegin:t.tokenEnd] }

// Next advances to the next token using delims as the delimiter set, with
// no quoting. It returns false once the input is exhausted.
func (t *Tokenizer) Next(delims charset.Set) bool {
	return t.NextOpt(delims, charset.Set{}, Options{})
}

// NextWithQuotes advances to the next token as Next does, but a run of
// bytes between matching quote characters is reported as a single token
// even if it contains delimiters; a backslash escapes the next byte within
// a quoted run.
func (t *Tokenizer) NextWithQuotes(delims, quotes charset.Set) bool {
	return t.NextOpt(delims, quotes, Options{})
}

// NextOpt is the fully general form of Next, accepting quotes and Options.
func (t *Tokenizer) NextOpt(delims, quotes charset.Set, opts Options) bool {
	for {
		if t.isDelim {
			t.isDelim = false
			t.tokenBegin = t.tokenEnd
			var q quoteState
			for t.tokenEnd < len(t.data) && q.advance(delims, quotes, t.data[t.tokenEnd]) {
				t.tokenEnd++
			}
			if opts.ReturnEmptyTokens || t.tokenBegin != t.tokenEnd {
				return true
			}
			continue
		}

		t.isDelim = true
		t.tokenBegin = t.tokenEnd
		if t.tokenEnd == len(t.data) {
			return false
		}
		t.tokenEnd++
		if opts.ReturnDelims {
			for t.tokenEnd < len(t.data) && delims.Contains(t.data[t.tokenEnd]) {
				t.tokenEnd++
			}
			return true
		}
	}
}

// Skip consumes bytes in chars, without producing a token.
func (t *Tokenizer) Skip(chars charset.Set) {
	for t.tokenBegin < len(t.data) && chars.Contains(t.data[t.tokenBegin]) {
		t.tokenBegin++
	}
	t.tokenEnd = t.tokenBegin
}

// SkipSpaces consumes a run of plain ASCII spaces.
func (t *Tokenizer) SkipSpaces() {
	t.Skip(charset.New(" "))
}

// quoteState tracks whether the scan is inside a quoted run, and whether
// the next byte is consumed literally because of a preceding backslash.
// A backslash outside a quoted run is not special.
type quoteState struct {
	quoteChar byte
	inQuote   bool
	escaped   bool
}

// advance reports whether c extends the current token (true) or the token
// ends before c (false, c is the delimiter).
func (q *quoteState) advance(delims, quotes charset.Set, c byte) bool {
	if q.inQuote {
		switch {
		case q.escaped:
			q.escaped = false
		case c == '\\':
			q.escaped = true
		case c == q.quoteChar:
			q.inQuote = false
		}
		return true
	}

	if delims.Contains(c) {
		return false
	}
	if quotes.Contains(c) {
		q.quoteChar = c
		q.inQuote = true
	}
	return true
}
