// Package jsonc converts JSON-with-comments text into strict JSON.
//
// Three constructs are removed: /* block */ comments, // line comments and
// trailing commas before a closing } or ]. Line comments are always removed
// with a string-aware scan, so "http://example.com" survives. By default the
// block comment and trailing comma passes are not string-aware: a "/*" or a
// ",]" inside a string literal is rewritten as if it were outside one.
// Options.StringAware turns every pass string-aware.
package jsonc

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Options controls how Strip treats comment-like sequences inside strings.
type Options struct {
	// StringAware makes block comment and trailing comma removal skip
	// over string literals, like line comment removal always does.
	StringAware bool
}

// Strip removes comments and trailing commas from src using the default
// options. src is not modified.
func Strip(src []byte) []byte {
	return StripWithOptions(src, Options{})
}

// StripWithOptions removes comments and trailing commas from src.
func StripWithOptions(src []byte, opts Options) []byte {
	if opts.StringAware {
		return stripTrailingCommas(scanComments(src, true), true)
	}
	return stripTrailingCommas(scanComments(StripBlockComments(src), false), false)
}

// StripBlockComments deletes every /* ... */ span, closing each at the first
// */ after its opener. An unterminated /* is left in place. String literals
// are not recognised.
func StripBlockComments(src []byte) []byte {
	out := make([]byte, 0, len(src))
	rest := src
	for {
		start := bytes.Index(rest, blockOpen)
		if start < 0 {
			break
		}
		end := bytes.Index(rest[start+2:], blockClose)
		if end < 0 {
			break
		}
		out = append(out, rest[:start]...)
		rest = rest[start+2+end+2:]
	}
	return append(out, rest...)
}

// StripLineComments deletes every // comment outside a string literal, up to
// but not including the end of the line.
func StripLineComments(src []byte) []byte {
	return scanComments(src, false)
}

// StripTrailingCommas deletes each comma followed only by whitespace and
// then } or ]. Whitespace includes Unicode spaces such as U+00A0. The
// whitespace between them goes too. String literals are not
// recognised.
func StripTrailingCommas(src []byte) []byte {
	return stripTrailingCommas(src, false)
}

var (
	blockOpen  = []byte("/*")
	blockClose = []byte("*/")
)

// scanComments drops line comments and, when blocks is set, block comments,
// tracking string literals with the lexer state machine.
func scanComments(src []byte, blocks bool) []byte {
	out := make([]byte, 0, len(src))
	st := stateNormal
	for i := 0; i < len(src); {
		c := src[i]
		if st == stateNormal && c == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '/':
				i = lineEnd(src, i)
				continue
			case '*':
				if blocks {
					if end := bytes.Index(src[i+2:], blockClose); end >= 0 {
						i += 2 + end + 2
						continue
					}
				}
			}
		}
		out = append(out, c)
		st = st.next(c)
		i++
	}
	return out
}

func stripTrailingCommas(src []byte, stringAware bool) []byte {
	out := make([]byte, 0, len(src))
	st := stateNormal
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == ',' && (!stringAware || st == stateNormal) {
			j := i + 1
			for j < len(src) {
				r, size := utf8.DecodeRune(src[j:])
				if !isSpace(r) {
					break
				}
				j += size
			}
			if j < len(src) && (src[j] == '}' || src[j] == ']') {
				i = j - 1
				continue
			}
		}
		out = append(out, c)
		st = st.next(c)
	}
	return out
}

// lineEnd returns the index of the newline ending the line that contains i,
// or len(src).
func lineEnd(src []byte, i int) int {
	if n := bytes.IndexByte(src[i:], '\n'); n >= 0 {
		return i + n
	}
	return len(src)
}

// isSpace matches the whitespace a regular expression \s matches over
// Unicode text: unicode.IsSpace plus the ASCII separators FS, GS, RS, US.
func isSpace(r rune) bool {
	if r >= '\x1c' && r <= '\x1f' {
		return true
	}
	return unicode.IsSpace(r)
}
