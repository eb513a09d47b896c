// Copyright 2024, Northwood Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compiler

import "strings"

// directivePrefixByte is directivePrefix's single byte, used by the
// byte-level scanner below.
const directivePrefixByte = '$'

// spaceMask stands in for an ASCII space or tab inside a "$"-prefixed link
// destination while goldmark parses the document. CommonMark's bare
// (non-"<...>") link-destination grammar terminates at the first ASCII
// space regardless of paren balance, so
// "[alt]($image.asset('pic.png').alt('a cat').linked(true))" would
// otherwise never parse as a link at all: the destination is chopped mid-
// expression, no quoted title follows, and the whole inline link reverts
// to literal bracket text. Backtick never appears in expr-lang's own
// grammar, so replacing it back to a space after parsing is unambiguous
// for any directive actually written against that grammar.
const spaceMask = '`'

// maskDirectiveWhitespace returns a byte-for-byte-length-preserving copy of
// source with every ASCII space or tab inside a "$"-prefixed link
// destination replaced by spaceMask, so goldmark's destination scanner
// treats the whole expression as one unbroken token. Because the
// substitution never changes length, every offset goldmark records against
// the masked copy is equally valid against the original source.
//
// This is a textual heuristic, not a Markdown-aware one: a "](...)" that
// only looks like a directive link because it sits inside a fenced code
// block or inline code span is masked the same way. Real SuperMD documents
// don't quote directive syntax that way, so this is an accepted tradeoff.
func maskDirectiveWhitespace(source []byte) []byte {
	out := make([]byte, len(source))
	copy(out, source)

	for i := 0; i+1 < len(out); i++ {
		if out[i] != ']' || out[i+1] != '(' {
			continue
		}

		j := i + 2
		for j < len(out) && (out[j] == ' ' || out[j] == '\t') {
			j++
		}
		if j >= len(out) || out[j] != directivePrefixByte {
			continue
		}

		end := matchingParen(out, j)
		if end < 0 {
			continue
		}
		for k := j; k < end; k++ {
			if out[k] == ' ' || out[k] == '\t' {
				out[k] = spaceMask
			}
		}
		i = end
	}

	return out
}

// unmaskDirectiveWhitespace reverses maskDirectiveWhitespace on a single
// already-extracted destination string.
func unmaskDirectiveWhitespace(dest string) string {
	return strings.ReplaceAll(dest, string(rune(spaceMask)), " ")
}

// matchingParen returns the index of the ')' that closes the "(" already
// consumed immediately before start — start sits on the first byte of a
// link destination. Parentheses inside single- or double-quoted string
// literals don't count, matching expr-lang's own string-literal escaping
// (backslash escapes the following byte). Returns -1 if the destination
// runs past a newline without closing.
func matchingParen(source []byte, start int) int {
	depth := 1
	var quote byte

	for i := start; i < len(source); i++ {
		c := source[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '\n':
			return -1
		case '\'', '"':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
