package scan

import (
	"unicode"
	"unicode/utf8"
)

// SplitTopLevel splits text on commas at nesting depth 0. The parts are
// returned raw, untrimmed and unevaluated.
func SplitTopLevel(text string) []string {
	var parts []string
	depth, start := 0, 0
	for _, tok := range Tokenize(text) {
		if tok.Kind == Comma && depth == 0 {
			parts = append(parts, text[start:tok.Offset])
			start = tok.End()
			continue
		}
		depth += depthDelta(tok)
	}
	return append(parts, text[start:])
}

// SplitDims splits a dimension list such as `100 x $T x (50+2)` into its
// parts. A separator is `x`, `X` or Cyrillic `х` at depth 0 whose next
// non-blank character is a digit, `$`, `(` or `{`, and which does not end an
// identifier (so `$box1` stays whole).
func SplitDims(text string) []string {
	var parts []string
	depth, start := 0, 0
	var prev rune
	for i, r := range text {
		switch r {
		case '{', '(':
			depth++
		case '}', ')':
			depth--
		case 'x', 'X', 'х':
			if depth == 0 && !isIdentRune(prev) && opensOperand(text[i+utf8.RuneLen(r):]) {
				parts = append(parts, text[start:i])
				start = i + utf8.RuneLen(r)
			}
		}
		prev = r
	}
	return append(parts, text[start:])
}

func isIdentRune(r rune) bool {
	return r == '_' || (r < utf8.RuneSelf && unicode.IsLetter(r))
}

// opensOperand reports whether rest, after leading blanks, starts an operand.
func opensOperand(rest string) bool {
	for _, r := range rest {
		switch {
		case r == ' ' || r == '\t':
			continue
		case r >= '0' && r <= '9', r == '$', r == '(', r == '{':
			return true
		default:
			return false
		}
	}
	return false
}
