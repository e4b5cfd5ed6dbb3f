package scan

import "strings"

// FindKeyword returns the byte offset of the first whole-word,
// case-insensitive occurrence of keyword at nesting depth 0, or -1.
func FindKeyword(text, keyword string) int {
	pos, _ := FindNextKeyword(text, keyword)
	return pos
}

// FindNextKeyword returns the earliest top-level occurrence among keywords
// and the keyword that matched. Ties go to the keyword listed first. When
// nothing matches it returns (-1, "").
//
// A word directly preceded by `$` names a variable and is never a keyword.
func FindNextKeyword(text string, keywords ...string) (int, string) {
	tokens := Tokenize(text)
	depth := 0
	for i, tok := range tokens {
		if tok.Kind == Word && depth == 0 && !isVariable(tokens, i) {
			for _, kw := range keywords {
				if strings.EqualFold(tok.Value, kw) {
					return tok.Offset, kw
				}
			}
		}
		depth += depthDelta(tok)
	}
	return -1, ""
}

func isVariable(tokens []Token, i int) bool {
	if i == 0 {
		return false
	}
	prev := tokens[i-1]
	return prev.Kind == Other && prev.Value == "$"
}
