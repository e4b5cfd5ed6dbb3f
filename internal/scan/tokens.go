package scan

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Kind classifies a token.
type Kind int

const (
	Word Kind = iota
	LBrace
	RBrace
	LParen
	RParen
	Comma
	Space
	Other
)

// Token is a lexeme with its byte offset in the scanned text.
type Token struct {
	Kind   Kind
	Value  string
	Offset int
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Offset + len(t.Value)
}

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[A-Za-z0-9_]+`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Space", Pattern: `\s+`},
	{Name: "Other", Pattern: `[^A-Za-z0-9_{}(),\s]`},
})

var kinds = func() map[lexer.TokenType]Kind {
	symbols := textLexer.Symbols()
	return map[lexer.TokenType]Kind{
		symbols["Word"]:   Word,
		symbols["LBrace"]: LBrace,
		symbols["RBrace"]: RBrace,
		symbols["LParen"]: LParen,
		symbols["RParen"]: RParen,
		symbols["Comma"]:  Comma,
		symbols["Space"]:  Space,
		symbols["Other"]:  Other,
	}
}()

// Tokenize splits text into tokens. The rules cover every input, so a lexer
// failure can only come from malformed input; the unread rest is then
// returned as a single Other token.
func Tokenize(text string) []Token {
	lex, err := textLexer.LexString("", text)
	if err != nil {
		return []Token{{Kind: Other, Value: text}}
	}

	var out []Token
	offset := 0
	for {
		tok, err := lex.Next()
		if err != nil {
			out = append(out, Token{Kind: Other, Value: text[offset:], Offset: offset})
			return out
		}
		if tok.EOF() {
			return out
		}
		out = append(out, Token{Kind: kinds[tok.Type], Value: tok.Value, Offset: tok.Pos.Offset})
		offset = tok.Pos.Offset + len(tok.Value)
	}
}

// depthDelta returns how a token changes the nesting depth.
func depthDelta(t Token) int {
	switch t.Kind {
	case LBrace, LParen:
		return 1
	case RBrace, RParen:
		return -1
	}
	return 0
}
