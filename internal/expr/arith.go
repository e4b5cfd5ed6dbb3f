package expr

import (
	"math"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/specialistvlad/boardgrid/internal/model"
)

// Sum is the grammar root: term (("+"|"-") term)*.
type Sum struct {
	Left  *Product   `@@`
	Right []*SumTail `@@*`
}

type SumTail struct {
	Op    string   `@("+" | "-")`
	Right *Product `@@`
}

// Product is factor (("*"|"/") factor)*.
type Product struct {
	Left  *Factor        `@@`
	Right []*ProductTail `@@*`
}

type ProductTail struct {
	Op    string  `@("*" | "/")`
	Right *Factor `@@`
}

// Factor is a signed factor, a number or a parenthesised sum.
type Factor struct {
	Sign    string   `(  @("+" | "-")`
	Signed  *Factor  `   @@ )`
	Number  *float64 `| @Number`
	Grouped *Sum     `| "(" @@ ")"`
}

var arithLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]*)?|\.[0-9]+`},
	{Name: "Punct", Pattern: `[-+*/()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var arithParser = participle.MustBuild[Sum](
	participle.Lexer(arithLexer),
	participle.Elide("Whitespace"),
)

const allowedChars = "0123456789+-*/(). \t\n\r\v\f"

// Arith evaluates plain arithmetic and rounds the result to 3 decimals.
func Arith(s string) (float64, error) {
	if i := strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune(allowedChars, r) }); i >= 0 {
		return 0, errors.Wrapf(model.ErrInvalidExpression, "illegal character %q in %q", s[i:i+1], strings.TrimSpace(s))
	}
	if strings.TrimSpace(s) == "" {
		return 0, errors.Wrap(model.ErrInvalidExpression, "empty expression")
	}

	tree, err := arithParser.ParseString("", s)
	if err != nil {
		return 0, errors.Wrapf(model.ErrInvalidExpression, "%q: %v", strings.TrimSpace(s), err)
	}

	v := tree.eval()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.Wrapf(model.ErrInvalidExpression, "%q is not a finite number", strings.TrimSpace(s))
	}
	return Round3(v), nil
}

// Round3 rounds half-up at the third decimal.
func Round3(v float64) float64 {
	r := math.Floor(v*1000+0.5) / 1000
	if r == 0 {
		return 0 // no negative zero
	}
	return r
}

func (s *Sum) eval() float64 {
	v := s.Left.eval()
	for _, t := range s.Right {
		if t.Op == "+" {
			v += t.Right.eval()
		} else {
			v -= t.Right.eval()
		}
	}
	return v
}

func (p *Product) eval() float64 {
	v := p.Left.eval()
	for _, t := range p.Right {
		if t.Op == "*" {
			v *= t.Right.eval()
		} else {
			v /= t.Right.eval()
		}
	}
	return v
}

func (f *Factor) eval() float64 {
	switch {
	case f.Signed != nil:
		if f.Sign == "-" {
			return -f.Signed.eval()
		}
		return f.Signed.eval()
	case f.Number != nil:
		return *f.Number
	default:
		return f.Grouped.eval()
	}
}
