package expr

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/specialistvlad/boardgrid/internal/model"
	"github.com/specialistvlad/boardgrid/internal/scan"
)

// Env supplies the values an expression may refer to.
type Env interface {
	// Variable returns the value of a defined variable.
	Variable(name string) (float64, bool)
	// Property resolves {id.prop} against the boards created so far.
	Property(id, prop string) (float64, error)
}

var (
	variableRef = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	propertyRef = regexp.MustCompile(`\{\s*([A-Za-z0-9_-]+)\.([A-Za-z0-9_]+)\s*\}`)
	lenCall     = regexp.MustCompile(`(?i)\bLEN\s*\(`)
)

// Eval resolves variables, property references and LEN calls in raw, then
// evaluates the remaining arithmetic. The result is rounded to 3 decimals.
func Eval(raw string, env Env) (float64, error) {
	s, err := substituteVariables(raw, env)
	if err != nil {
		return 0, err
	}
	if s, err = substituteProperties(s, env); err != nil {
		return 0, err
	}
	if s, err = substituteLen(s); err != nil {
		return 0, err
	}
	return Arith(s)
}

func substituteVariables(s string, env Env) (string, error) {
	var failure error
	out := variableRef.ReplaceAllStringFunc(s, func(m string) string {
		if failure != nil {
			return m
		}
		name := m[1:]
		v, ok := env.Variable(name)
		if !ok {
			failure = errors.Wrapf(model.ErrUnknownVariable, "$%s", name)
			return m
		}
		return Format(v)
	})
	return out, failure
}

func substituteProperties(s string, env Env) (string, error) {
	var failure error
	out := propertyRef.ReplaceAllStringFunc(s, func(m string) string {
		if failure != nil {
			return m
		}
		sub := propertyRef.FindStringSubmatch(m)
		v, err := env.Property(sub[1], sub[2])
		if err != nil {
			failure = err
			return m
		}
		return Format(v)
	})
	return out, failure
}

// substituteLen replaces every LEN(x1,y1,x2,y2) call. Arguments are plain
// arithmetic; nested calls are not supported.
func substituteLen(s string) (string, error) {
	var b strings.Builder
	for {
		loc := lenCall.FindStringIndex(s)
		if loc == nil {
			b.WriteString(s)
			return b.String(), nil
		}

		open := loc[1] - 1
		end := matchingParen(s, open)
		if end < 0 {
			return "", errors.Wrapf(model.ErrInvalidExpression, "unclosed LEN( in %q", s)
		}

		d, err := distance(s[open+1 : end])
		if err != nil {
			return "", err
		}
		b.WriteString(s[:loc[0]])
		b.WriteString(Format(d))
		s = s[end+1:]
	}
}

func distance(args string) (float64, error) {
	parts := scan.SplitTopLevel(args)
	if len(parts) != 4 {
		return 0, errors.Wrapf(model.ErrInvalidExpression, "LEN expects 4 arguments, got %d", len(parts))
	}

	var c [4]float64
	for i, p := range parts {
		v, err := Arith(p)
		if err != nil {
			return 0, err
		}
		c[i] = v
	}
	return math.Hypot(c[2]-c[0], c[3]-c[1]), nil
}

// matchingParen returns the index of the parenthesis closing the one at
// open, or -1.
func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
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

// Format renders a value for textual substitution. Negative values are
// parenthesised so that `10 - $a` stays a valid expression.
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v < 0 {
		return "(" + s + ")"
	}
	return s
}
