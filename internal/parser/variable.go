package parser

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/specialistvlad/boardgrid/internal/expr"
	"github.com/specialistvlad/boardgrid/internal/lines"
	"github.com/specialistvlad/boardgrid/internal/model"
)

var (
	assignment   = regexp.MustCompile(`^\$([A-Za-z_][A-Za-z0-9_]*)\s*=(.*)$`)
	trailingNote = regexp.MustCompile(`#`)
)

func (s *Session) runVariable(cmd lines.Command) {
	m := assignment.FindStringSubmatch(cmd.Text)
	if m == nil {
		s.fail(cmd.Line, "", errors.Wrapf(model.ErrInvalidVariable, "expected $name = expression, got %q", cmd.Text))
		return
	}

	name, raw := m[1], m[2]
	if loc := trailingNote.FindStringIndex(raw); loc != nil {
		raw = raw[:loc[0]]
	}
	if strings.TrimSpace(raw) == "" {
		s.fail(cmd.Line, "$"+name, errors.Wrapf(model.ErrInvalidVariable, "$%s has no value", name))
		return
	}
	if _, exists := s.vars[name]; exists {
		s.fail(cmd.Line, "$"+name, errors.Wrapf(model.ErrInvalidVariable, "$%s is already defined", name))
		return
	}

	v, err := expr.Eval(raw, s)
	if err != nil {
		s.fail(cmd.Line, "$"+name, err)
		return
	}
	s.vars[name] = v
	s.logger.Debug("Variable defined.", "line", cmd.Line, "name", name, "value", v)
}
