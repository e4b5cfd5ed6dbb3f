package parser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/specialistvlad/boardgrid/internal/ctxlog"
	"github.com/specialistvlad/boardgrid/internal/geometry"
	"github.com/specialistvlad/boardgrid/internal/lines"
	"github.com/specialistvlad/boardgrid/internal/model"
	"github.com/specialistvlad/boardgrid/internal/registry"
)

// Option configures a Session.
type Option func(*Session)

// WithVariables seeds the session with predefined variables, as if they had
// been assigned before the first line.
func WithVariables(vars map[string]float64) Option {
	return func(s *Session) {
		for name, v := range vars {
			s.vars[name] = v
		}
	}
}

// Session is the state of a single parse.
type Session struct {
	logger   *slog.Logger
	vars     map[string]float64
	registry *registry.Registry
	boards   []*model.Board
	errs     []string
	used     bool
}

// NewSession creates an empty session.
func NewSession(ctx context.Context, opts ...Option) *Session {
	s := &Session{
		logger:   ctxlog.FromContext(ctx),
		vars:     make(map[string]float64),
		registry: registry.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse parses text in a fresh session.
func Parse(ctx context.Context, text string, opts ...Option) *model.ParseResult {
	return NewSession(ctx, opts...).Run(text)
}

// Run parses text. A Session runs once; reusing it panics.
func (s *Session) Run(text string) *model.ParseResult {
	if s.used {
		panic("parser: session reused")
	}
	s.used = true

	cmds := lines.Classify(text)
	s.logger.Debug("Parsing board source.", "commands", len(cmds))

	for _, cmd := range cmds {
		switch cmd.Kind {
		case lines.Variable:
			s.runVariable(cmd)
		case lines.Board:
			s.runBoard(cmd)
		default:
			s.fail(cmd.Line, "", unknownCommand(cmd.Text))
		}
	}

	s.logger.Debug("Parsing finished.", "boards", s.registry.Len(), "errors", len(s.errs), "variables", len(s.vars))
	return &model.ParseResult{
		Boards:   s.boards,
		Errors:   s.errs,
		VarCount: len(s.vars),
	}
}

// Variable implements expr.Env.
func (s *Session) Variable(name string) (float64, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Property implements expr.Env.
func (s *Session) Property(id, prop string) (float64, error) {
	b, ok := s.registry.Lookup(id)
	if !ok {
		if hint := geometry.Suggest(id, s.registry.IDs()); hint != "" {
			return 0, errors.Wrapf(model.ErrUnknownID, "{%s.%s} (did you mean %q?)", id, prop, hint)
		}
		return 0, errors.Wrapf(model.ErrUnknownID, "{%s.%s}", id, prop)
	}
	return geometry.Property(b, prop, id)
}

func (s *Session) fail(line int, name string, err error) {
	msg := fmt.Sprintf("Line %d (%s): %s", line, name, err)
	s.errs = append(s.errs, msg)
	s.logger.Debug("Line rejected.", "line", line, "error", err)
}

func unknownCommand(text string) error {
	word := strings.Fields(text)[0]
	if hint := geometry.Suggest(strings.ToLower(word), []string{"board"}); hint != "" {
		return errors.Wrapf(model.ErrUnknownCommand, "%q (did you mean %q?)", word, hint)
	}
	return errors.Wrapf(model.ErrUnknownCommand, "%q", word)
}
