package parser

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/specialistvlad/boardgrid/internal/expr"
	"github.com/specialistvlad/boardgrid/internal/lines"
	"github.com/specialistvlad/boardgrid/internal/model"
	"github.com/specialistvlad/boardgrid/internal/scan"
)

var (
	boardHeader   = regexp.MustCompile(`(?is)^board(?:\[([A-Za-z0-9_-]+)\])?\s*([^"]*?)\s*"([^"]*)"(.*)$`)
	inlineComment = regexp.MustCompile(`\s#\s`)
	hexColor      = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
)

var sides = []string{"left", "right", "top", "bottom"}

// boardBuild is the in-progress state of one board command.
type boardBuild struct {
	s    *Session
	rest string
	b    *model.Board

	// warning is reported only once the board is registered.
	warning error
}

func (s *Session) runBoard(cmd lines.Command) {
	m := boardHeader.FindStringSubmatch(cmd.Text)
	if m == nil || strings.TrimSpace(m[2]) == "" {
		s.fail(cmd.Line, "", errors.Wrap(model.ErrSyntax, `expected board[id] W x H x D "name" ...`))
		return
	}
	id, dims, name := m[1], m[2], m[3]
	if id == "" {
		id = fmt.Sprintf("b%d", len(s.boards))
	}
	if s.registry.Has(id) {
		s.fail(cmd.Line, name, errors.Wrapf(model.ErrDuplicateID, "board id %q", id))
		return
	}

	bb := &boardBuild{
		s:    s,
		rest: stripInlineComment(m[4]),
		b:    &model.Board{ID: id, Name: name, Visible: true},
	}
	if err := bb.build(dims); err != nil {
		s.fail(cmd.Line, name, err)
		return
	}

	if err := s.registry.Register(bb.b); err != nil {
		s.fail(cmd.Line, name, err)
		return
	}
	s.boards = append(s.boards, bb.b)
	if bb.warning != nil {
		s.fail(cmd.Line, name, bb.warning)
	}
	s.logger.Debug("Board created.", "line", cmd.Line, "id", id, "name", name)
}

func stripInlineComment(rest string) string {
	if loc := inlineComment.FindStringIndex(rest); loc != nil {
		return rest[:loc[0]]
	}
	return rest
}

func (bb *boardBuild) build(dims string) error {
	steps := []func() error{
		func() error { return bb.dimensions(dims) },
		bb.position,
		bb.cuts,
		bb.view,
		bb.color,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (bb *boardBuild) eval(raw string) (float64, error) {
	return expr.Eval(raw, bb.s)
}

func (bb *boardBuild) evalAll(raws []string) ([]float64, error) {
	out := make([]float64, len(raws))
	for i, raw := range raws {
		v, err := bb.eval(raw)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (bb *boardBuild) dimensions(dims string) error {
	parts := scan.SplitDims(dims)
	if len(parts) != 3 {
		return errors.Wrapf(model.ErrDimensionCount, "got %d in %q", len(parts), strings.TrimSpace(dims))
	}
	v, err := bb.evalAll(parts)
	if err != nil {
		return err
	}
	for i, axis := range []string{"width", "height", "depth"} {
		if v[i] < 0 {
			return errors.Wrapf(model.ErrInvalidExpression, "%s %g is negative", axis, v[i])
		}
	}
	bb.b.W, bb.b.H, bb.b.D = v[0], v[1], v[2]
	return nil
}

// section returns the text following keyword up to the first of the
// terminating keywords, and whether keyword is present at all.
func (bb *boardBuild) section(keyword string, until ...string) (string, bool) {
	pos := scan.FindKeyword(bb.rest, keyword)
	if pos < 0 {
		return "", false
	}
	return upTo(bb.rest[pos+len(keyword):], until...), true
}

func upTo(text string, until ...string) string {
	if end, _ := scan.FindNextKeyword(text, until...); end >= 0 {
		return text[:end]
	}
	return text
}

func (bb *boardBuild) position() error {
	if pos := scan.FindKeyword(bb.rest, "from"); pos >= 0 {
		return bb.fromTo(bb.rest[pos+len("from"):])
	}

	seg, ok := bb.section("at", "cut", "view", "color")
	if !ok {
		return nil
	}
	parts := scan.SplitTopLevel(seg)
	if len(parts) != 3 {
		return errors.Wrapf(model.ErrCoordCount, "at expects X,Y,Z, got %d value(s)", len(parts))
	}
	v, err := bb.evalAll(parts)
	if err != nil {
		return err
	}
	bb.b.X, bb.b.Y, bb.b.Z = model.Float(v[0]), model.Float(v[1]), model.Float(v[2])
	bb.b.HasPos = true
	return nil
}

func (bb *boardBuild) fromTo(afterFrom string) error {
	toPos := scan.FindKeyword(afterFrom, "to")
	if toPos < 0 {
		return errors.Wrap(model.ErrSyntax, "from requires a matching to")
	}

	from := scan.SplitTopLevel(afterFrom[:toPos])
	if len(from) != 2 {
		return errors.Wrapf(model.ErrCoordCount, "from expects X,Y, got %d value(s)", len(from))
	}

	afterTo := afterFrom[toPos+len("to"):]
	toSeg, zRaw := afterTo, ""
	if end, kw := scan.FindNextKeyword(afterTo, "z", "cut", "view", "color"); end >= 0 {
		toSeg = afterTo[:end]
		if kw == "z" {
			zRaw = upTo(afterTo[end+len("z"):], "cut", "view", "color")
		}
	}
	to := scan.SplitTopLevel(toSeg)
	if len(to) != 2 {
		return errors.Wrapf(model.ErrCoordCount, "to expects X,Y, got %d value(s)", len(to))
	}

	v, err := bb.evalAll(append(from, to...))
	if err != nil {
		return err
	}
	x1, y1, x2, y2 := v[0], v[1], v[2], v[3]

	z := 0.0
	if zRaw != "" {
		if z, err = bb.eval(zRaw); err != nil {
			return err
		}
	}

	b := bb.b
	b.X, b.Y, b.Z = model.Float(x1), model.Float(y1), model.Float(z)
	b.HasPos = true
	b.FromTo = &model.FromTo{X1: x1, Y1: y1, X2: x2, Y2: y2}
	b.Angle = math.Atan2(y2-y1, x2-x1) * 180 / math.Pi

	actual := math.Hypot(x2-x1, y2-y1)
	if math.Abs(b.W-actual) > 1 {
		bb.warning = errors.Wrapf(model.ErrWidthMismatch,
			"declared width %s differs from from/to distance %s, using the distance",
			expr.Format(b.W), expr.Format(expr.Round3(actual)))
	}
	b.W = expr.Round3(actual)
	return nil
}

func (bb *boardBuild) cuts() error {
	seg, ok := bb.section("cut", "view", "color")
	if !ok {
		return nil
	}

	pos, side := scan.FindNextKeyword(seg, sides...)
	if pos < 0 {
		return errors.Wrap(model.ErrInvalidCut, "cut needs at least one of left, right, top, bottom")
	}
	if lead := strings.TrimSpace(seg[:pos]); lead != "" {
		return errors.Wrapf(model.ErrInvalidCut, "unexpected %q before %s", lead, side)
	}

	cuts := &model.Cuts{}
	for pos >= 0 {
		valueText := seg[pos+len(side):]
		next, nextSide := scan.FindNextKeyword(valueText, sides...)
		raw := valueText
		if next >= 0 {
			raw = valueText[:next]
		}

		v, err := bb.eval(raw)
		if err != nil {
			return errors.Wrapf(err, "cut %s", side)
		}
		switch side {
		case "left":
			cuts.Left = model.Float(v)
		case "right":
			cuts.Right = model.Float(v)
		case "top":
			cuts.Top = model.Float(v)
		case "bottom":
			cuts.Bottom = model.Float(v)
		}

		seg, pos, side = valueText, next, nextSide
	}
	bb.b.Cuts = cuts
	return nil
}

func (bb *boardBuild) view() error {
	seg, ok := bb.section("view", "color")
	if !ok {
		return nil
	}

	arg := strings.ToLower(strings.Join(strings.Fields(seg), ""))
	var faces []rune
	for _, r := range arg {
		if !strings.ContainsRune(model.FaceOrder, r) {
			return errors.Wrapf(model.ErrInvalidView, "character %q (use f, s, t)", r)
		}
		if !containsRune(faces, r) {
			faces = append(faces, r)
		}
	}
	if len(faces) == 0 {
		return errors.Wrap(model.ErrInvalidView, "view needs at least one of f, s, t")
	}
	bb.b.View = string(faces)
	return nil
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

func (bb *boardBuild) color() error {
	if seg, ok := bb.section("color"); ok {
		if fields := strings.Fields(seg); len(fields) > 0 && hexColor.MatchString(fields[0]) {
			bb.b.Color = fields[0]
			return nil
		}
	}
	bb.b.Color = model.AutoColor(len(bb.s.boards))
	return nil
}
