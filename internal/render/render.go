// Package render writes parse results for the command line: the boards of
// each source with their projections, or a cut list over all sources, as
// JSON, YAML or an aligned text table.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/boardgrid/internal/cutlist"
	"github.com/specialistvlad/boardgrid/internal/geometry"
	"github.com/specialistvlad/boardgrid/internal/model"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Report selects what is written.
type Report string

const (
	ReportBoards  Report = "boards"
	ReportCutList Report = "cutlist"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q: must be 'text', 'json' or 'yaml'", s)
}

// ParseReport validates a report name.
func ParseReport(s string) (Report, error) {
	switch r := Report(strings.ToLower(s)); r {
	case ReportBoards, ReportCutList:
		return r, nil
	}
	return "", fmt.Errorf("unknown report %q: must be 'boards' or 'cutlist'", s)
}

// Options configures Write.
type Options struct {
	Format     Format
	Report     Report
	Projection geometry.Direction
	// NoColor disables ANSI styling in text output.
	NoColor bool
}

// Source is the parse result of one input file.
type Source struct {
	Path   string
	Result *model.ParseResult
}

// BoardEntry is a board together with its derived drawing data.
type BoardEntry struct {
	Board *model.Board `json:"board" yaml:"board"`
	// Projection is nil for boards without a position.
	Projection *geometry.Rect     `json:"projection,omitempty" yaml:"projection,omitempty"`
	Views      []geometry.ViewDims `json:"views" yaml:"views"`
	Area       float64             `json:"area" yaml:"area"`
}

// SourceReport is the boards report of one source.
type SourceReport struct {
	Path     string         `json:"path" yaml:"path"`
	VarCount int            `json:"varCount" yaml:"varCount"`
	Boards   []BoardEntry   `json:"boards" yaml:"boards"`
	Bounds   *geometry.Rect `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Errors   []string       `json:"errors" yaml:"errors"`
}

// BoardsReport lists every source with its boards.
type BoardsReport struct {
	Projection geometry.Direction `json:"projection" yaml:"projection"`
	Sources    []SourceReport     `json:"sources" yaml:"sources"`
}

// CutListReport is the cut list over all sources.
type CutListReport struct {
	Rows  []cutlist.Row   `json:"rows" yaml:"rows"`
	Total cutlist.Summary `json:"total" yaml:"total"`
}

// NewBoardsReport derives the boards report of sources.
func NewBoardsReport(sources []Source, dir geometry.Direction) *BoardsReport {
	r := &BoardsReport{Projection: dir, Sources: make([]SourceReport, 0, len(sources))}
	for _, src := range sources {
		sr := SourceReport{
			Path:     src.Path,
			VarCount: src.Result.VarCount,
			Boards:   make([]BoardEntry, 0, len(src.Result.Boards)),
			Errors:   src.Result.Errors,
		}
		if sr.Errors == nil {
			sr.Errors = []string{}
		}
		for _, b := range src.Result.Boards {
			entry := BoardEntry{
				Board: b,
				Views: geometry.MultiViewDims(b),
				Area:  geometry.PolygonArea(geometry.CutPolygon(b)),
			}
			if b.HasPos {
				p := geometry.Project(b, dir)
				entry.Projection = &p
			}
			sr.Boards = append(sr.Boards, entry)
		}
		if bounds, ok := geometry.SceneBounds(src.Result.Boards, dir); ok {
			sr.Bounds = &bounds
		}
		r.Sources = append(r.Sources, sr)
	}
	return r
}

// NewCutListReport builds one cut list over the boards of all sources.
func NewCutListReport(sources []Source) *CutListReport {
	var boards []*model.Board
	for _, src := range sources {
		boards = append(boards, src.Result.Boards...)
	}
	rows := cutlist.Build(boards)
	return &CutListReport{Rows: rows, Total: cutlist.Total(rows)}
}

// Write renders sources to w.
func Write(w io.Writer, sources []Source, opts Options) error {
	var doc any
	switch opts.Report {
	case ReportCutList:
		doc = NewCutListReport(sources)
	case ReportBoards, "":
		doc = NewBoardsReport(sources, opts.Projection)
	default:
		return fmt.Errorf("unknown report %q", opts.Report)
	}

	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		t := &textWriter{w: w, color: !opts.NoColor}
		switch doc := doc.(type) {
		case *BoardsReport:
			return t.boards(doc)
		case *CutListReport:
			return t.cutList(doc)
		}
	}
	return fmt.Errorf("unknown format %q", opts.Format)
}
