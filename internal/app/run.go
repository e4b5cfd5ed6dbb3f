package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/boardgrid/internal/ctxlog"
	"github.com/specialistvlad/boardgrid/internal/fsutil"
	"github.com/specialistvlad/boardgrid/internal/geometry"
	"github.com/specialistvlad/boardgrid/internal/manifest"
	"github.com/specialistvlad/boardgrid/internal/parser"
	"github.com/specialistvlad/boardgrid/internal/render"
)

// ErrSourceErrors is returned by strict runs when any line failed to parse.
var ErrSourceErrors = errors.New("board sources contain errors")

// plan is the fully resolved work of one run.
type plan struct {
	sources   []string
	variables map[string]float64
	options   render.Options
}

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	p, err := a.resolve(ctx)
	if err != nil {
		return err
	}

	results, errCount, err := a.parseAll(ctx, p)
	if err != nil {
		return err
	}

	if err := render.Write(a.outW, results, p.options); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if errCount > 0 {
		a.logger.Warn("Board sources contain errors.", "errors", errCount, "sources", len(results))
		if a.config.Strict {
			return fmt.Errorf("%w: %d error(s) in %d source(s)", ErrSourceErrors, errCount, len(results))
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolve merges the flags with the optional manifest.
func (a *App) resolve(ctx context.Context) (*plan, error) {
	cfg := a.config
	format, report, projection := cfg.Format, cfg.Report, cfg.Projection
	paths := cfg.Sources
	vars := map[string]float64{}

	if cfg.ManifestPath != "" {
		m, err := manifest.Load(ctx, cfg.ManifestPath)
		if err != nil {
			return nil, err
		}
		paths = append(append([]string{}, m.Sources...), cfg.Sources...)
		vars = m.Variables
		format = firstNonEmpty(format, m.Format)
		report = firstNonEmpty(report, m.Report)
		projection = firstNonEmpty(projection, m.Projection)
	}

	f, err := render.ParseFormat(firstNonEmpty(format, DefaultFormat))
	if err != nil {
		return nil, err
	}
	r, err := render.ParseReport(firstNonEmpty(report, DefaultReport))
	if err != nil {
		return nil, err
	}
	dir, err := geometry.ParseDirection(firstNonEmpty(projection, DefaultProjection))
	if err != nil {
		return nil, err
	}

	files, err := fsutil.CollectSources(paths, fsutil.BoardsExtension)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Sources collected.", "count", len(files), "format", f, "report", r, "projection", dir)

	return &plan{
		sources:   files,
		variables: vars,
		options:   render.Options{Format: f, Report: r, Projection: dir, NoColor: cfg.NoColor},
	}, nil
}

// parseAll parses each source in its own session.
func (a *App) parseAll(ctx context.Context, p *plan) ([]render.Source, int, error) {
	logger := ctxlog.FromContext(ctx)

	results := make([]render.Source, 0, len(p.sources))
	errCount := 0
	for _, path := range p.sources {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read source %s: %w", path, err)
		}

		res := parser.Parse(ctx, string(data), parser.WithVariables(p.variables))
		logger.Info("Source parsed.", "path", path, "boards", len(res.Boards), "errors", len(res.Errors))
		for _, e := range res.Errors {
			logger.Debug("Source error.", "path", path, "error", e)
		}

		errCount += len(res.Errors)
		results = append(results, render.Source{Path: path, Result: res})
	}
	return results, errCount, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
