package app

import (
	"errors"

	"github.com/specialistvlad/boardgrid/internal/geometry"
	"github.com/specialistvlad/boardgrid/internal/render"
)

// Defaults applied when neither a flag nor the manifest sets a value.
const (
	DefaultFormat     = string(render.FormatText)
	DefaultReport     = string(render.ReportBoards)
	DefaultProjection = string(geometry.Front)
)

// Config holds all the necessary configuration for an App instance to run.
// Empty Format, Report and Projection fall back to the manifest, then to the
// defaults.
type Config struct {
	Sources      []string // files or directories of .boards files
	ManifestPath string   // optional project manifest (hcl)

	Format     string
	Report     string
	Projection string
	Strict     bool
	NoColor    bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Sources) == 0 && cfg.ManifestPath == "" {
		return nil, errors.New("at least one source or a manifest is required")
	}

	if cfg.Format != "" {
		if _, err := render.ParseFormat(cfg.Format); err != nil {
			return nil, err
		}
	}
	if cfg.Report != "" {
		if _, err := render.ParseReport(cfg.Report); err != nil {
			return nil, err
		}
	}
	if cfg.Projection != "" {
		if _, err := geometry.ParseDirection(cfg.Projection); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}
