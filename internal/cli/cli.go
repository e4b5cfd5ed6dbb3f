package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/boardgrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("boardgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
BoardGrid - Parses furniture board descriptions and reports their geometry.

Usage:
  boardgrid [options] [SOURCE ...]
  boardgrid -manifest project.hcl [options] [SOURCE ...]

Arguments:
  SOURCE
    Path to a .boards file or a directory containing .boards files.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to an HCL project manifest.")
	mFlag := flagSet.String("m", "", "Path to an HCL project manifest (shorthand).")
	formatFlag := flagSet.String("format", app.DefaultFormat, "Output format. Options: 'text', 'json' or 'yaml'.")
	reportFlag := flagSet.String("report", app.DefaultReport, "Report to write. Options: 'boards' or 'cutlist'.")
	projectionFlag := flagSet.String("projection", app.DefaultProjection, "Projection for the boards report. Options: 'front', 'back', 'left', 'right', 'top', 'bottom'.")
	strictFlag := flagSet.Bool("strict", false, "Exit with status 1 when any line fails to parse.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored text output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	manifest := *manifestFlag
	if manifest == "" {
		manifest = *mFlag
	}
	sources := flagSet.Args()
	slog.Debug("Inputs determined.", "manifest", manifest, "sources", sources)

	if manifest == "" && len(sources) == 0 {
		slog.Debug("No sources provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	// Output settings left at their defaults yield to the manifest.
	explicit := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	pick := func(name, value string) string {
		if manifest != "" && !explicit[name] {
			return ""
		}
		return value
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Sources:      sources,
		ManifestPath: manifest,
		Format:       pick("format", *formatFlag),
		Report:       pick("report", *reportFlag),
		Projection:   pick("projection", *projectionFlag),
		Strict:       *strictFlag,
		NoColor:      *noColorFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
