// Package manifest loads a project manifest: an HCL file naming the board
// sources of a project, the output defaults and preset variables.
//
//	project "kitchen" {
//	  sources    = ["cabinet.boards", "drawers/"]
//	  format     = "yaml"
//	  projection = "front"
//	  report     = "boards"
//	  variables  = { T = 18, D = 560 }
//	}
package manifest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/boardgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Manifest is a decoded project block. Empty strings mean "not set".
type Manifest struct {
	Name       string
	Path       string
	Sources    []string // resolved against the manifest directory
	Format     string
	Projection string
	Report     string
	Variables  map[string]float64
}

type fileRoot struct {
	Projects []*projectBlock `hcl:"project,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

type projectBlock struct {
	Name       string     `hcl:"name,label"`
	Sources    []string   `hcl:"sources"`
	Format     *string    `hcl:"format,optional"`
	Projection *string    `hcl:"projection,optional"`
	Report     *string    `hcl:"report,optional"`
	Variables  *cty.Value `hcl:"variables,optional"`
}

// Load parses the manifest at path. The file must hold exactly one project
// block.
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading manifest.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}
	if len(root.Projects) != 1 {
		return nil, fmt.Errorf("manifest %s: expected exactly one project block, found %d", path, len(root.Projects))
	}

	p := root.Projects[0]
	vars, err := decodeVariables(p.Variables)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: project %q: %w", path, p.Name, err)
	}

	dir := filepath.Dir(path)
	sources := make([]string, len(p.Sources))
	for i, src := range p.Sources {
		if !filepath.IsAbs(src) {
			src = filepath.Join(dir, src)
		}
		sources[i] = src
	}

	m := &Manifest{
		Name:       p.Name,
		Path:       path,
		Sources:    sources,
		Format:     deref(p.Format),
		Projection: deref(p.Projection),
		Report:     deref(p.Report),
		Variables:  vars,
	}
	logger.Info("Manifest loaded successfully.", "project", m.Name, "sources", len(m.Sources), "variables", len(m.Variables))
	return m, nil
}

func decodeVariables(v *cty.Value) (map[string]float64, error) {
	vars := make(map[string]float64)
	if v == nil || v.IsNull() {
		return vars, nil
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("variables must be known values")
	}

	converted, err := convert.Convert(*v, cty.Map(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("variables must be a map of numbers: %w", err)
	}
	if err := gocty.FromCtyValue(converted, &vars); err != nil {
		return nil, fmt.Errorf("variables: %w", err)
	}
	return vars, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
