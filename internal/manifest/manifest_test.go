package manifest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/boardgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, content string) (*Manifest, string, error) {
	t.Helper()
	root := testutil.WriteFiles(t, map[string]string{"project.hcl": content})
	m, err := Load(context.Background(), filepath.Join(root, "project.hcl"))
	return m, root, err
}

func TestLoad_Full(t *testing.T) {
	m, root, err := load(t, `
project "kitchen" {
  sources    = ["cabinet.boards", "/abs/drawers"]
  format     = "yaml"
  projection = "top"
  report     = "cutlist"
  variables  = { T = 18, D = 560.5 }
}
`)
	require.NoError(t, err)
	assert.Equal(t, "kitchen", m.Name)
	assert.Equal(t, []string{filepath.Join(root, "cabinet.boards"), "/abs/drawers"}, m.Sources)
	assert.Equal(t, "yaml", m.Format)
	assert.Equal(t, "top", m.Projection)
	assert.Equal(t, "cutlist", m.Report)
	assert.Equal(t, map[string]float64{"T": 18, "D": 560.5}, m.Variables)
}

func TestLoad_Minimal(t *testing.T) {
	m, _, err := load(t, `
project "p" {
  sources = []
}
`)
	require.NoError(t, err)
	assert.Empty(t, m.Sources)
	assert.Empty(t, m.Format)
	assert.Empty(t, m.Variables)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", `project "p" {`, "failed to parse manifest"},
		{"missing sources", `project "p" {}`, "failed to decode manifest"},
		{"no project", `# nothing`, "expected exactly one project block, found 0"},
		{"two projects", "project \"a\" {\n sources = []\n}\nproject \"b\" {\n sources = []\n}\n", "found 2"},
		{"non-numeric variable", "project \"p\" {\n sources = []\n variables = { T = \"thick\" }\n}\n", "variables must be a map of numbers"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := load(t, tc.content)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
