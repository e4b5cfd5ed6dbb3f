package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/specialistvlad/boardgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, cfg Config) (string, error) {
	t.Helper()

	c, err := NewConfig(cfg)
	require.NoError(t, err)
	c.LogLevel = "debug"

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	testutil.LogOnFailure(t, logs)

	runErr := NewApp(out, logs, c).Run(context.Background())
	return out.String(), runErr
}

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"no input", Config{}, "at least one source"},
		{"bad format", Config{Sources: []string{"a"}, Format: "xml"}, "unknown format"},
		{"bad report", Config{Sources: []string{"a"}, Report: "bom"}, "unknown report"},
		{"bad projection", Config{Sources: []string{"a"}, Projection: "up"}, "unknown projection"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			assert.ErrorContains(t, err, tc.want)
		})
	}

	cfg, err := NewConfig(Config{ManifestPath: "project.hcl"})
	require.NoError(t, err)
	assert.Equal(t, "project.hcl", cfg.ManifestPath)
}

func TestRun_DirectorySourceJSON(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"cab/a.boards": "board[a] 100 x 200 x 18 \"A\" at 0,0,0\n",
		"cab/b.boards": "board[b] 50 x 50 x 18 \"B\"\n",
	})

	out, err := runApp(t, Config{Sources: []string{filepath.Join(root, "cab")}, Format: "json"})
	require.NoError(t, err)
	assert.Contains(t, out, `"projection": "front"`)
	assert.Contains(t, out, `"id": "a"`)
	assert.Contains(t, out, `"id": "b"`)
	assert.Less(t, bytes.Index([]byte(out), []byte("a.boards")), bytes.Index([]byte(out), []byte("b.boards")))
}

func TestRun_StrictFailsOnErrors(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"bad.boards": "board 1 x 1 \"Flat\"\n",
	})
	src := filepath.Join(root, "bad.boards")

	out, err := runApp(t, Config{Sources: []string{src}, NoColor: true})
	require.NoError(t, err, "errors are reported, not fatal, without strict")
	assert.Contains(t, out, "expected 3 dimensions")

	_, err = runApp(t, Config{Sources: []string{src}, Strict: true, NoColor: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceErrors))
	assert.Contains(t, err.Error(), "1 error(s) in 1 source(s)")
}

func TestRun_Manifest(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"project.hcl": `
project "kitchen" {
  sources   = ["parts"]
  format    = "yaml"
  report    = "cutlist"
  variables = { T = 18 }
}
`,
		"parts/side.boards": "board $T x 720 x 560 \"Side\"\nboard $T x 720 x 560 \"Side\"\n",
	})

	out, err := runApp(t, Config{ManifestPath: filepath.Join(root, "project.hcl")})
	require.NoError(t, err)
	assert.Contains(t, out, "rows:")
	assert.Contains(t, out, "qty: 2")
	assert.Contains(t, out, "w: 18")

	out, err = runApp(t, Config{ManifestPath: filepath.Join(root, "project.hcl"), Format: "json"})
	require.NoError(t, err)
	assert.Contains(t, out, `"rows"`, "flags override manifest values")
}

func TestRun_MissingSource(t *testing.T) {
	_, err := runApp(t, Config{Sources: []string{filepath.Join(t.TempDir(), "nope.boards")}})
	assert.ErrorContains(t, err, "nope.boards")
}
