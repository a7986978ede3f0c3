package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glslbind.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	path := writeConfig(t, `
roots:
  - shaders
  - /abs/shaders
package: render
continue_on_error: true
formatter:
  enabled: true
  max_line_width: 200
  single_line_empty_functions: false
context:
  gl_major: 3
  gl_minor: 3
  debug: false
metrics:
  textfile: out/glslbind.prom
log_level: debug
`)
	cfg, err := Parse(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, []string{filepath.Join(dir, "shaders"), "/abs/shaders"}, cfg.RootPaths())
	assert.Equal(t, "render", cfg.Package)
	assert.True(t, cfg.ContinueOnError)
	assert.True(t, cfg.Formatter.IsEnabled())
	assert.Equal(t, 200, cfg.Formatter.FormatConfig().MaxLineWidth)
	assert.False(t, cfg.Formatter.FormatConfig().SingleLineEmptyFunctions)
	assert.Equal(t, 3, cfg.Context.GLMajor)
	assert.Equal(t, 3, cfg.Context.GLMinor)
	assert.False(t, cfg.Context.DebugContext())
	assert.Equal(t, CfgPath(filepath.Join(dir, "out", "glslbind.prom")), cfg.Metrics.Textfile)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse(writeConfig(t, "roots: [shaders]\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Formatter.IsEnabled())
	assert.Equal(t, 10240, cfg.Formatter.FormatConfig().MaxLineWidth)
	assert.True(t, cfg.Formatter.FormatConfig().SingleLineEmptyFunctions)
	assert.Equal(t, 4, cfg.Context.GLMajor)
	assert.Equal(t, 1, cfg.Context.GLMinor)
	assert.True(t, cfg.Context.DebugContext())
	assert.False(t, cfg.ContinueOnError)
}

func TestParsePartialSectionKeepsDefaults(t *testing.T) {
	cfg, err := Parse(writeConfig(t, "formatter:\n  max_line_width: 120\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Formatter.IsEnabled())
	assert.Equal(t, 120, cfg.Formatter.FormatConfig().MaxLineWidth)
	assert.True(t, cfg.Formatter.FormatConfig().SingleLineEmptyFunctions)
}

func TestParseEmptyFile(t *testing.T) {
	cfg, err := Parse(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Roots)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"bad package":   "package: 9lives\n",
		"old gl":        "context:\n  gl_major: 2\n  gl_minor: 1\n",
		"bad level":     "log_level: loud\n",
		"negative line": "formatter:\n  max_line_width: -1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.Contains(t, Default().String(), "OpenGL 4.1 core")
}
