package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/glslbind/lib/format"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Roots           []CfgPath
	Package         string
	RuntimeImport   string `yaml:"runtime_import"`
	ContinueOnError bool   `yaml:"continue_on_error"`
	Formatter       FormatterCfg
	Context         ContextCfg
	Metrics         MetricsCfg
	LogLevel        string `yaml:"log_level"`
}

// FormatterCfg fields are pointers so that an omitted key keeps its
// default.
type FormatterCfg struct {
	Enabled                  *bool
	MaxLineWidth             *int  `yaml:"max_line_width"`
	SingleLineEmptyFunctions *bool `yaml:"single_line_empty_functions"`
}

type ContextCfg struct {
	GLMajor int `yaml:"gl_major"`
	GLMinor int `yaml:"gl_minor"`
	Debug   *bool
}

type MetricsCfg struct {
	Textfile CfgPath
}

func ptr[T any](v T) *T {
	return &v
}

// Default is the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	defaults := format.DefaultConfig()
	if c.Formatter.Enabled == nil {
		c.Formatter.Enabled = ptr(true)
	}
	if c.Formatter.MaxLineWidth == nil {
		c.Formatter.MaxLineWidth = ptr(defaults.MaxLineWidth)
	}
	if c.Formatter.SingleLineEmptyFunctions == nil {
		c.Formatter.SingleLineEmptyFunctions = ptr(defaults.SingleLineEmptyFunctions)
	}
	if c.Context.GLMajor == 0 && c.Context.GLMinor == 0 {
		c.Context.GLMajor, c.Context.GLMinor = 4, 1
	}
	if c.Context.Debug == nil {
		c.Context.Debug = ptr(true)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode %s: %w", filename, err)
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Package != "" && !isPackageName(c.Package) {
		return fmt.Errorf("%q is not a valid Go package name", c.Package)
	}
	if err := c.Formatter.Validate(); err != nil {
		return fmt.Errorf("formatter config is invalid: %w", err)
	}
	if err := c.Context.Validate(); err != nil {
		return fmt.Errorf("context config is invalid: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// IsEnabled reports whether generated files are formatted.
func (f *FormatterCfg) IsEnabled() bool {
	return f.Enabled == nil || *f.Enabled
}

// FormatConfig converts the section for the formatter.
func (f *FormatterCfg) FormatConfig() format.Config {
	cfg := format.DefaultConfig()
	if f.MaxLineWidth != nil {
		cfg.MaxLineWidth = *f.MaxLineWidth
	}
	if f.SingleLineEmptyFunctions != nil {
		cfg.SingleLineEmptyFunctions = *f.SingleLineEmptyFunctions
	}
	return cfg
}

// DebugContext reports whether a debug context is requested.
func (c *ContextCfg) DebugContext() bool {
	return c.Debug == nil || *c.Debug
}

func (f *FormatterCfg) Validate() error {
	if f.MaxLineWidth != nil && *f.MaxLineWidth < 0 {
		return fmt.Errorf("max_line_width must be nonnegative")
	}
	return nil
}

func (c *ContextCfg) Validate() error {
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 2) {
		return fmt.Errorf("OpenGL %d.%d is too old, at least 3.2 core is needed", c.GLMajor, c.GLMinor)
	}
	if c.GLMajor > 4 || c.GLMinor < 0 {
		return fmt.Errorf("OpenGL %d.%d is not a known version", c.GLMajor, c.GLMinor)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q is invalid: %w", c.LogLevel, err)
	}
	return level, nil
}

// RootPaths returns the configured roots as plain strings.
func (c *Config) RootPaths() []string {
	paths := make([]string, 0, len(c.Roots))
	for _, r := range c.Roots {
		paths = append(paths, string(r))
	}
	return paths
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Roots:\n")
	for _, r := range c.Roots {
		b.WriteString(fmt.Sprintf("  %s\n", r))
	}

	pkg := c.Package
	if pkg == "" {
		pkg = "(from directory)"
	}
	b.WriteString(fmt.Sprintf("\nPackage: %s\n", pkg))
	if c.RuntimeImport != "" {
		b.WriteString(fmt.Sprintf("Runtime: %s\n", c.RuntimeImport))
	}
	b.WriteString(fmt.Sprintf("Continue on error: %t\n", c.ContinueOnError))

	fc := c.Formatter.FormatConfig()
	b.WriteString(fmt.Sprintf("\nFormatter: enabled=%t max_line_width=%d single_line_empty_functions=%t\n",
		c.Formatter.IsEnabled(), fc.MaxLineWidth, fc.SingleLineEmptyFunctions))
	b.WriteString(fmt.Sprintf("Context: OpenGL %d.%d core (debug=%t)\n", c.Context.GLMajor, c.Context.GLMinor, c.Context.DebugContext()))
	if c.Metrics.Textfile != "" {
		b.WriteString(fmt.Sprintf("Metrics textfile: %s\n", c.Metrics.Textfile))
	}
	return b.String()
}

func isPackageName(name string) bool {
	if name == "" || name == "_" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
