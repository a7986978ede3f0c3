// Package format runs gofmt over generated bindings in place.
package format

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/tools/imports"
)

const BackupSuffix = ".bk"

type Config struct {
	// MaxLineWidth is checked, not enforced: gofmt never reflows lines.
	MaxLineWidth int
	// SingleLineEmptyFunctions keeps `func f() {}` on one line, which
	// gofmt already does; false expands empty bodies.
	SingleLineEmptyFunctions bool
}

func DefaultConfig() Config {
	return Config{
		MaxLineWidth:             10240,
		SingleLineEmptyFunctions: true,
	}
}

// Summary describes one formatting run.
type Summary struct {
	Path     string
	Errors   []string
	Warnings []string
	Changed  bool
}

func (s *Summary) HasNoErrors() bool {
	return len(s.Errors) == 0
}

func (s *Summary) String() string {
	return fmt.Sprintf("%s: %d errors, %d warnings", s.Path, len(s.Errors), len(s.Warnings))
}

// Formatter formats a file on disk.
type Formatter interface {
	Format(path string, cfg Config) (*Summary, error)
}

type GoFormatter struct{}

func New() *GoFormatter {
	return &GoFormatter{}
}

// Format rewrites path with gofmt layout. A backup is written to
// path+".bk" before the file is replaced and removed once the formatted
// file is in place. Syntax errors end up in Summary.Errors and leave the
// file untouched.
func (f *GoFormatter) Format(path string, cfg Config) (*Summary, error) {
	summary := &Summary{Path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	out, err := imports.Process(path, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		summary.Errors = append(summary.Errors, err.Error())
		return summary, nil
	}
	if !cfg.SingleLineEmptyFunctions {
		out = expandEmptyFunctions(out)
	}
	summary.Warnings = longLines(out, cfg.MaxLineWidth)

	if bytes.Equal(src, out) {
		return summary, nil
	}
	summary.Changed = true

	backup := path + BackupSuffix
	if err := os.WriteFile(backup, src, 0o644); err != nil {
		return nil, fmt.Errorf("could not write backup %s: %w", backup, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return nil, fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := os.Remove(backup); err != nil {
		return nil, fmt.Errorf("could not remove backup %s: %w", backup, err)
	}
	return summary, nil
}

func expandEmptyFunctions(src []byte) []byte {
	lines := bytes.Split(src, []byte("\n"))
	for i, line := range lines {
		if bytes.HasPrefix(line, []byte("func ")) && bytes.HasSuffix(line, []byte(" {}")) {
			lines[i] = append(bytes.TrimSuffix(line, []byte("}")), '\n', '}')
		}
	}
	return bytes.Join(lines, []byte("\n"))
}

func longLines(src []byte, width int) []string {
	if width <= 0 {
		return nil
	}
	var warnings []string
	for i, line := range bytes.Split(src, []byte("\n")) {
		if len(line) > width {
			warnings = append(warnings, fmt.Sprintf("line %d is %d bytes long (max %d)", i+1, len(line), width))
		}
	}
	return warnings
}
