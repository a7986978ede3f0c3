package codegen

import (
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// IdentifierError reports a shader name that cannot become a Go
// identifier.
type IdentifierError struct {
	Name   string
	Reason string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("identifier %q %s", e.Name, e.Reason)
}

var glslIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// FieldName returns the exported Go field name for a GLSL identifier:
// the first letter is upper-cased, and a leading underscore gets an X
// prefix. Go keywords are all lower case, so the result never collides
// with one.
func FieldName(glslName string) (string, error) {
	if !glslIdent.MatchString(glslName) {
		return "", &IdentifierError{Name: glslName, Reason: "is not a plain GLSL identifier"}
	}
	if glslName[0] == '_' {
		return "X" + glslName, nil
	}
	return strings.ToUpper(glslName[:1]) + glslName[1:], nil
}

type fieldNames struct {
	seen map[string]string
}

// newFieldNames reserves the names of methods declared on the struct.
func newFieldNames(methods ...string) *fieldNames {
	f := &fieldNames{seen: make(map[string]string)}
	for _, m := range methods {
		f.seen[m] = m + " method"
	}
	return f
}

func (f *fieldNames) add(glslName string) (string, error) {
	goName, err := FieldName(glslName)
	if err != nil {
		return "", err
	}
	if other, ok := f.seen[goName]; ok {
		return "", &IdentifierError{
			Name:   glslName,
			Reason: fmt.Sprintf("maps to Go name %s, already used by %s", goName, other),
		}
	}
	f.seen[goName] = glslName
	return goName, nil
}

// StemPrefix turns a file stem into the exported prefix of every
// top-level identifier of its binding: "basic" gives Basic, "post-fx"
// gives PostFx, "2d" gives Shader2d.
func StemPrefix(stem string) (string, error) {
	parts := strings.FieldsFunc(stem, func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	prefix := b.String()
	if prefix == "" {
		return "", &IdentifierError{Name: stem, Reason: "has no letters or digits to build a Go name from"}
	}
	if unicode.IsDigit(rune(prefix[0])) {
		prefix = "Shader" + prefix
	}
	return prefix, nil
}

func unexport(name string) string {
	return strings.ToLower(name[:1]) + name[1:]
}

func isGoIdent(name string) bool {
	return token.IsIdentifier(name)
}

// PackageName picks the package clause for a binding written to dir: the
// package of the Go files already there, or a name derived from the
// directory.
func PackageName(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return "", err
	}
	sort.Strings(matches)

	fset := token.NewFileSet()
	for _, m := range matches {
		if strings.HasSuffix(m, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, m, nil, parser.PackageClauseOnly)
		if err != nil {
			// half-written output from an interrupted run
			continue
		}
		return f.Name.Name, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("somehow, %s is malformed: %w", dir, err)
	}
	return sanitizePackage(filepath.Base(abs)), nil
}

func sanitizePackage(base string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "shaders" + name
	}
	if token.IsKeyword(name) {
		name += "pkg"
	}
	return name
}
