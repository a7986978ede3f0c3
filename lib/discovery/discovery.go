// Package discovery finds vertex/fragment shader pairs on disk.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	VertExt = ".vert"
	FragExt = ".frag"
)

// ShaderPair is a vertex and fragment shader sharing a directory and a
// file stem. A side that was not found is left empty.
type ShaderPair struct {
	Dir      string
	Stem     string
	VertPath string
	FragPath string
}

// Complete reports whether both shader files were found.
func (p *ShaderPair) Complete() bool {
	return p.VertPath != "" && p.FragPath != ""
}

// Name identifies the pair in diagnostics.
func (p *ShaderPair) Name() string {
	return filepath.Join(p.Dir, p.Stem)
}

func (p *ShaderPair) String() string {
	return fmt.Sprintf("%s (vert: %q, frag: %q)", p.Name(), p.VertPath, p.FragPath)
}

// Discover walks root recursively and groups shader files by stem within
// each directory. Symlinks are followed; a directory reached twice, for
// example through a link to one of its parents, is only walked the first
// time. The result is sorted by directory and stem.
func Discover(root string) ([]ShaderPair, error) {
	var pairs []ShaderPair
	if err := discoverDir(root, &pairs, make(map[string]bool)); err != nil {
		return nil, err
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Dir != pairs[j].Dir {
			return pairs[i].Dir < pairs[j].Dir
		}
		return pairs[i].Stem < pairs[j].Stem
	})
	return pairs, nil
}

func discoverDir(dir string, pairs *[]ShaderPair, visited map[string]bool) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("could not read directory %s: %w", dir, err)
	}
	if visited[resolved] {
		return nil
	}
	visited[resolved] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read directory %s: %w", dir, err)
	}

	byStem := make(map[string]*ShaderPair)
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat rather than entry.Info so that symlinks resolve.
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("could not stat %s: %w", path, err)
		}

		if info.IsDir() {
			if err := discoverDir(path, pairs, visited); err != nil {
				return err
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if ext != VertExt && ext != FragExt {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ext)

		pair, ok := byStem[stem]
		if !ok {
			pair = &ShaderPair{Dir: dir, Stem: stem}
			byStem[stem] = pair
		}
		if ext == VertExt {
			pair.VertPath = path
		} else {
			pair.FragPath = path
		}
	}

	for _, pair := range byStem {
		*pairs = append(*pairs, *pair)
	}
	return nil
}
