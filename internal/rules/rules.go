// Package rules loads filter pattern lists from text and YAML sources
// and validates their syntax before resolution starts.
package rules

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// File is the YAML pattern file layout. Exclude entries are folded into
// the pattern list with a "!" prefix.
type File struct {
	Patterns []string `yaml:"patterns"`
	Exclude  []string `yaml:"exclude"`
}

// Parse reads one pattern per line. Blank lines and "#" comments are
// skipped; a leading "!" is preserved.
func Parse(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	var patterns []string
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("rules: scan patterns: %w", err)
	}
	return patterns, nil
}

// LoadFile loads patterns from path. ".yaml" and ".yml" files use the
// YAML layout; anything else is parsed line by line.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("rules: parse %q: %w", path, err)
		}
		patterns := append([]string(nil), f.Patterns...)
		for _, p := range f.Exclude {
			patterns = append(patterns, "!"+p)
		}
		return patterns, nil
	default:
		return Parse(bytes.NewReader(data))
	}
}

// Validate checks every pattern's glob syntax and reports the first
// offender. The "!" exclusion marker is not part of glob syntax and is
// stripped before checking.
func Validate(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(strings.TrimPrefix(p, "!")) {
			return fmt.Errorf("rules: invalid pattern %q", p)
		}
	}
	return nil
}
