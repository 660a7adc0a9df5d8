package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// matchFiles applies one inclusive file filter to the files directly in
// dir, subtracting exclusions. A filter without wildcards is treated as
// a literal filename. Exclusions scope to this directory-resolution
// call only; they reach subdirectories solely via rewritten filters.
func (r *Resolver) matchFiles(dir, filter string, excludes []*regexp.Regexp, c *collector) error {
	name := strings.TrimPrefix(filter, "/")

	if !hasWildcard(name) {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("resolver: stat %q: %w", path, err)
		}
		if info.IsDir() || excluded(name, excludes) {
			return nil
		}
		c.add(path)
		return nil
	}

	re, err := compileSegment(name)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("resolver: read dir %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if re.MatchString(entry.Name()) && !excluded(entry.Name(), excludes) {
			c.add(filepath.Join(dir, entry.Name()))
		}
	}
	return nil
}

// excluded reports whether name matches any exclusion regex.
func excluded(name string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
