package resolver

import (
	"fmt"
	"os"
	"path/filepath"
)

// walkFolders applies one inclusive folder selector to dir, recursing
// into every matching subdirectory with the rewritten filters that
// apply to it. A selector without wildcards is treated as a literal
// subdirectory name; a missing subdirectory contributes nothing.
// Enumeration errors propagate unchanged and abort the resolution.
func (r *Resolver) walkFolders(dir, selector string, cls *classified, c *collector) error {
	if !hasWildcard(selector) {
		sub := filepath.Join(dir, selector)
		info, err := os.Stat(sub)
		if err != nil {
			if os.IsNotExist(err) {
				r.logger.Debug("resolver: selector %q: %s does not exist", selector, sub)
				return nil
			}
			return fmt.Errorf("resolver: stat %q: %w", sub, err)
		}
		if !info.IsDir() {
			return nil
		}
		return r.resolveDir(cls.applicable(selector), sub, c)
	}

	re, err := compileSegment(selector)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("resolver: read dir %q: %w", dir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() || !re.MatchString(entry.Name()) {
			continue
		}
		sub := filepath.Join(dir, entry.Name())
		r.logger.Debug("resolver: selector %q: descending into %s", selector, sub)
		if err := r.resolveDir(cls.applicable(entry.Name()), sub, c); err != nil {
			return err
		}
	}
	return nil
}
