package ignore

import (
	"path/filepath"
	"strings"
)

// ShouldIgnore checks whether a match at relativePath should be
// suppressed. relativePath is relative to the matcher root.
func (m *Matcher) ShouldIgnore(relativePath string) bool {
	if !m.Active() {
		return false
	}
	if relativePath == "" || relativePath == "." {
		return false
	}

	unixPath := filepath.ToSlash(relativePath)

	if m.hidden && hasHiddenComponent(unixPath) {
		m.logger.Debug("ignore: suppressed %q (hidden rule)", relativePath)
		return true
	}

	if m.repoRules && isPathInGitDir(unixPath) {
		m.logger.Debug("ignore: suppressed %q (.git rule)", relativePath)
		return true
	}

	if m.repoIgnore != nil && m.repoIgnore.Ignore(unixPath) {
		// Negated .gitignore rules re-include a path the earlier rules
		// excluded.
		if m.repoIgnore.Include(unixPath) {
			m.logger.Debug("ignore: %q re-included by negation rule", relativePath)
			return false
		}
		m.logger.Debug("ignore: suppressed %q (repository rule)", relativePath)
		return true
	}

	return false
}

// Filter returns the given absolute paths with suppressed matches
// removed. Order is preserved.
func (m *Matcher) Filter(paths []string) []string {
	if !m.Active() {
		return paths
	}

	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(m.rootDir, path)
		if err != nil {
			// A path outside the root cannot be judged; keep it.
			m.logger.Warn("ignore: cannot relativize %q against %q: %v", path, m.rootDir, err)
			kept = append(kept, path)
			continue
		}
		if !m.ShouldIgnore(rel) {
			kept = append(kept, path)
		}
	}
	return kept
}

// hasHiddenComponent reports whether any path component starts with a dot.
func hasHiddenComponent(unixPath string) bool {
	for _, part := range strings.Split(unixPath, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// isPathInGitDir reports whether a path has a .git directory component.
func isPathInGitDir(unixPath string) bool {
	parts := strings.Split(unixPath, "/")
	for i, part := range parts {
		if part == ".git" && i < len(parts)-1 {
			return true
		}
	}
	return false
}
