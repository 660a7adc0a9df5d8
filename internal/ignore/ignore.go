// Package ignore filters resolved matches through repository ignore
// rules.
//
// The resolver core is pattern-driven and pure; this package is the
// optional CLI-side post-filter that drops matches suppressed by
// .gitignore rules, hidden-path components, or .git directories. It
// uses the functional options pattern for configuration.
package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/file-resolver/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher decides whether a resolved match should be suppressed.
type Matcher struct {
	// The core gitignore object handling repository rules
	repoIgnore gitignore.GitIgnore

	rootDir   string
	repoRules bool
	hidden    bool
	logger    utils.Logger
}

// Option functions for configuration
type Option func(*Matcher)

// WithRepoRules enables .gitignore rules and .git directory suppression.
func WithRepoRules(enabled bool) Option {
	return func(m *Matcher) {
		m.repoRules = enabled
	}
}

// WithHidden enables suppression of hidden files and directories.
func WithHidden(enabled bool) Option {
	return func(m *Matcher) {
		m.hidden = enabled
	}
}

// WithLogger sets a custom logger for the matcher.
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates and initializes a Matcher rooted at rootDir.
func New(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	matcher := &Matcher{
		rootDir: absRootDir,
		logger:  &utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(matcher)
	}

	if !matcher.repoRules {
		return matcher, nil
	}

	matcher.logger.Debug("ignore: loading repository rules for root: %s", matcher.rootDir)

	// Load .gitignore files recursively, matching git's own behavior.
	repoMatcher, repoErr := gitignore.NewRepository(matcher.rootDir)
	if repoErr != nil {
		matcher.logger.Warn("ignore: error loading repository ignores from '%s': %v", matcher.rootDir, repoErr)
		if repoMatcher == nil {
			// No .gitignore files found; continue with an empty matcher
			// so method calls stay safe.
			repoMatcher = gitignore.New(nil, "", nil)
		} else {
			return nil, fmt.Errorf("ignore: failed to load repository ignores: %w", repoErr)
		}
	}
	matcher.repoIgnore = repoMatcher

	return matcher, nil
}

// Active reports whether the matcher has any rule to apply.
func (m *Matcher) Active() bool {
	return m != nil && (m.repoRules || m.hidden)
}
