// Package resolver matches gitignore-style wildcard patterns against a
// directory tree and returns the set of matching files.
//
// Pattern syntax: `*` and `?` are single-segment wildcards (they never
// cross a `/`), a leading `**` segment matches the current directory
// and any depth of subdirectories, a leading `!` marks an exclusion,
// and a leading `/` is cosmetic and stripped. Multi-segment patterns
// like `a/b/*.txt` select subdirectories segment by segment.
//
// Resolution is synchronous and depth-first; each directory level
// derives its own filter views and recursion carries rewritten
// sub-patterns into matched subdirectories. There is no symlink cycle
// detection: a cyclic symlink tree can recurse without bound.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/file-resolver/internal/utils"
)

// Resolver resolves wildcard filter lists against directory trees.
type Resolver struct {
	logger utils.Logger
}

// Option is a functional option for configuring a Resolver.
type Option func(*Resolver)

// WithLogger sets a custom logger for the resolver.
func WithLogger(logger utils.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		logger: &utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the absolute paths of all files under root matched by
// filters, deduplicated by path. An empty (non-nil) filter list yields
// an empty result. Validation happens before any traversal; filesystem
// errors encountered during the walk abort the whole resolution.
func (r *Resolver) Resolve(filters []string, root string) ([]string, error) {
	if filters == nil {
		return nil, ErrNilFilters
	}
	if strings.TrimSpace(root) == "" {
		return nil, ErrBlankRoot
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolver: absolute path for %q: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, absRoot)
		}
		return nil, fmt.Errorf("resolver: stat %q: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, absRoot)
	}

	r.logger.Debug("resolver: resolving %d filters against %s", len(filters), absRoot)

	c := newCollector()
	if err := r.resolveDir(filters, absRoot, c); err != nil {
		return nil, err
	}
	return c.files, nil
}

// Resolve is a convenience wrapper using a default Resolver.
func Resolve(filters []string, root string) ([]string, error) {
	return New().Resolve(filters, root)
}

// resolveDir applies one filter list to one directory. Folder-level
// filters recurse with rewritten patterns; file-level filters match
// directly against the directory's immediate files.
func (r *Resolver) resolveDir(filters []string, dir string, c *collector) error {
	cls, err := classify(decomposeAll(filters))
	if err != nil {
		return err
	}

	r.logger.Debug("resolver: %s: %d file filters, %d folder selectors",
		dir, len(cls.fileIncludes), len(cls.folderSelectors))

	for _, filter := range cls.fileIncludes {
		if err := r.matchFiles(dir, filter, cls.fileExcludes, c); err != nil {
			return err
		}
	}

	for _, selector := range cls.folderSelectors {
		if err := r.walkFolders(dir, selector, cls, c); err != nil {
			return err
		}
	}
	return nil
}

// collector accumulates matched files, deduplicated by absolute path.
type collector struct {
	seen  map[string]struct{}
	files []string
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{})}
}

func (c *collector) add(path string) {
	if _, ok := c.seen[path]; ok {
		return
	}
	c.seen[path] = struct{}{}
	c.files = append(c.files, path)
}
