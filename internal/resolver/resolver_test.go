package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

// writeTree creates a temp directory containing the given slash-relative
// files and returns its root.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", f, err)
		}
		if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
	return root
}

// resolveRel resolves filters against root and returns sorted
// slash-relative match paths.
func resolveRel(t *testing.T, filters []string, root string) []string {
	t.Helper()

	matches, err := Resolve(filters, root)
	if err != nil {
		t.Fatalf("Resolve(%v): %v", filters, err)
	}

	rel := make([]string, 0, len(matches))
	for _, m := range matches {
		r, err := filepath.Rel(root, m)
		if err != nil {
			t.Fatalf("Rel(%s, %s): %v", root, m, err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	sort.Strings(rel)
	return rel
}

func TestResolveNilFilters(t *testing.T) {
	t.Parallel()

	_, err := Resolve(nil, t.TempDir())
	if !errors.Is(err, ErrNilFilters) {
		t.Fatalf("want ErrNilFilters, got %v", err)
	}
}

func TestResolveBlankRoot(t *testing.T) {
	t.Parallel()

	for _, root := range []string{"", "   ", "\t"} {
		_, err := Resolve([]string{"*.txt"}, root)
		if !errors.Is(err, ErrBlankRoot) {
			t.Fatalf("root %q: want ErrBlankRoot, got %v", root, err)
		}
	}
}

func TestResolveMissingRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := Resolve([]string{"*.txt"}, root)
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("want ErrRootNotFound, got %v", err)
	}
}

func TestResolveRootIsFile(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "file.txt")
	_, err := Resolve([]string{"*"}, filepath.Join(root, "file.txt"))
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("want ErrRootNotFound, got %v", err)
	}
}

func TestResolveEmptyFilterList(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "a.txt", "b.txt")
	matches, err := Resolve([]string{}, root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("want no matches, got %v", matches)
	}
}

func TestExclusionSameScope(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "test_0.txt", "test_1.txt")

	got := resolveRel(t, []string{"*.txt", "!test_0.txt"}, root)
	want := []string{"test_1.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExclusionDoesNotCrossScopes(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "a.txt", "sub/a.txt", "sub/b.txt")

	// The root-level exclusion must not suppress sub/a.txt, which is
	// produced by a different recursive call.
	got := resolveRel(t, []string{"*.txt", "**/*.txt", "!a.txt"}, root)
	want := []string{"sub/a.txt", "sub/b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExclusionCarriedIntoSubdirectory(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "sub/a.txt", "sub/b.txt")

	got := resolveRel(t, []string{"sub/*.txt", "!sub/a.txt"}, root)
	want := []string{"sub/b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDoubleStarRecursion(t *testing.T) {
	t.Parallel()

	root := writeTree(t,
		"index.html",
		"Hello/index.html",
		"Hello/World/index.html",
		"Hello/other.html",
	)

	got := resolveRel(t, []string{"**/index.html"}, root)
	want := []string{"Hello/World/index.html", "Hello/index.html", "index.html"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLiteralPath(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "foo/file.cs", "foo/other.cs", "bar/file.cs")

	got := resolveRel(t, []string{"foo/file.cs"}, root)
	want := []string{"foo/file.cs"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWildcardPath(t *testing.T) {
	t.Parallel()

	root := writeTree(t,
		"foo/a.cs",
		"fox/b.cs",
		"fooo/c.cs",
		"foo/d.txt",
	)

	got := resolveRel(t, []string{"fo?/*.cs"}, root)
	want := []string{"foo/a.cs", "fox/b.cs"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWildcardDirectorySelector(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "a/file.txt", "b/file.txt", "file.txt")

	got := resolveRel(t, []string{"*/file.txt"}, root)
	want := []string{"a/file.txt", "b/file.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLeadingSlashIsCosmetic(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "dir/file.txt")

	got := resolveRel(t, []string{"/dir/file.txt"}, root)
	want := []string{"dir/file.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDeduplication(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "a.txt")

	got := resolveRel(t, []string{"*.txt", "a.txt", "**/a.txt"}, root)
	want := []string{"a.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "a.go", "pkg/b.go", "pkg/sub/c.go", "pkg/sub/d.txt")
	filters := []string{"**/*.go", "!a.go"}

	first := resolveRel(t, filters, root)
	second := resolveRel(t, filters, root)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between calls: %v vs %v", first, second)
	}
}

func TestMissingFolderSelector(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "present/file.txt")

	got := resolveRel(t, []string{"missing/file.txt"}, root)
	if len(got) != 0 {
		t.Fatalf("want no matches, got %v", got)
	}
}

func TestMultipleFiltersUnion(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "main.go", "docs/readme.md", "docs/notes.md", "docs/img.png")

	got := resolveRel(t, []string{"*.go", "docs/*.md"}, root)
	want := []string{"docs/notes.md", "docs/readme.md", "main.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFolderSelectorDoesNotMatchFiles(t *testing.T) {
	t.Parallel()

	// "dir" exists as a file, not a directory; the folder filter must
	// contribute nothing instead of erroring.
	root := writeTree(t, "dir")

	got := resolveRel(t, []string{"dir/file.txt"}, root)
	if len(got) != 0 {
		t.Fatalf("want no matches, got %v", got)
	}
}

func TestDoubleStarDeepTree(t *testing.T) {
	t.Parallel()

	root := writeTree(t,
		"a/b/c/d/deep.log",
		"a/deep.log",
		"deep.log",
		"a/b/other.txt",
	)

	got := resolveRel(t, []string{"**/deep.log"}, root)
	want := []string{"a/b/c/d/deep.log", "a/deep.log", "deep.log"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveReturnsAbsolutePaths(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "a.txt")
	matches, err := Resolve([]string{"a.txt"}, root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("want one match, got %v", matches)
	}
	if !filepath.IsAbs(matches[0]) {
		t.Fatalf("match %q is not absolute", matches[0])
	}
}
