package resolver

import (
	"regexp"
	"strings"
)

// subFilter pairs a folder selector regex with the rewritten pattern to
// apply inside subdirectories whose name the regex matches.
type subFilter struct {
	selector  *regexp.Regexp
	rewritten string
}

// classified holds the per-directory views derived from one decomposed
// filter set: file-level filters partitioned into inclusive strings and
// exclusive regexes, the deduplicated inclusive folder selectors that
// drive the walk, and every (selector, rewritten) pair — inclusive and
// exclusive — carried down to matched subdirectories.
type classified struct {
	fileIncludes    []string
	fileExcludes    []*regexp.Regexp
	folderSelectors []string
	subFilters      []subFilter
}

// classify partitions decomposed filters into file-level (one segment)
// and folder-level (more than one) groups.
func classify(filters []decomposedFilter) (*classified, error) {
	cls := &classified{}
	seenFiles := make(map[string]struct{})
	seenSelectors := make(map[string]struct{})

	for _, df := range filters {
		if len(df.segments) == 1 {
			key := df.segments[0]
			if df.excludes {
				key = "!" + key
			}
			if _, ok := seenFiles[key]; ok {
				continue
			}
			seenFiles[key] = struct{}{}

			if df.excludes {
				re, err := compileSegment(df.segments[0])
				if err != nil {
					return nil, err
				}
				cls.fileExcludes = append(cls.fileExcludes, re)
			} else {
				cls.fileIncludes = append(cls.fileIncludes, key)
			}
			continue
		}

		selector := df.segments[0]
		joinStart := 1
		if selector == doubleStar {
			// Keep "**" in the rewritten pattern so it continues to
			// descend through deeper subdirectories.
			joinStart = 0
		}

		prefix := ""
		if df.excludes {
			prefix = "!"
		}
		rewritten := prefix + "/" + strings.Join(df.segments[joinStart:], "/")

		re, err := compileSegment(selector)
		if err != nil {
			return nil, err
		}
		cls.subFilters = append(cls.subFilters, subFilter{selector: re, rewritten: rewritten})

		if !df.excludes {
			if _, ok := seenSelectors[selector]; !ok {
				seenSelectors[selector] = struct{}{}
				cls.folderSelectors = append(cls.folderSelectors, selector)
			}
		}
	}
	return cls, nil
}

// applicable returns the rewritten filter of every pair whose selector
// matches the subdirectory name, in declaration order. An empty result
// means the subdirectory contributes nothing.
func (c *classified) applicable(name string) []string {
	var out []string
	for _, sf := range c.subFilters {
		if sf.selector.MatchString(name) {
			out = append(out, sf.rewritten)
		}
	}
	return out
}
