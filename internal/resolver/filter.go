package resolver

import "strings"

const doubleStar = "**"

// decomposedFilter is one raw pattern split into its path segments.
type decomposedFilter struct {
	segments []string
	excludes bool
}

// decompose splits a raw filter into non-empty path segments, stripping
// a leading "!" into the excludes flag. Empty components are discarded,
// so "/a//b/" yields ["a" "b"]. ok is false for blank filters.
func decompose(raw string) (decomposedFilter, bool) {
	raw = strings.TrimSpace(raw)

	df := decomposedFilter{}
	if strings.HasPrefix(raw, "!") {
		df.excludes = true
		raw = raw[1:]
	}

	for _, part := range strings.Split(raw, "/") {
		if part != "" {
			df.segments = append(df.segments, part)
		}
	}
	return df, len(df.segments) > 0
}

// decomposeAll decomposes every raw filter, skipping blanks. A filter
// whose first segment is "**" is expanded into two variants: the
// original, which descends through subdirectories, and a copy without
// the leading "**", which matches directly in the current directory.
func decomposeAll(filters []string) []decomposedFilter {
	out := make([]decomposedFilter, 0, len(filters))
	for _, raw := range filters {
		df, ok := decompose(raw)
		if !ok {
			continue
		}
		out = append(out, df)

		if df.segments[0] == doubleStar && len(df.segments) > 1 {
			out = append(out, decomposedFilter{
				segments: df.segments[1:],
				excludes: df.excludes,
			})
		}
	}
	return out
}
