package resolver

import (
	"fmt"
	"regexp"
	"strings"
)

// compileSegment converts one wildcard segment into an anchored regexp
// matching a single path component. "*" matches any run of
// non-separator characters, "?" at most one. The pattern accepts an
// optional leading "/" so "name" and "/name" match alike, and never
// crosses a "/".
func compileSegment(segment string) (*regexp.Regexp, error) {
	segment = strings.TrimPrefix(segment, "!")
	segment = strings.TrimPrefix(segment, "/")

	body := regexp.QuoteMeta(segment)
	body = strings.ReplaceAll(body, `\*`, `[^/]*`)
	body = strings.ReplaceAll(body, `\?`, `[^/]?`)

	re, err := regexp.Compile(`^/?` + body + `$`)
	if err != nil {
		return nil, fmt.Errorf("%w: compile segment %q: %v", ErrInvalidPattern, segment, err)
	}
	return re, nil
}

// hasWildcard reports whether the segment contains wildcard characters.
func hasWildcard(segment string) bool {
	return strings.ContainsAny(segment, "*?")
}
