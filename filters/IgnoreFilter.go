package filters

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/reaandrew/snapreview/core"
)

// IgnoreFilter drops findings whose identifier matches one of a set of glob
// patterns. Patterns use ':' as the separator, so "lint-snap-v2:*" matches
// every lint finding but "declaration-snap-v2:*" does not match
// "declaration-snap-v2:plugs_connection:cam:camera"; use "**" for that.
type IgnoreFilter struct {
	patterns []string
	globs    []glob.Glob
}

func NewIgnoreFilter(patterns []string) (*IgnoreFilter, error) {
	filter := &IgnoreFilter{}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, ':')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern '%s': %w", pattern, err)
		}
		filter.patterns = append(filter.patterns, pattern)
		filter.globs = append(filter.globs, g)
	}
	return filter, nil
}

// Ignored returns the pattern that matched the finding, if any.
func (f *IgnoreFilter) Ignored(finding core.Finding) (string, bool) {
	if f == nil {
		return "", false
	}
	for i, g := range f.globs {
		if g.Match(finding.ID) {
			return f.patterns[i], true
		}
	}
	return "", false
}
