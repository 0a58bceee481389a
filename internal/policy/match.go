package policy

import (
	"sync"

	"github.com/gobwas/glob"
	lru "github.com/hashicorp/golang-lru/v2"
)

// globCacheSize bounds the process-wide compiled pattern cache. The triage
// tables alone account for a few dozen entries; batch callers scanning many
// repositories share the rest.
const globCacheSize = 512

var (
	globCacheOnce sync.Once
	globCache     *lru.Cache[string, glob.Glob]
)

// compiledGlob returns the compiled form of a pattern, case-folded so that
// matching a folded subject is case-insensitive. Compilation results are
// cached; the cache is safe for concurrent use.
func compiledGlob(pattern string) (glob.Glob, bool) {
	globCacheOnce.Do(func() {
		globCache, _ = lru.New[string, glob.Glob](globCacheSize)
	})

	folded := Fold(pattern)
	if g, ok := globCache.Get(folded); ok {
		return g, true
	}
	g, err := glob.Compile(folded)
	if err != nil {
		return nil, false
	}
	globCache.Add(folded, g)
	return g, true
}

// Matcher matches names against an ordered list of shell glob patterns,
// case-insensitively. Semantics are fnmatch-style: *, ?, and character
// classes, with no separator awareness and no recursive **.
type Matcher struct {
	patterns []string
}

// NewMatcher creates a matcher over the given patterns. The original pattern
// text is kept for reporting; folding happens at match time.
func NewMatcher(patterns []string) *Matcher {
	return &Matcher{patterns: patterns}
}

// MatchAny reports whether the name matches at least one pattern.
func (m *Matcher) MatchAny(name string) bool {
	folded := Fold(name)
	for _, p := range m.patterns {
		if matchPattern(folded, p) {
			return true
		}
	}
	return false
}

// Patterns returns the pattern list in its original order and spelling.
func (m *Matcher) Patterns() []string {
	return m.patterns
}

// matchPattern matches an already-folded name against one pattern. A pattern
// the glob engine rejects degrades to a literal comparison; a malformed
// pattern must never fail the whole scan.
func matchPattern(foldedName, pattern string) bool {
	if g, ok := compiledGlob(pattern); ok {
		return g.Match(foldedName)
	}
	return foldedName == Fold(pattern)
}
