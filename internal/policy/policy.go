// Package policy implements whitelist resolution, root-listing scans, and
// violation triage for repository root hygiene.
package policy

import (
	"sort"
	"strings"
)

// Mode selects how a user policy combines with the default policy.
type Mode string

const (
	// ModeExtend adds to and subtracts from the default policy.
	ModeExtend Mode = "extend"
	// ModeReplace fully supersedes the default policy.
	ModeReplace Mode = "replace"
)

// ParseMode maps a mode string to a Mode. Anything other than "replace" is
// treated as extend, so a typo in an existing configuration keeps commits
// working instead of breaking them.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeReplace)) {
		return ModeReplace
	}
	return ModeExtend
}

// DefaultPolicy is the built-in whitelist: literal file names plus glob
// patterns. An absent source yields the zero value, which permits nothing.
type DefaultPolicy struct {
	Files    []string
	Patterns []string
}

// UserPolicy is a repository's own policy document. AllowedDirectories is a
// pointer because an absent field ("don't police directories") and an empty
// list ("forbid every directory") mean different things.
type UserPolicy struct {
	Mode               Mode
	Allow              []string
	Deny               []string
	AllowedDirectories *[]string
	IgnorePatterns     []string
}

// NameSet is a case-folded membership set of file or directory names.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet, case-folding every name.
func NewNameSet(names []string) NameSet {
	set := make(NameSet, len(names))
	for _, n := range names {
		set[Fold(n)] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the case-folded name.
func (s NameSet) Has(name string) bool {
	_, ok := s[Fold(name)]
	return ok
}

// Names returns the folded members in sorted order.
func (s NameSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Fold normalizes a name for case-insensitive comparison.
func Fold(name string) string {
	return strings.ToLower(name)
}

// EffectivePolicy is the merged whitelist actually enforced. A nil
// AllowedDirectories means directories are not policed at all.
type EffectivePolicy struct {
	AllowedNames       NameSet
	Patterns           []string
	AllowedDirectories NameSet
}

// Resolve merges the default policy with an optional user policy.
//
// No user policy: the defaults apply and directories are unrestricted.
// Replace mode: the user policy stands alone; default names and patterns are
// fully discarded. Extend mode: defaults plus user allow minus user deny,
// with user patterns appended after the defaults.
func Resolve(def DefaultPolicy, user *UserPolicy) EffectivePolicy {
	if user == nil {
		return EffectivePolicy{
			AllowedNames: NewNameSet(def.Files),
			Patterns:     append([]string(nil), def.Patterns...),
		}
	}

	if user.Mode == ModeReplace {
		return EffectivePolicy{
			AllowedNames:       NewNameSet(user.Allow),
			Patterns:           append([]string(nil), user.IgnorePatterns...),
			AllowedDirectories: dirSet(user.AllowedDirectories),
		}
	}

	allowed := NewNameSet(def.Files)
	for _, n := range user.Allow {
		allowed[Fold(n)] = struct{}{}
	}
	for _, n := range user.Deny {
		delete(allowed, Fold(n))
	}

	patterns := make([]string, 0, len(def.Patterns)+len(user.IgnorePatterns))
	patterns = append(patterns, def.Patterns...)
	patterns = append(patterns, user.IgnorePatterns...)

	return EffectivePolicy{
		AllowedNames:       allowed,
		Patterns:           patterns,
		AllowedDirectories: dirSet(user.AllowedDirectories),
	}
}

// dirSet converts the optional directory allowlist, preserving the
// absent/empty distinction: nil stays nil, an empty list becomes an empty
// non-nil set that forbids every directory.
func dirSet(dirs *[]string) NameSet {
	if dirs == nil {
		return nil
	}
	return NewNameSet(*dirs)
}
