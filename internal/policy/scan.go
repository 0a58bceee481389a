package policy

import (
	"sort"
	"strings"
)

// Reason explains why an entry violates the effective policy.
type Reason string

const (
	// ReasonNotWhitelisted marks a file no whitelist name or pattern permits.
	ReasonNotWhitelisted Reason = "file not in whitelist"
	// ReasonDirectoryNotAllowed marks a directory missing from the allowlist.
	ReasonDirectoryNotAllowed Reason = "directory not in allowed_directories"
)

// RootEntry is one top-level entry of a repository: a name plus a flag.
// The listing is flat; the scanner never recurses.
type RootEntry struct {
	Name  string
	IsDir bool
}

// Violation is a root entry the effective policy does not permit. Directory
// names carry a trailing "/" to distinguish them from same-named files.
type Violation struct {
	Name   string
	Reason Reason
}

// vcsDirs are version control directories that are never policed, regardless
// of the directory allowlist.
var vcsDirs = NewNameSet([]string{".git", ".svn", ".hg"})

// Scan checks every root entry against the policy and returns violations
// sorted case-insensitively by name. The trailing directory marker is not
// part of the sort key, so a file and a same-named directory sort adjacently;
// ties keep the original entry order.
//
// Directories are checked only against AllowedDirectories, never against the
// file patterns. A nil AllowedDirectories permits every directory.
func Scan(entries []RootEntry, p EffectivePolicy) []Violation {
	matcher := NewMatcher(p.Patterns)

	var violations []Violation
	for _, entry := range entries {
		if entry.IsDir {
			if vcsDirs.Has(entry.Name) {
				continue
			}
			if p.AllowedDirectories == nil {
				continue
			}
			if !p.AllowedDirectories.Has(entry.Name) {
				violations = append(violations, Violation{
					Name:   entry.Name + "/",
					Reason: ReasonDirectoryNotAllowed,
				})
			}
			continue
		}

		if p.AllowedNames.Has(entry.Name) {
			continue
		}
		if matcher.MatchAny(entry.Name) {
			continue
		}
		violations = append(violations, Violation{
			Name:   entry.Name,
			Reason: ReasonNotWhitelisted,
		})
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return sortKey(violations[i].Name) < sortKey(violations[j].Name)
	})
	return violations
}

// sortKey folds the name and strips the directory marker so ordering only
// ever depends on the name itself.
func sortKey(name string) string {
	return Fold(strings.TrimSuffix(name, "/"))
}
