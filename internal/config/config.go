// Package config loads and saves the whitelist policy documents.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rootkeeper/rootkeeper/internal/policy"
)

// UserConfigName is the user policy document expected at the repository root.
const UserConfigName = ".root-artifacts.yaml"

// Defaults is the built-in whitelist document shape: literal file names plus
// glob patterns, both optional.
type Defaults struct {
	Files    []string `yaml:"files"`
	Patterns []string `yaml:"patterns"`
}

// UserConfig is the user policy document shape. AllowedDirectories is a
// pointer so an absent field (directories unrestricted) survives decoding
// distinct from an empty list (every directory forbidden).
type UserConfig struct {
	Mode               string    `yaml:"mode"`
	Allow              []string  `yaml:"allow,omitempty"`
	Deny               []string  `yaml:"deny,omitempty"`
	AllowedDirectories *[]string `yaml:"allowed_directories,omitempty"`
	IgnorePatterns     []string  `yaml:"ignore_patterns,omitempty"`
}

// LoadDefaults reads a default whitelist document. An empty path loads the
// embedded document. A missing file yields an empty policy, not an error;
// a present but malformed file is a configuration error.
func LoadDefaults(path string) (policy.DefaultPolicy, error) {
	data := []byte(defaultWhitelist)
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return policy.DefaultPolicy{}, nil
			}
			return policy.DefaultPolicy{}, fmt.Errorf("cannot read default whitelist: %w", err)
		}
		data = b
	}

	var doc Defaults
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return policy.DefaultPolicy{}, fmt.Errorf("invalid default whitelist: %w", err)
	}
	return policy.DefaultPolicy{Files: doc.Files, Patterns: doc.Patterns}, nil
}

// LoadUserConfig reads the user policy from the repository root. A missing
// document returns (nil, nil): having no user policy is not an error, and
// callers must keep that distinct from an empty document. Malformed YAML is
// a configuration error.
func LoadUserConfig(repoRoot string) (*UserConfig, error) {
	data, err := os.ReadFile(filepath.Join(repoRoot, UserConfigName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", UserConfigName, err)
	}

	var doc UserConfig
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", UserConfigName, err)
	}
	return &doc, nil
}

// Policy converts the document to the core representation. A nil document
// (no user policy present) converts to a nil policy, which Resolve treats as
// "defaults only".
func (c *UserConfig) Policy() *policy.UserPolicy {
	if c == nil {
		return nil
	}
	return &policy.UserPolicy{
		Mode:               policy.ParseMode(c.Mode),
		Allow:              c.Allow,
		Deny:               c.Deny,
		AllowedDirectories: c.AllowedDirectories,
		IgnorePatterns:     c.IgnorePatterns,
	}
}

// UnrecognizedMode reports a mode value that is neither extend nor replace.
// The core still falls back to extend; surfacing the raw value lets the CLI
// warn about a probable typo instead of silently widening the whitelist.
func (c *UserConfig) UnrecognizedMode() (string, bool) {
	if c == nil {
		return "", false
	}
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case "", "extend", "replace":
		return "", false
	}
	return c.Mode, true
}

// AddAllow appends names to the allow list, skipping case-insensitive
// duplicates, and returns the names actually added.
func (c *UserConfig) AddAllow(names []string) []string {
	existing := policy.NewNameSet(c.Allow)
	var added []string
	for _, n := range names {
		if existing.Has(n) {
			continue
		}
		c.Allow = append(c.Allow, n)
		existing[policy.Fold(n)] = struct{}{}
		added = append(added, n)
	}
	return added
}

const userConfigHeader = `# Configuration for rootkeeper.
# Files and directories allowed at the repository root.

`

// SaveUserConfig writes the user policy document to the repository root,
// omitting empty optional fields. Mode is always written so the file is
// self-describing.
func SaveUserConfig(repoRoot string, doc *UserConfig) error {
	if doc.Mode == "" {
		doc.Mode = string(policy.ModeExtend)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", UserConfigName, err)
	}

	path := filepath.Join(repoRoot, UserConfigName)
	if err := os.WriteFile(path, append([]byte(userConfigHeader), out...), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", UserConfigName, err)
	}
	return nil
}
