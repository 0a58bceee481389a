// Package hook wires the root check into the pre-commit framework.
package hook

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigName is the pre-commit framework configuration file.
const ConfigName = ".pre-commit-config.yaml"

// HookID identifies our entry inside .pre-commit-config.yaml.
const HookID = "forbid-root-artifacts"

// ErrPreCommitMissing reports that the pre-commit executable is not on PATH.
// Callers treat it as a hint to the user, not a failure.
var ErrPreCommitMissing = errors.New("pre-commit is not installed")

// hookEntry is the hook definition we maintain inside the local repo block.
// It is rebuilt on every update so stale fields do not linger.
func hookEntry() map[string]any {
	return map[string]any{
		"id":             HookID,
		"name":           "Forbid root artifacts",
		"entry":          "rootkeeper check",
		"language":       "system",
		"pass_filenames": false,
		"always_run":     true,
	}
}

// AddToConfig inserts or updates the root check hook in
// .pre-commit-config.yaml, creating the file or the "repo: local" block when
// missing. The document is handled as generic YAML so fields the framework
// or the user added elsewhere are preserved.
func AddToConfig(repoRoot string) error {
	path := filepath.Join(repoRoot, ConfigName)

	doc := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("invalid YAML in %s: %w", ConfigName, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot read %s: %w", ConfigName, err)
	}

	repos, _ := doc["repos"].([]any)
	entry := hookEntry()

	placed := false
	for _, r := range repos {
		repo, ok := r.(map[string]any)
		if !ok || repo["repo"] != "local" {
			continue
		}

		hooks, _ := repo["hooks"].([]any)
		updated := false
		for i, h := range hooks {
			if hk, ok := h.(map[string]any); ok && hk["id"] == HookID {
				hooks[i] = entry
				updated = true
				break
			}
		}
		if !updated {
			hooks = append(hooks, entry)
		}
		repo["hooks"] = hooks
		placed = true
		break
	}
	if !placed {
		repos = append(repos, map[string]any{
			"repo":  "local",
			"hooks": []any{entry},
		})
	}
	doc["repos"] = repos

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", ConfigName, err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", ConfigName, err)
	}
	return nil
}

// Install runs "pre-commit install" so the framework writes the actual git
// hook. Returns ErrPreCommitMissing when the executable is absent.
func Install(repoRoot string) error {
	if _, err := exec.LookPath("pre-commit"); err != nil {
		return ErrPreCommitMissing
	}

	cmd := exec.Command("pre-commit", "install")
	cmd.Dir = repoRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pre-commit install failed: %s", strings.TrimSpace(string(out)))
	}
	return nil
}
