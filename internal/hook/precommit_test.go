package hook

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func readConfig(t *testing.T, dir string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ConfigName))
	if err != nil {
		t.Fatal(err)
	}
	doc := map[string]any{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	return doc
}

func localHooks(t *testing.T, doc map[string]any) []any {
	t.Helper()
	repos, _ := doc["repos"].([]any)
	for _, r := range repos {
		repo, ok := r.(map[string]any)
		if ok && repo["repo"] == "local" {
			hooks, _ := repo["hooks"].([]any)
			return hooks
		}
	}
	t.Fatal("no local repo block found")
	return nil
}

func TestAddToConfigCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()

	if err := AddToConfig(tmpDir); err != nil {
		t.Fatalf("AddToConfig() error = %v", err)
	}

	hooks := localHooks(t, readConfig(t, tmpDir))
	if len(hooks) != 1 {
		t.Fatalf("len(hooks) = %d, want 1", len(hooks))
	}
	hk := hooks[0].(map[string]any)
	if hk["id"] != HookID {
		t.Errorf("id = %v, want %s", hk["id"], HookID)
	}
	if hk["always_run"] != true {
		t.Error("hook should be marked always_run")
	}
}

func TestAddToConfigAppendsToExistingLocalRepo(t *testing.T) {
	tmpDir := t.TempDir()
	existing := `repos:
  - repo: https://github.com/psf/black
    rev: 24.1.0
    hooks:
      - id: black
  - repo: local
    hooks:
      - id: my-lint
        name: My lint
        entry: ./lint.sh
        language: system
`
	os.WriteFile(filepath.Join(tmpDir, ConfigName), []byte(existing), 0644)

	if err := AddToConfig(tmpDir); err != nil {
		t.Fatalf("AddToConfig() error = %v", err)
	}

	doc := readConfig(t, tmpDir)
	repos := doc["repos"].([]any)
	if len(repos) != 2 {
		t.Fatalf("len(repos) = %d, want 2 (external repo preserved)", len(repos))
	}

	external := repos[0].(map[string]any)
	if external["rev"] != "24.1.0" {
		t.Error("unrelated repo fields should be preserved")
	}

	hooks := localHooks(t, doc)
	if len(hooks) != 2 {
		t.Fatalf("len(hooks) = %d, want 2 (existing hook kept)", len(hooks))
	}
	if hooks[0].(map[string]any)["id"] != "my-lint" {
		t.Error("pre-existing local hook should stay first")
	}
	if hooks[1].(map[string]any)["id"] != HookID {
		t.Error("our hook should be appended")
	}
}

func TestAddToConfigUpdatesExistingEntry(t *testing.T) {
	tmpDir := t.TempDir()
	existing := `repos:
  - repo: local
    hooks:
      - id: forbid-root-artifacts
        name: stale name
        entry: old-command
        language: python
`
	os.WriteFile(filepath.Join(tmpDir, ConfigName), []byte(existing), 0644)

	if err := AddToConfig(tmpDir); err != nil {
		t.Fatalf("AddToConfig() error = %v", err)
	}

	hooks := localHooks(t, readConfig(t, tmpDir))
	if len(hooks) != 1 {
		t.Fatalf("len(hooks) = %d, want 1 (entry updated in place)", len(hooks))
	}
	hk := hooks[0].(map[string]any)
	if hk["entry"] != "rootkeeper check" {
		t.Errorf("entry = %v, want the current command", hk["entry"])
	}
	if hk["language"] != "system" {
		t.Errorf("language = %v, want system", hk["language"])
	}
}

func TestAddToConfigInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, ConfigName), []byte("repos: [broken"), 0644)

	if err := AddToConfig(tmpDir); err == nil {
		t.Error("malformed pre-commit config should be an error")
	}
}

func TestAddToConfigIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	if err := AddToConfig(tmpDir); err != nil {
		t.Fatal(err)
	}
	if err := AddToConfig(tmpDir); err != nil {
		t.Fatal(err)
	}

	hooks := localHooks(t, readConfig(t, tmpDir))
	if len(hooks) != 1 {
		t.Errorf("len(hooks) = %d, want 1 after repeated runs", len(hooks))
	}
}
