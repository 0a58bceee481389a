package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rootkeeper/rootkeeper/internal/config"
)

func TestConfigureNonInteractive(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "LICENSE", "")
	writeFile(t, tmpDir, "app.py", "")
	writeFile(t, tmpDir, "notes.txt", "")

	out, _, err := execute(t, "", "configure", "--root", tmpDir, "--non-interactive", "--no-hook")
	if err != nil {
		t.Fatalf("configure error = %v", err)
	}
	if !strings.Contains(out, "app.py") || !strings.Contains(out, "notes.txt") {
		t.Errorf("output should list the candidates, got:\n%s", out)
	}

	doc, err := config.LoadUserConfig(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if doc == nil {
		t.Fatal("configure should have written the user config")
	}
	allow := strings.Join(doc.Allow, ",")
	if !strings.Contains(allow, "app.py") || !strings.Contains(allow, "notes.txt") {
		t.Errorf("Allow = %v, want both candidates", doc.Allow)
	}
	if strings.Contains(allow, "LICENSE") {
		t.Errorf("already-whitelisted names should not be added, got %v", doc.Allow)
	}

	// The repo is clean afterwards.
	_, _, err = execute(t, "", "check", "--root", tmpDir)
	if code := exitCode(t, err); code != 0 {
		t.Errorf("check after configure should pass, exit code = %d", code)
	}
}

func TestConfigureNothingToDo(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "LICENSE", "")

	out, _, err := execute(t, "", "configure", "--root", tmpDir, "--non-interactive", "--no-hook")
	if err != nil {
		t.Fatalf("configure error = %v", err)
	}
	if !strings.Contains(out, "already whitelisted") {
		t.Errorf("output should say there is nothing to do, got:\n%s", out)
	}
	if _, statErr := os.Stat(filepath.Join(tmpDir, config.UserConfigName)); statErr == nil {
		t.Error("no user config should be written when there is nothing to add")
	}
}

func TestConfigureInteractiveSelection(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "aaa.txt", "")
	writeFile(t, tmpDir, "bbb.txt", "")
	writeFile(t, tmpDir, "ccc.txt", "")

	// Candidates are sorted; picking 1 and 3 selects aaa and ccc.
	_, _, err := execute(t, "1,3\n", "configure", "--root", tmpDir, "--no-hook")
	if err != nil {
		t.Fatalf("configure error = %v", err)
	}

	doc, err := config.LoadUserConfig(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if doc == nil {
		t.Fatal("configure should have written the user config")
	}
	if len(doc.Allow) != 2 || doc.Allow[0] != "aaa.txt" || doc.Allow[1] != "ccc.txt" {
		t.Errorf("Allow = %v, want [aaa.txt ccc.txt]", doc.Allow)
	}
}

func TestConfigureEmptySelectionSkips(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "aaa.txt", "")

	out, _, err := execute(t, "\n", "configure", "--root", tmpDir, "--no-hook")
	if err != nil {
		t.Fatalf("configure error = %v", err)
	}
	if !strings.Contains(out, "Nothing selected") {
		t.Errorf("output should report the skip, got:\n%s", out)
	}
	if _, statErr := os.Stat(filepath.Join(tmpDir, config.UserConfigName)); statErr == nil {
		t.Error("no user config should be written when nothing is selected")
	}
}

func TestConfigureExtendsExistingConfig(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "old.txt", "")
	writeFile(t, tmpDir, "new.txt", "")
	writeFile(t, tmpDir, config.UserConfigName, "mode: extend\nallow:\n  - old.txt\n")

	_, _, err := execute(t, "", "configure", "--root", tmpDir, "--non-interactive", "--no-hook")
	if err != nil {
		t.Fatalf("configure error = %v", err)
	}

	doc, err := config.LoadUserConfig(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Allow) != 2 {
		t.Errorf("Allow = %v, want old.txt plus new.txt", doc.Allow)
	}
}

func TestConfigureWritesHookConfig(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "LICENSE", "")

	_, _, err := execute(t, "", "configure", "--root", tmpDir, "--non-interactive")
	if err != nil {
		t.Fatalf("configure error = %v", err)
	}

	data, readErr := os.ReadFile(filepath.Join(tmpDir, ".pre-commit-config.yaml"))
	if readErr != nil {
		t.Fatalf("pre-commit config should be written: %v", readErr)
	}
	if !strings.Contains(string(data), "forbid-root-artifacts") {
		t.Errorf("hook entry missing:\n%s", data)
	}
}
