// Package gitrepo locates the repository and enumerates its top level.
package gitrepo

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rootkeeper/rootkeeper/internal/policy"
)

// Root returns the repository top-level directory via git.
func Root() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("cannot determine repository root: %s", msg)
		}
		return "", fmt.Errorf("cannot determine repository root: %w", err)
	}

	root := strings.TrimSpace(stdout.String())
	if root == "" {
		return "", fmt.Errorf("git rev-parse --show-toplevel returned an empty path")
	}
	return root, nil
}

// ListRoot enumerates the top-level entries of dir as a flat listing. No
// recursion: the policy engine only ever sees the root itself.
func ListRoot(dir string) ([]policy.RootEntry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list repository root: %w", err)
	}

	entries := make([]policy.RootEntry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, policy.RootEntry{Name: d.Name(), IsDir: d.IsDir()})
	}
	return entries, nil
}
