package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rootkeeper/rootkeeper/internal/config"
)

func newInitCmd() *cobra.Command {
	opts := struct{ root string }{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.UserConfigName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(opts.root)
			if err != nil {
				return NewExitError(ExitConfigError, err.Error())
			}
			return runInit(cmd, root)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "repository root (detected via git when empty)")

	return cmd
}

func runInit(cmd *cobra.Command, root string) error {
	path := filepath.Join(root, config.UserConfigName)

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists: %s\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		return NewExitError(ExitConfigError, fmt.Sprintf("cannot write config: %v", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config: %s\n", path)
	return nil
}

const starterConfig = `# Configuration for rootkeeper.
# Files and directories allowed at the repository root.

# extend: add to the built-in whitelist (default)
# replace: ignore the built-in whitelist entirely
mode: extend

# Extra files allowed at the root.
allow: []

# Built-in whitelist entries to reject anyway (extend mode only).
deny: []

# Glob patterns for files to ignore, e.g. "*.generated".
ignore_patterns: []

# Uncomment to also police top-level directories. Absent means any
# directory is fine; an empty list forbids all of them.
# allowed_directories:
#   - src
#   - docs
`
