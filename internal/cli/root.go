// Package cli implements the rootkeeper commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rootkeeper/rootkeeper/internal/config"
	"github.com/rootkeeper/rootkeeper/internal/gitrepo"
)

// NewRoot builds the rootkeeper command tree.
func NewRoot(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rootkeeper",
		Short:         "rootkeeper: keep the repository root clean",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version
	cmd.SetVersionTemplate("rootkeeper {{.Version}}\n")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newConfigureCmd())
	cmd.AddCommand(newInitCmd())

	return cmd
}

// resolveRoot returns the explicit root when given, otherwise asks git.
func resolveRoot(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return gitrepo.Root()
}

// warnUnrecognizedMode surfaces a probable mode typo. The engine still falls
// back to extend, so the check keeps working; staying silent would mask the
// typo forever.
func warnUnrecognizedMode(cmd *cobra.Command, doc *config.UserConfig) {
	if raw, ok := doc.UnrecognizedMode(); ok {
		fmt.Fprintf(cmd.ErrOrStderr(),
			"WARNING: unrecognized mode %q in %s, falling back to extend\n",
			raw, config.UserConfigName)
	}
}
