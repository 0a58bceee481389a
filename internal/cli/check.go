package cli

import (
	"github.com/spf13/cobra"

	"github.com/rootkeeper/rootkeeper/internal/config"
	"github.com/rootkeeper/rootkeeper/internal/gitrepo"
	"github.com/rootkeeper/rootkeeper/internal/policy"
)

type checkOptions struct {
	root     string
	defaults string
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report root entries the whitelist does not permit",
		Long: `Check scans the repository top level against the effective whitelist
(built-in defaults merged with .root-artifacts.yaml) and blocks the commit
when anything unexpected is found.

Exit codes: 0 clean, 1 violations found, 2 configuration error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "repository root (detected via git when empty)")
	cmd.Flags().StringVar(&opts.defaults, "defaults", "", "path to a default whitelist document (built-in when empty)")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	root, err := resolveRoot(opts.root)
	if err != nil {
		return NewExitError(ExitConfigError, err.Error())
	}

	defaults, err := config.LoadDefaults(opts.defaults)
	if err != nil {
		return NewExitError(ExitConfigError, err.Error())
	}

	userDoc, err := config.LoadUserConfig(root)
	if err != nil {
		return NewExitError(ExitConfigError, err.Error())
	}
	warnUnrecognizedMode(cmd, userDoc)

	entries, err := gitrepo.ListRoot(root)
	if err != nil {
		return NewExitError(ExitConfigError, err.Error())
	}

	effective := policy.Resolve(defaults, userDoc.Policy())
	violations := policy.Scan(entries, effective)
	if len(violations) == 0 {
		return nil
	}

	renderReport(cmd.OutOrStdout(), violations, effective)
	return NewExitError(ExitViolations, "")
}
