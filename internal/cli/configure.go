package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rootkeeper/rootkeeper/internal/config"
	"github.com/rootkeeper/rootkeeper/internal/gitrepo"
	"github.com/rootkeeper/rootkeeper/internal/hook"
	"github.com/rootkeeper/rootkeeper/internal/policy"
)

type configureOptions struct {
	root           string
	defaults       string
	nonInteractive bool
	noHook         bool
}

func newConfigureCmd() *cobra.Command {
	opts := &configureOptions{}

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Whitelist existing root files and set up the pre-commit hook",
		Long: `Configure scans the repository top level for files the whitelist does not
permit, lets you pick which of them to allow, writes the selection into
.root-artifacts.yaml, and registers the check with the pre-commit framework.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "repository root (detected via git when empty)")
	cmd.Flags().StringVar(&opts.defaults, "defaults", "", "path to a default whitelist document (built-in when empty)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "whitelist every unlisted file without prompting")
	cmd.Flags().BoolVar(&opts.noHook, "no-hook", false, "skip pre-commit hook setup")

	return cmd
}

func runConfigure(cmd *cobra.Command, opts *configureOptions) error {
	out := cmd.OutOrStdout()

	root, err := resolveRoot(opts.root)
	if err != nil {
		return NewExitError(ExitConfigError, err.Error())
	}

	if !opts.noHook {
		setupHook(cmd, root)
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

	candidates := unlistedFiles(entries, policy.Resolve(defaults, userDoc.Policy()))
	if len(candidates) == 0 {
		fmt.Fprintln(out, "All files in the repository root are already whitelisted.")
		return nil
	}

	fmt.Fprintf(out, "Found %d file(s) not in the whitelist:\n\n", len(candidates))
	for _, name := range candidates {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	fmt.Fprintln(out)

	var selected []string
	if opts.nonInteractive {
		selected = candidates
		fmt.Fprintln(out, "Non-interactive mode: whitelisting all of them.")
	} else {
		selected = selectNames(cmd.InOrStdin(), out, candidates)
	}

	if len(selected) == 0 {
		fmt.Fprintln(out, "Nothing selected. Run configure again or edit", config.UserConfigName, "by hand.")
		return nil
	}

	if userDoc == nil {
		userDoc = &config.UserConfig{Mode: string(policy.ModeExtend)}
	}
	added := userDoc.AddAllow(selected)

	if err := config.SaveUserConfig(root, userDoc); err != nil {
		return NewExitError(ExitConfigError, err.Error())
	}

	fmt.Fprintf(out, "Saved %s\n", config.UserConfigName)
	if len(added) > 0 {
		fmt.Fprintln(out, "Added to whitelist:")
		for _, name := range added {
			fmt.Fprintf(out, "  + %s\n", name)
		}
	}

	return nil
}

// setupHook registers the check with pre-commit. Failures here are reported
// and skipped; whitelist configuration is still worth finishing without the
// hook in place.
func setupHook(cmd *cobra.Command, root string) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if err := hook.AddToConfig(root); err != nil {
		fmt.Fprintf(errOut, "WARNING: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Added hook to %s\n", hook.ConfigName)

	switch err := hook.Install(root); {
	case err == nil:
		fmt.Fprintln(out, "Pre-commit hook installed (.git/hooks/pre-commit)")
	case errors.Is(err, hook.ErrPreCommitMissing):
		fmt.Fprintln(out, "pre-commit is not installed; install it and run: pre-commit install")
	default:
		fmt.Fprintf(errOut, "WARNING: %v\n", err)
	}
}

// unlistedFiles returns the names of file violations, already sorted by the
// scanner. Directory violations are not configure candidates; allow lists
// hold file names.
func unlistedFiles(entries []policy.RootEntry, effective policy.EffectivePolicy) []string {
	var names []string
	for _, v := range policy.Scan(entries, effective) {
		if v.Reason == policy.ReasonNotWhitelisted {
			names = append(names, v.Name)
		}
	}
	return names
}
