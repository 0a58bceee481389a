package cli

import (
	"fmt"
	"io"

	"github.com/rootkeeper/rootkeeper/internal/config"
	"github.com/rootkeeper/rootkeeper/internal/policy"
)

// allowedSampleSize bounds how many whitelist names the report echoes back.
const allowedSampleSize = 10

// renderReport prints the commit-blocking report: the violations, a sample
// of the whitelist, remediation hints, and machine-oriented triage sections
// so an automated agent knows which files it may delete outright and which
// need a human.
func renderReport(w io.Writer, violations []policy.Violation, effective policy.EffectivePolicy) {
	fmt.Fprintln(w, "ERROR: files found in repository root that are not in the whitelist. Commit blocked.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Violations:")
	for _, v := range violations {
		fmt.Fprintf(w, "  [x] %s (%s)\n", v.Name, v.Reason)
	}
	fmt.Fprintln(w)

	allowed := effective.AllowedNames.Names()
	fmt.Fprintln(w, "Allowed files:")
	for i, name := range allowed {
		if i == allowedSampleSize {
			fmt.Fprintf(w, "  ... and %d more\n", len(allowed)-allowedSampleSize)
			break
		}
		fmt.Fprintf(w, "  [ok] %s\n", name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "What to do:")
	fmt.Fprintln(w, "  - Remove or move files into subdirectories (src/, docs/, tools/, ...)")
	fmt.Fprintf(w, "  - Or allow them in %s:\n", config.UserConfigName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    mode: extend")
	fmt.Fprintln(w, "    allow:")
	for i, v := range violations {
		if i == 3 {
			break
		}
		fmt.Fprintf(w, "      - %s\n", v.Name)
	}
	fmt.Fprintln(w)

	renderTriage(w, violations)
}

// renderTriage groups violations by disposition and prints one actionable
// section per group.
func renderTriage(w io.Writer, violations []policy.Violation) {
	var trash, cfg, unknown []policy.Violation
	for _, v := range violations {
		switch policy.Classify(v.Name) {
		case policy.Trash:
			trash = append(trash, v)
		case policy.Config:
			cfg = append(cfg, v)
		default:
			unknown = append(unknown, v)
		}
	}

	fmt.Fprintln(w, "## AGENT INSTRUCTIONS")
	fmt.Fprintln(w)

	if len(trash) > 0 {
		fmt.Fprintln(w, "### AUTO-DELETE (obvious trash):")
		for _, v := range trash {
			fmt.Fprintf(w, "  - %s\n", v.Name)
		}
		fmt.Fprintln(w, "Action: delete these without asking.")
		fmt.Fprintln(w)
	}

	if len(cfg) > 0 {
		fmt.Fprintln(w, "### ASK USER (config or important files):")
		for _, v := range cfg {
			fmt.Fprintf(w, "  - %s\n", v.Name)
		}
		fmt.Fprintf(w, "Action: ask whether to allow in %s or move into a subdirectory.\n", config.UserConfigName)
		fmt.Fprintln(w)
	}

	if len(unknown) > 0 {
		fmt.Fprintln(w, "### ANALYZE (unknown files):")
		for _, v := range unknown {
			fmt.Fprintf(w, "  - %s\n", v.Name)
		}
		fmt.Fprintln(w, "Action: inspect the content, then treat as trash or important.")
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "After fixing, retry: git add . && git commit")
}
