package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aurorder/pkg/deps"
	depsaur "github.com/matzehuels/aurorder/pkg/deps/aur"
	apperrors "github.com/matzehuels/aurorder/pkg/errors"
	"github.com/matzehuels/aurorder/pkg/integrations"
)

// packageArg normalizes and validates the package name given on the
// command line.
func packageArg(arg string) (string, error) {
	name := integrations.NormalizePkgName(arg)
	if err := apperrors.ValidateAURPackageName(name); err != nil {
		return "", err
	}
	return name, nil
}

// resolve builds the plan for name against the configured endpoint,
// showing a spinner on stderr unless quiet is set.
func (c *CLI) resolve(cmd *cobra.Command, name string, quiet bool) (*deps.Plan, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	client, cc, err := c.newClient(ctx)
	if err != nil {
		return nil, err
	}
	defer cc.Close()
	resolver := depsaur.NewResolver(client)

	var spinner *Spinner
	if !quiet && !c.verbose {
		spinner = newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Resolving %s...", name))
		spinner.Start()
	}

	opts := deps.Options{Refresh: c.refresh, Logger: logger}
	if spinner != nil {
		opts.Progress = func(round, records int) {
			spinner.SetMessage(fmt.Sprintf("Resolving %s... %d found in %d rounds", name, records, round))
		}
	}

	prog := newProgress(logger)
	plan, err := resolver.Resolve(ctx, name, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Resolved %d packages", len(plan.Order)))
	return plan, nil
}

// printDiagnostics reports the parts of a plan that need attention from
// the user: a root unknown to the AUR, skipped constrained dependencies and
// names left to other repositories.
func printDiagnostics(w io.Writer, p *deps.Plan) {
	if !p.Found {
		printWarning(w, "%s has no AUR record; nothing to build from the AUR", p.Root)
		return
	}
	for _, cd := range p.Constrained {
		printWarning(w, "%s: skipped version-constrained dependency %q", cd.Package, cd.Raw)
	}
	if len(p.External) > 0 {
		printInfo(w, "Not in the AUR (install from the official repositories):")
		for _, name := range p.External {
			printDetail(w, "%s", name)
		}
	}
}
