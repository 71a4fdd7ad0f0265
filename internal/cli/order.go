package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aurorder/pkg/deps"
	pkgio "github.com/matzehuels/aurorder/pkg/io"
)

// orderOpts holds the flags of the order command.
type orderOpts struct {
	json   bool
	plain  bool
	levels bool
	output string
}

// orderCommand creates the order command.
func (c *CLI) orderCommand() *cobra.Command {
	var opts orderOpts

	cmd := &cobra.Command{
		Use:   "order <package>",
		Short: "Print the build order of an AUR package",
		Long: `Resolve every AUR package the given package needs and print them in an
order where each package comes after all of its dependencies. The requested
package is always last.

Dependencies that are not in the AUR are listed separately; they are expected
to come from the official repositories.`,
		Example: `  aurorder order yay
  aurorder order --levels paru
  aurorder order --json -o plan.json google-chrome`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := packageArg(args[0])
			if err != nil {
				return err
			}
			plan, err := c.resolve(cmd, name, opts.json || opts.plain)
			if err != nil {
				return err
			}
			return c.writeOrder(cmd, plan, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "write the plan as JSON")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print package names only, one per line")
	cmd.Flags().BoolVar(&opts.levels, "levels", false, "group the order into install stages")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("json", "plain")

	return cmd
}

func (c *CLI) writeOrder(cmd *cobra.Command, plan *deps.Plan, opts orderOpts) error {
	stderr := cmd.ErrOrStderr()

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	var err error
	switch {
	case opts.json:
		err = pkgio.WritePlan(plan, out)
	case opts.plain:
		err = writePlain(out, plan)
	case opts.levels:
		printLevels(out, plan)
	default:
		printOrder(out, plan)
	}
	if err != nil {
		return err
	}

	if !opts.json && !opts.plain {
		printDiagnostics(stderr, plan)
		printStats(stderr, len(plan.Order), len(plan.External), plan.Rounds)
	}
	if opts.output != "" {
		printSuccess(stderr, "Wrote build order")
		printFile(stderr, opts.output)
	}
	return nil
}

func writePlain(w io.Writer, p *deps.Plan) error {
	_, err := io.WriteString(w, strings.Join(p.Order, "\n")+"\n")
	return err
}

// printOrder prints the numbered build order.
func printOrder(w io.Writer, p *deps.Plan) {
	width := len(fmt.Sprint(len(p.Order)))
	for i, name := range p.Order {
		num := StyleNumber.Render(fmt.Sprintf("%*d", width, i+1))
		style := StyleValue
		if name == p.Root {
			style = StyleTitle
		}
		fmt.Fprintf(w, "%s  %s\n", num, style.Render(name))
	}
}

// printLevels prints the order grouped into stages. Packages within one
// stage do not depend on each other.
func printLevels(w io.Writer, p *deps.Plan) {
	if len(p.Levels) == 0 {
		printOrder(w, p)
		return
	}
	for i, level := range p.Levels {
		fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Stage %d", i+1)))
		for _, name := range level {
			fmt.Fprintln(w, "  "+StyleValue.Render(name))
		}
	}
}
