package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aurorder/pkg/deps"
	apperrors "github.com/matzehuels/aurorder/pkg/errors"
	pkgio "github.com/matzehuels/aurorder/pkg/io"
	"github.com/matzehuels/aurorder/pkg/render/nodelink"
)

// Graph output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

// graphOpts holds the flags of the graph command.
type graphOpts struct {
	format       string
	from         string
	output       string
	detailed     bool
	hideExternal bool
	scale        float64
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [package]",
		Short: "Render the dependency graph of an AUR package",
		Long: `Resolve a package and render its dependency graph. Packages are grouped
by install stage; dependencies outside the AUR are drawn dashed.

With --from, the graph is read from a plan written by "order --json"
instead of querying the AUR.`,
		Example: `  aurorder graph yay > yay.dot
  aurorder graph --format svg -o paru.svg paru
  aurorder graph --from plan.json --format png -o plan.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			plan, err := c.loadPlan(cmd, args, opts.from)
			if err != nil {
				return err
			}
			return c.writeGraph(cmd, plan, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatDOT, "output format: dot, svg, pdf or png")
	cmd.Flags().StringVar(&opts.from, "from", "", "read the plan from a JSON file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show version and description in node labels")
	cmd.Flags().BoolVar(&opts.hideExternal, "hide-external", false, "omit dependencies outside the AUR")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2, "scale factor for png output")

	return cmd
}

func checkFormat(format string) error {
	switch format {
	case formatDOT, formatSVG, formatPDF, formatPNG:
		return nil
	}
	return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown format %q (want dot, svg, pdf or png)", format)
}

// loadPlan resolves the package named in args or imports the plan at from.
func (c *CLI) loadPlan(cmd *cobra.Command, args []string, from string) (*deps.Plan, error) {
	switch {
	case from != "" && len(args) > 0:
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "give either a package or --from, not both")
	case from != "":
		loggerFromContext(cmd.Context()).Debug("importing plan", "path", from)
		return pkgio.ImportPlan(from)
	case len(args) == 0:
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "a package name or --from is required")
	}
	name, err := packageArg(args[0])
	if err != nil {
		return nil, err
	}
	return c.resolve(cmd, name, false)
}

func (c *CLI) writeGraph(cmd *cobra.Command, plan *deps.Plan, opts graphOpts) error {
	ctx := cmd.Context()
	dot := nodelink.ToDOT(plan.Graph, nodelink.Options{
		Detailed:     opts.detailed,
		HideExternal: opts.hideExternal,
	})

	var data []byte
	var err error
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case formatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	case formatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, opts.scale)
	default:
		return checkFormat(opts.format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printSuccess(cmd.ErrOrStderr(), "Rendered %s", opts.format)
	printFile(cmd.ErrOrStderr(), opts.output)
	return nil
}
