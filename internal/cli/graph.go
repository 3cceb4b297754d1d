package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ladder/pkg/pipeline"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	queryOpts
	format       string // dot, svg or json
	shortestOnly bool   // drop nodes that lie on no shortest ladder
	detailed     bool   // label nodes with their BFS step
	output       string // output file path
}

// graphCommand creates the graph command, which exports the BFS level graph
// built while solving a query.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: pipeline.FormatDOT}

	cmd := &cobra.Command{
		Use:   "graph <begin> <end> [word...]",
		Short: "Export the BFS level graph of a query",
		Long: `Export the level graph the solver builds between <begin> and <end>.

Every discovered word becomes a node placed in the row of its BFS depth, with
an edge from each parent in the previous row. The goal is highlighted; nodes
that lie on no shortest ladder are drawn dashed, or dropped with
--shortest-only.

Formats:
  dot   Graphviz source (default)
  svg   rendered with the embedded Graphviz
  json  node-link document`,
		Example: `  ladder graph hit cog hot dot dog lot log cog -f svg -o hit-cog.svg
  ladder graph cold warm --dict words.txt --shortest-only | dot -Tpng > ladder.png`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, &opts, args)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, json")
	cmd.Flags().BoolVar(&opts.shortestOnly, "shortest-only", false, "keep only nodes on a shortest ladder")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show BFS steps in node labels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, opts *graphOpts, args []string) error {
	if err := pipeline.ValidateGraphFormat(opts.format); err != nil {
		return err
	}
	ctx := cmd.Context()

	popts, err := c.options(cmd, &opts.queryOpts, args)
	if err != nil {
		return err
	}
	popts.Format = opts.format
	popts.ShortestOnly = opts.shortestOnly
	popts.Detailed = opts.detailed

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spinner *Spinner
	if opts.format == pipeline.FormatSVG {
		spinner = newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
	}
	res, err := runner.Graph(ctx, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	err = writeOutput(cmd, opts.output, func(w io.Writer) error {
		_, err := w.Write(res.Data)
		return err
	})
	if err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Exported %s graph", opts.format)
		printFile(opts.output)
		if res.Graph != nil {
			printStats(res.Graph.NodeCount(), res.Graph.EdgeCount(), 0, false)
		} else {
			printStats(0, 0, 0, true)
		}
	}
	return nil
}
