package cli

import (
	"io"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/ladder/pkg/io"
	"github.com/matzehuels/ladder/pkg/pipeline"
)

// queryOpts holds the flags shared by solve, graph and browse.
type queryOpts struct {
	dict     string // dictionary file, "-" for stdin
	maxSteps int    // BFS depth ceiling (0 = unlimited)
	maxPaths int    // path count ceiling (0 = unlimited)
	noCache  bool   // bypass the result cache
	refresh  bool   // recompute and overwrite cached entries
}

func (q *queryOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.dict, "dict", "", "dictionary file, one word per line (- for stdin)")
	cmd.Flags().IntVar(&q.maxSteps, "max-steps", 0, "abort when the search gets deeper than this (0 = unlimited)")
	cmd.Flags().IntVar(&q.maxPaths, "max-paths", 0, "abort when more ladders than this exist (0 = unlimited)")
	cmd.Flags().BoolVar(&q.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&q.refresh, "refresh", false, "ignore cached results")
}

// options builds pipeline options from positional args
// (<begin> <end> [word...]). Limits not set on the command line come from
// the [search] section of the config file.
func (c *CLI) options(cmd *cobra.Command, q *queryOpts, args []string) (pipeline.Options, error) {
	cfg, err := c.config()
	if err != nil {
		return pipeline.Options{}, err
	}
	d, err := c.loadDictionary(cmd.Context(), q.dict, args[2:])
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		Begin:    args[0],
		End:      args[1],
		MaxSteps: cfg.Search.MaxSteps,
		MaxPaths: cfg.Search.MaxPaths,
		Refresh:  q.refresh,
		Dict:     d,
		Logger:   loggerFromContext(cmd.Context()),
	}
	if cmd.Flags().Changed("max-steps") {
		opts.MaxSteps = q.maxSteps
	}
	if cmd.Flags().Changed("max-paths") {
		opts.MaxPaths = q.maxPaths
	}
	return opts, nil
}

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	queryOpts
	format string // text or json
	output string // output file path
}

// solveCommand creates the solve command. It is the thin driver over the
// solver: every shortest ladder, one per line, words separated by spaces.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "solve <begin> <end> [word...]",
		Short: "Print every shortest transformation sequence",
		Long: `Print every shortest sequence transforming <begin> into <end>.

Consecutive words differ in exactly one letter and every word after <begin>
must be in the dictionary. The dictionary is read from --dict or the config
file; trailing words on the command line are added to it.

Nothing is printed when no ladder exists.`,
		Example: `  ladder solve hit cog hot dot dog lot log cog
  ladder solve cold warm --dict /usr/share/dict/words --format json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, &opts, args)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, opts *solveOpts, args []string) error {
	if err := pipeline.ValidateResultFormat(opts.format); err != nil {
		return err
	}
	ctx := cmd.Context()

	popts, err := c.options(cmd, &opts.queryOpts, args)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	res, err := runner.Solve(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("Solved", "ladders", len(res.Paths), "length", res.Length, "cached", res.CacheHit)
	if !res.Found {
		loggerFromContext(ctx).Warn("No ladder found", "begin", res.Begin, "end", res.End)
	}

	err = writeOutput(cmd, opts.output, func(w io.Writer) error {
		if opts.format == pipeline.FormatJSON {
			return pkgio.WriteResultJSON(res.Result, w)
		}
		return pkgio.WriteText(res.Paths, w)
	})
	if err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Solved %s %s %s", StyleHighlight.Render(res.Begin), iconArrow, StyleHighlight.Render(res.End))
		printFile(opts.output)
		printStats(res.Stats.Nodes, res.Stats.Edges, len(res.Paths), res.CacheHit)
	}
	return nil
}
