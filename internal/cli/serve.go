package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ladder/pkg/observability"
	"github.com/matzehuels/ladder/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	dict    string
	noCache bool
}

// serveCommand creates the serve command, which exposes the solver over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API.

Routes:
  POST /v1/ladders        solve one query
  POST /v1/ladders/batch  solve many queries in parallel
  POST /v1/graphs         export the level graph (?format=dot|svg|json)
  GET  /healthz           liveness and build info
  GET  /metrics           Prometheus metrics

Requests without inline "words" use the dictionary from --dict or the
config file. Limits from the [search] section cap every request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.dict, "dict", "", "default dictionary file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	cfg, err := c.config()
	if err != nil {
		return err
	}
	addr := opts.addr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	spinner := newSpinnerWithContext(ctx, "Loading dictionary...")
	spinner.Start()
	d, err := c.loadDictionary(ctx, opts.dict, nil)
	if err != nil {
		spinner.StopWithError("Failed to load dictionary")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Loaded %d words", d.Len()))

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	hooks := observability.NewPrometheusHooks(reg)
	observability.SetSolverHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	srv := server.New(runner, d, c.Logger, server.Options{
		Addr:        addr,
		MaxSteps:    cfg.Search.MaxSteps,
		MaxPaths:    cfg.Search.MaxPaths,
		Concurrency: cfg.Server.Concurrency,
		Timeout:     cfg.Server.Timeout.Duration,
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	printInfo("Listening on %s", StyleLink.Render(serverURL(addr)))
	printKeyValue("cache", cfg.Cache.Backend)
	printKeyValue("max paths", fmt.Sprint(cfg.Search.MaxPaths))
	printNextStep("Try", fmt.Sprintf(`curl -s -XPOST %s/v1/ladders -d '{"begin":"hit","end":"cog","words":["hot","dot","dog","lot","log","cog"]}'`, serverURL(addr)))

	return srv.ListenAndServe(ctx)
}

// serverURL turns a listen address into a URL a client can open.
func serverURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
