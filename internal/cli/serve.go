package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tiegraph/pkg/observability"
	"github.com/matzehuels/tiegraph/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve degree and path queries over HTTP",
		Long: `Serve builds the graph once and answers read-only queries until
interrupted:

  GET /healthz
  GET /graph
  GET /degrees[?histogram=true]
  GET /path?from=A&to=B
  GET /metrics`,
		Example: `  tiegraph serve
  tiegraph serve --addr 127.0.0.1:9000 -d ties.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.cfg.Server.Addr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			installMetrics(reg)
			defer observability.Reset()

			res, err := c.analyze(ctx)
			if err != nil {
				return err
			}

			srv := server.New(loggerFromContext(ctx), res, server.Options{
				Gatherer:        reg,
				ReadTimeout:     c.cfg.Server.ReadTimeout,
				WriteTimeout:    c.cfg.Server.WriteTimeout,
				ShutdownTimeout: c.cfg.Server.ShutdownTimeout,
			})
			printInfo(cmd.OutOrStdout(), "Serving %s on %s", c.cfg.Data.Source, addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", `listen address (default ":8080")`)
	return cmd
}

// installMetrics routes every observability hook to Prometheus collectors
// registered on reg.
func installMetrics(reg prometheus.Registerer) {
	prom := observability.NewPrometheus(reg)
	observability.SetAnalysisHooks(prom)
	observability.SetQueryHooks(prom)
	observability.SetHTTPHooks(prom)
}
