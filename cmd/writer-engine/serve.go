package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/amulya/writer-engine/internal/llm"
	"github.com/amulya/writer-engine/internal/pdfgen"
	"github.com/amulya/writer-engine/internal/pipeline"
	"github.com/amulya/writer-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP writing API",
	Long: `Serve exposes the writing pipeline over HTTP: POST /generate-essay for
content generation (optionally with a base64 PDF), GET /health for liveness,
and GET / for a status payload. The server shuts down gracefully on SIGINT
or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS
		// env value, in which case the runtime defaults apply.
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

		cfg := engineConfig()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		client := llm.NewClaude(cfg.Generation.AIConfig)
		pipe := pipeline.New(client, nil, cfg.Generation, pdfgen.GeometryFromSetup(cfg.Page))
		srv := server.New(pipe, cfg.Server, os.Stderr)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")

	rootCmd.AddCommand(serveCmd)
}
