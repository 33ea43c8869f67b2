package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/cloudeagle/zoomctl/internal/logging"
	"github.com/cloudeagle/zoomctl/internal/resources"
	"github.com/cloudeagle/zoomctl/internal/server"
	"github.com/cloudeagle/zoomctl/internal/tools/zoom_tools"
)

// EnvMetricsAddr overrides the default of --metrics-addr.
const EnvMetricsAddr = "METRICS_ADDR"

func newServeCmd(root *rootOptions) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP (Model Context Protocol) server on stdio, exposing the
Zoom resources as read-only tools and the token owner's profile and
token claims as MCP resources. The server uses ZOOM_ACCESS_TOKEN for
every call; run the demo or exchange command first to obtain one.

With --metrics-addr (or METRICS_ADDR) and INSTRUMENTATION_ENABLED=true with
the prometheus exporter, /metrics, /healthz and /readyz are served on that
address. Logs always go to stderr so stdout stays reserved for the protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("metrics-addr") {
				metricsAddr = os.Getenv(EnvMetricsAddr)
			}
			return runServe(cmd, root, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Address for the metrics and health server, e.g. 127.0.0.1:9464 (default: disabled)")

	return cmd
}

func runServe(cmd *cobra.Command, root *rootOptions, metricsAddr string) error {
	a, err := newApp(cmd, root, needAccessToken)
	if err != nil {
		return err
	}
	defer a.close(cmd.Context())

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := logging.NewSlogAdapter(logging.WithOperation(a.logger.Logger(), "serve"))
	serverContext := server.NewServerContext(ctx, a.client, a.provider.Metrics(), logger)
	defer serverContext.Shutdown()

	mcpSrv := mcpserver.NewMCPServer("zoomctl", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false),
	)
	if err := zoom_tools.RegisterZoomTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register Zoom tools: %w", err)
	}
	if err := resources.RegisterZoomResources(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register Zoom resources: %w", err)
	}

	health := server.NewHealthChecker(serverContext)
	if metricsAddr != "" {
		metricsServer, err := server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsAddr,
			InstrumentationProvider: a.provider,
			Health:                  health,
			Logger:                  logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}
		go func() {
			if err := metricsServer.Start(); err != nil {
				logger.Error("metrics server stopped", logging.Err(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), server.DefaultShutdownTimeout)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Warn("metrics server shutdown failed", logging.Err(err))
			}
		}()
	}
	health.SetReady(true)

	logger.Info("starting MCP server on stdio")
	start := time.Now()

	stdio := mcpserver.NewStdioServer(mcpSrv)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Logger().Handler(), slog.LevelError))
	err = stdio.Listen(serverContext.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	health.SetReady(false)

	logger.Info("MCP server stopped", slog.Duration(logging.KeyDuration, time.Since(start)))
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
