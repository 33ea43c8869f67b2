package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudeagle/zoomctl/internal/config"
	"github.com/cloudeagle/zoomctl/internal/demo"
	"github.com/cloudeagle/zoomctl/internal/instrumentation"
	"github.com/cloudeagle/zoomctl/internal/logging"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

// errNoAccessToken is returned by commands that need ZOOM_ACCESS_TOKEN.
var errNoAccessToken = fmt.Errorf("%s is not set: run `zoomctl exchange --code <code>` or the demo flow first: %w",
	config.EnvAccessToken, zoom.ErrNotAuthenticated)

// requirement describes what a command needs from the configuration.
type requirement int

const (
	needCredentials requirement = iota
	needAccessToken
)

// app bundles what a command needs to talk to Zoom.
type app struct {
	cfg      *config.Config
	client   *zoom.Client
	provider *instrumentation.Provider
	logger   *logging.SlogAdapter
}

// newApp loads configuration, checks req, and builds an instrumented client.
// Missing credentials print the setup guidance before the error is returned.
func newApp(cmd *cobra.Command, opts *rootOptions, req requirement) (*app, error) {
	logger := logging.NewSlogAdapter(logging.NewHandlerLogger(cmd.ErrOrStderr(), opts.debug))

	var envFiles []string
	if opts.envFile != "" {
		envFiles = append(envFiles, opts.envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}

	switch req {
	case needCredentials:
		if err := cfg.Validate(); err != nil {
			logger.Error("missing environment variables", logging.Err(err))
			demo.PrintMissingCredentials(cmd.OutOrStdout(), config.EnvClientID, config.EnvClientSecret, config.MarketplaceURL)
			return nil, err
		}
	case needAccessToken:
		if !cfg.HasAccessToken() {
			return nil, errNoAccessToken
		}
	}

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version
	provider, err := instrumentation.NewProvider(cmd.Context(), instrConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create instrumentation provider: %w", err)
	}

	client := zoom.New(cfg.ClientID, cfg.ClientSecret,
		zoom.WithAuthURL(cfg.AuthURL),
		zoom.WithTokenURL(cfg.TokenURL),
		zoom.WithAPIBaseURL(cfg.APIBaseURL),
		zoom.WithLogger(logger),
		zoom.WithMetrics(provider.Metrics()),
	)
	if cfg.HasAccessToken() {
		client.SetAccessToken(cfg.AccessToken)
		logger.Debug("using access token from environment", logging.Token(cfg.AccessToken))
	}

	return &app{cfg: cfg, client: client, provider: provider, logger: logger}, nil
}

// close flushes telemetry. Errors are logged, never returned, so they do not
// change the exit status of a command.
func (a *app) close(ctx context.Context) {
	if err := a.provider.Shutdown(context.WithoutCancel(ctx)); err != nil {
		a.logger.Warn("instrumentation shutdown failed", logging.Err(err))
	}
}
