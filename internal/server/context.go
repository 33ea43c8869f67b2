package server

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudeagle/zoomctl/internal/instrumentation"
	"github.com/cloudeagle/zoomctl/internal/logging"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

// ErrShutdown is returned by ZoomClient after Shutdown.
var ErrShutdown = errors.New("server context is shut down")

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx     context.Context
	cancel  context.CancelFunc
	client  *zoom.Client
	metrics *instrumentation.Metrics
	logger  logging.Logger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context around an authenticated
// Zoom client. metrics and logger may be nil.
func NewServerContext(ctx context.Context, client *zoom.Client, metrics *instrumentation.Metrics, logger logging.Logger) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &ServerContext{
		ctx:     shutdownCtx,
		cancel:  cancel,
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// ZoomClient returns the Zoom client. Tools must not prompt for a token,
// so a client without one is reported as zoom.ErrNotAuthenticated.
func (sc *ServerContext) ZoomClient() (*zoom.Client, error) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	if sc.shutdown {
		return nil, ErrShutdown
	}
	if sc.client == nil || !sc.client.HasAccessToken() {
		return nil, zoom.ErrNotAuthenticated
	}
	return sc.client, nil
}

// Metrics returns the metrics recorder, which may be nil.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// Logger returns the logger.
func (sc *ServerContext) Logger() logging.Logger {
	return sc.logger
}

// IsShutdown reports whether Shutdown has been called.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown cancels the server context. It is safe to call more than once.
func (sc *ServerContext) Shutdown() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return
	}
	sc.shutdown = true
	sc.cancel()
}
