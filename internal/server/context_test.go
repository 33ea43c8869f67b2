package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudeagle/zoomctl/internal/zoom"
)

func TestServerContext_ZoomClient(t *testing.T) {
	client := zoom.New("id", "secret")
	sc := NewServerContext(context.Background(), client, nil, nil)

	_, err := sc.ZoomClient()
	assert.ErrorIs(t, err, zoom.ErrNotAuthenticated)

	client.SetAccessToken("token-value")
	got, err := sc.ZoomClient()
	require.NoError(t, err)
	assert.Same(t, client, got)
}

func TestServerContext_Shutdown(t *testing.T) {
	client := zoom.New("id", "secret")
	client.SetAccessToken("token-value")
	sc := NewServerContext(context.Background(), client, nil, nil)

	assert.False(t, sc.IsShutdown())
	sc.Shutdown()
	sc.Shutdown()

	assert.True(t, sc.IsShutdown())
	assert.Error(t, sc.Context().Err())

	_, err := sc.ZoomClient()
	assert.ErrorIs(t, err, ErrShutdown)
}

func TestServerContext_NilClient(t *testing.T) {
	sc := NewServerContext(context.Background(), nil, nil, nil)
	_, err := sc.ZoomClient()
	assert.ErrorIs(t, err, zoom.ErrNotAuthenticated)
	assert.NotNil(t, sc.Logger())
	assert.Nil(t, sc.Metrics())
}
