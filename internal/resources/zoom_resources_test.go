package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudeagle/zoomctl/internal/server"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

func newServerContext(t *testing.T, token string) *server.ServerContext {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/users/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"id":"u1","first_name":"Jill","last_name":"Chill","email":"jill@example.com","type":1}`)
	}))
	t.Cleanup(srv.Close)

	client := zoom.New("id", "secret",
		zoom.WithHTTPClient(srv.Client()),
		zoom.WithAPIBaseURL(srv.URL+"/v2"),
	)
	client.SetAccessToken(token)

	sc := server.NewServerContext(context.Background(), client, nil, nil)
	t.Cleanup(sc.Shutdown)
	return sc
}

func readRequest(uri string) mcp.ReadResourceRequest {
	var request mcp.ReadResourceRequest
	request.Params.URI = uri
	return request
}

func textOf(t *testing.T, contents []mcp.ResourceContents) string {
	t.Helper()
	require.Len(t, contents, 1)
	text, ok := contents[0].(*mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, mimeJSON, text.MIMEType)
	return text.Text
}

func TestRegisterZoomResources(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "1.0", mcpserver.WithResourceCapabilities(false, false))
	require.NoError(t, RegisterZoomResources(s, newServerContext(t, "token")))
}

func TestHandleUserProfile(t *testing.T) {
	sc := newServerContext(t, "token")

	contents, err := handleUserProfile(context.Background(), readRequest(URIUserProfile), sc)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(textOf(t, contents)), &got))
	assert.Equal(t, "u1", got["id"])
	assert.Equal(t, "jill@example.com", got["email"])
	assert.Equal(t, "Jill Chill", got["full_name"])
	assert.Equal(t, "Basic", got["type_label"])
}

func TestHandleUserProfile_NoToken(t *testing.T) {
	sc := newServerContext(t, "")

	_, err := handleUserProfile(context.Background(), readRequest(URIUserProfile), sc)
	assert.ErrorIs(t, err, zoom.ErrNotAuthenticated)
}

func TestHandleTokenClaims(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"iss": "zm:cid:client-id",
		"uid": "u1",
		"aid": "acct-1",
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	contents, err := handleTokenClaims(context.Background(), readRequest(URITokenClaims), newServerContext(t, token))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(textOf(t, contents)), &got))
	assert.Equal(t, "zm:cid:client-id", got["issuer"])
	assert.Equal(t, "u1", got["user_id"])
	assert.Equal(t, "acct-1", got["account_id"])
}

func TestHandleTokenClaims_NotAJWT(t *testing.T) {
	_, err := handleTokenClaims(context.Background(), readRequest(URITokenClaims), newServerContext(t, "opaque-token"))
	assert.Error(t, err)
}
