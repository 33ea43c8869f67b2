package zoom_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudeagle/zoomctl/internal/server"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

type recordedRequest struct {
	path  string
	query url.Values
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeAPI) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return recordedRequest{}
	}
	return f.requests[len(f.requests)-1]
}

func setup(t *testing.T, token string) (map[string]*mcpserver.ServerTool, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{path: r.URL.Path, query: r.URL.Query()})
		api.mu.Unlock()

		switch r.URL.Path {
		case "/v2/users/me":
			fmt.Fprint(w, `{"id":"u1","first_name":"Jill","last_name":"Chill","email":"jill@example.com","type":2}`)
		case "/v2/accounts/me":
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"code":4711,"message":"Invalid access token, does not contain scopes"}`)
		default:
			fmt.Fprint(w, `{}`)
		}
	}))
	t.Cleanup(srv.Close)

	client := zoom.New("id", "secret", zoom.WithHTTPClient(srv.Client()), zoom.WithAPIBaseURL(srv.URL+"/v2"))
	if token != "" {
		client.SetAccessToken(token)
	}
	sc := server.NewServerContext(context.Background(), client, nil, nil)
	t.Cleanup(sc.Shutdown)

	mcpSrv := mcpserver.NewMCPServer("zoomctl-test", "test", mcpserver.WithToolCapabilities(true))
	require.NoError(t, RegisterZoomTools(mcpSrv, sc))
	return mcpSrv.ListTools(), api
}

func call(t *testing.T, tools map[string]*mcpserver.ServerTool, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	tool, ok := tools[name]
	require.True(t, ok, "tool %s not registered", name)

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestRegisterZoomTools(t *testing.T) {
	tools, _ := setup(t, "token-value")

	for _, name := range []string{ToolCurrentUser, ToolAccountInfo, ToolAccountPlans, ToolListUsers, ToolActivityReport, ToolListMeetings} {
		tool, ok := tools[name]
		require.True(t, ok, name)
		assert.NotEmpty(t, tool.Tool.Description, name)
	}
	assert.Len(t, tools, 6)
}

func TestCurrentUserTool(t *testing.T) {
	tools, _ := setup(t, "token-value")

	result := call(t, tools, ToolCurrentUser, nil)
	require.False(t, result.IsError)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, "u1", got["id"])
	assert.Equal(t, "Jill Chill", got["full_name"])
	assert.Equal(t, "Licensed", got["type_label"])
}

func TestTools_WithoutToken(t *testing.T) {
	tools, api := setup(t, "")

	result := call(t, tools, ToolCurrentUser, nil)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "ZOOM_ACCESS_TOKEN")
	assert.Empty(t, api.requests)
}

func TestAccountInfoTool_APIError(t *testing.T) {
	tools, _ := setup(t, "token-value")

	result := call(t, tools, ToolAccountInfo, nil)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "status 400")
}

func TestListUsersTool_Arguments(t *testing.T) {
	tools, api := setup(t, "token-value")

	result := call(t, tools, ToolListUsers, map[string]interface{}{"status": "pending", "page_size": 25.0})
	require.False(t, result.IsError)
	assert.Equal(t, "/v2/users", api.last().path)
	assert.Equal(t, "pending", api.last().query.Get("status"))
	assert.Equal(t, "25", api.last().query.Get("page_size"))

	result = call(t, tools, ToolListUsers, map[string]interface{}{"page_size": 1.5})
	assert.True(t, result.IsError)
}

func TestActivityReportTool(t *testing.T) {
	now = func() time.Time { return time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	tools, api := setup(t, "token-value")

	result := call(t, tools, ToolActivityReport, nil)
	require.False(t, result.IsError)
	assert.Equal(t, "2024-05-31", api.last().query.Get("from"))
	assert.Equal(t, "2024-06-30", api.last().query.Get("to"))
	assert.Equal(t, "100", api.last().query.Get("page_size"))

	result = call(t, tools, ToolActivityReport, map[string]interface{}{"from": "31/05/2024"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "YYYY-MM-DD")
}

func TestListMeetingsTool_Defaults(t *testing.T) {
	tools, api := setup(t, "token-value")

	result := call(t, tools, ToolListMeetings, nil)
	require.False(t, result.IsError)
	assert.Equal(t, "/v2/users/me/meetings", api.last().path)
	assert.Equal(t, "scheduled", api.last().query.Get("type"))
	assert.Empty(t, api.last().query.Get("page_size"))
}
