package demo

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudeagle/zoomctl/internal/logging"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

const currentUserJSON = `{"id":"KDcuGIm1QgePTO8WbOqwIQ","first_name":"Jill","last_name":"Chill","display_name":"Jill Chill","email":"jchill@example.com","type":2,"status":"active","timezone":"Europe/Berlin","account_id":"q6gBJVO5TzexKYTb_I2rpg","created_at":"2020-02-11T10:00:00Z"}`

// fakeZoom stubs the token endpoint and the API. Unregistered API paths get 400.
type fakeZoom struct {
	srv        *httptest.Server
	tokenHits  int32
	apiHits    int32
	tokenCode  int
	tokenBody  string
	apiBodies  map[string]string
	authHeader atomic.Value
}

func newFakeZoom(t *testing.T, opts ...func(*fakeZoom)) *fakeZoom {
	t.Helper()
	f := &fakeZoom{
		tokenCode: http.StatusOK,
		tokenBody: `{"access_token":"abcd1234wxyz","token_type":"bearer","expires_in":3599,"scope":"user:read:user"}`,
		apiBodies: map[string]string{"/v2/users/me": currentUserJSON},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			atomic.AddInt32(&f.tokenHits, 1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.tokenCode)
			fmt.Fprint(w, f.tokenBody)
			return
		}
		atomic.AddInt32(&f.apiHits, 1)
		f.authHeader.Store(r.Header.Get("Authorization"))
		body, ok := f.apiBodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"code":4711,"message":"Invalid access token, does not contain scopes"}`)
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeZoom) client() *zoom.Client {
	return zoom.New("client-id", "client-secret",
		zoom.WithHTTPClient(f.srv.Client()),
		zoom.WithAuthURL(f.srv.URL+"/oauth/authorize"),
		zoom.WithTokenURL(f.srv.URL+"/oauth/token"),
		zoom.WithAPIBaseURL(f.srv.URL+"/v2"),
	)
}

func newTestRunner(api API, in string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	logger := logging.NewSlogAdapter(logging.NewHandlerLogger(&bytes.Buffer{}, false))
	r := NewRunner(api, "https://oauth.pstmn.io/v1/callback", strings.NewReader(in), &out, &errOut, logger)
	r.Now = func() time.Time { return time.Date(2024, 6, 30, 8, 0, 0, 0, time.UTC) }
	r.NewState = func() string { return "zoomctl-test" }
	return r, &out, &errOut
}

func TestRun_DirectTokenSkipsExchange(t *testing.T) {
	f := newFakeZoom(t)
	c := f.client()
	c.SetAccessToken("direct-token-value")

	r, out, errOut := newTestRunner(c, "")
	require.NoError(t, r.Run(context.Background()))

	assert.Contains(t, out.String(), "User ID: KDcuGIm1QgePTO8WbOqwIQ")
	assert.Contains(t, out.String(), "Email: jchill@example.com")
	assert.Contains(t, out.String(), "User Type: Licensed")
	assert.Contains(t, out.String(), "=== Demo Completed ===")
	assert.NotContains(t, out.String(), "Enter the authorization code")

	assert.Equal(t, int32(0), atomic.LoadInt32(&f.tokenHits), "no token exchange expected")
	assert.Equal(t, "Bearer direct-token-value", f.authHeader.Load())

	// Admin-only account info is reported as an expected limitation, not a failure.
	assert.Contains(t, out.String(), "Account-level APIs require admin privileges")
	assert.NotContains(t, errOut.String(), "Account info API failed")

	// The other failing steps are reported and the run continues.
	assert.Contains(t, errOut.String(), "Account plans API failed")
	assert.Contains(t, errOut.String(), "Users list API failed")
	assert.Contains(t, errOut.String(), "Activity reports API failed")
	assert.Contains(t, errOut.String(), "Meetings API failed")
	assert.Equal(t, int32(6), atomic.LoadInt32(&f.apiHits))
}

func TestRun_InteractiveExchange(t *testing.T) {
	f := newFakeZoom(t)
	c := f.client()

	r, out, _ := newTestRunner(c, "  the-code  \n")
	require.NoError(t, r.Run(context.Background()))

	assert.Contains(t, out.String(), f.srv.URL+"/oauth/authorize?")
	assert.Contains(t, out.String(), "state=zoomctl-test")
	assert.Contains(t, out.String(), "Access Token: abcd...wxyz")
	assert.NotContains(t, out.String(), "abcd1234wxyz")
	assert.Contains(t, out.String(), "Expires In: 3599 seconds")
	assert.Contains(t, out.String(), "Scope: user:read:user")
	assert.Contains(t, out.String(), "User Type: Licensed")

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.tokenHits))
	assert.Equal(t, "abcd1234wxyz", c.AccessToken())
	assert.Equal(t, "Bearer abcd1234wxyz", f.authHeader.Load())
}

func TestRun_EmptyCode(t *testing.T) {
	for _, in := range []string{"", "\n", "   \n"} {
		f := newFakeZoom(t)

		r, out, _ := newTestRunner(f.client(), in)
		require.NoError(t, r.Run(context.Background()))

		assert.Contains(t, out.String(), "No authorization code provided. Exiting.")
		assert.Equal(t, int32(0), atomic.LoadInt32(&f.tokenHits))
		assert.Equal(t, int32(0), atomic.LoadInt32(&f.apiHits))
	}
}

func TestRun_ExchangeFailureAbortsFlow(t *testing.T) {
	f := newFakeZoom(t, func(f *fakeZoom) {
		f.tokenCode = http.StatusBadRequest
		f.tokenBody = `{"reason":"Invalid authorization code","error":"invalid_request"}`
	})

	r, out, errOut := newTestRunner(f.client(), "bad-code\n")
	require.NoError(t, r.Run(context.Background()), "exchange failures never fail the process")

	assert.Contains(t, errOut.String(), "Authentication failed")
	assert.Contains(t, errOut.String(), "status 400")
	assert.NotContains(t, out.String(), "Demo Completed")
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.apiHits))
}

func TestActivityRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	from, to := ActivityRange(now, 30)
	assert.Equal(t, "2024-02-14", from)
	assert.Equal(t, "2024-03-15", to)
}

func TestRun_LogsUserHashNotEmail(t *testing.T) {
	f := newFakeZoom(t)
	c := f.client()
	c.SetAccessToken("direct-token-value")

	var logs bytes.Buffer
	r, _, _ := newTestRunner(c, "")
	r.Logger = logging.NewSlogAdapter(logging.NewHandlerLogger(&logs, true))
	require.NoError(t, r.Run(context.Background()))

	assert.Contains(t, logs.String(), "user_hash="+logging.AnonymizeEmail("jchill@example.com"))
	assert.NotContains(t, logs.String(), "jchill@example.com")
	assert.NotContains(t, logs.String(), "direct-token-value")
}
