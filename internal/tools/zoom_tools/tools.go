package zoom_tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/cloudeagle/zoomctl/internal/logging"
	"github.com/cloudeagle/zoomctl/internal/server"
	"github.com/cloudeagle/zoomctl/internal/tools/common"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

// Tool names.
const (
	ToolCurrentUser    = "zoom_current_user"
	ToolAccountInfo    = "zoom_account_info"
	ToolAccountPlans   = "zoom_account_plans"
	ToolListUsers      = "zoom_list_users"
	ToolActivityReport = "zoom_activity_report"
	ToolListMeetings   = "zoom_list_meetings"
)

// defaultActivityDays is the report window used when from/to are omitted.
const defaultActivityDays = 30

// now is replaced in tests.
var now = time.Now

// RegisterZoomTools registers all Zoom tools with the MCP server.
func RegisterZoomTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	add := func(tool mcp.Tool, handler common.ToolHandler) {
		s.AddTool(tool, common.InstrumentedToolHandler(tool.Name, sc, handler))
	}

	add(mcp.NewTool(ToolCurrentUser,
		mcp.WithDescription("Get the profile of the Zoom user who owns the access token"),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCurrentUser(ctx, request, sc)
	})

	add(mcp.NewTool(ToolAccountInfo,
		mcp.WithDescription("Get Zoom account details. Requires an admin-scoped token; user-level tokens are rejected by Zoom."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAccountInfo(ctx, request, sc)
	})

	add(mcp.NewTool(ToolAccountPlans,
		mcp.WithDescription("Get the plans (base, rooms, recording, audio) attached to the Zoom account"),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAccountPlans(ctx, request, sc)
	})

	add(mcp.NewTool(ToolListUsers,
		mcp.WithDescription("List one page of users in the Zoom account"),
		mcp.WithString("status",
			mcp.Description("User status filter: 'active', 'inactive' or 'pending' (default: 'active')"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of users to return, up to 300 (default: Zoom's default of 30)"),
		),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListUsers(ctx, request, sc)
	})

	add(mcp.NewTool(ToolActivityReport,
		mcp.WithDescription("Get sign-in/sign-out activity for a date range (first 100 entries)"),
		mcp.WithString("from",
			mcp.Description("Start date in YYYY-MM-DD format (default: 30 days ago)"),
		),
		mcp.WithString("to",
			mcp.Description("End date in YYYY-MM-DD format (default: today)"),
		),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleActivityReport(ctx, request, sc)
	})

	add(mcp.NewTool(ToolListMeetings,
		mcp.WithDescription("List one page of the current user's Zoom meetings"),
		mcp.WithString("type",
			mcp.Description("Meeting type: 'scheduled', 'live', 'upcoming', 'upcoming_meetings' or 'previous_meetings' (default: 'scheduled')"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of meetings to return, up to 300 (default: Zoom's default of 30)"),
		),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListMeetings(ctx, request, sc)
	})

	return nil
}

// zoomError turns a client error into a tool error result.
func zoomError(action string, err error) *mcp.CallToolResult {
	var apiErr *zoom.APIRequestError
	switch {
	case errors.Is(err, zoom.ErrNotAuthenticated):
		return mcp.NewToolResultError("No Zoom access token configured. Restart the server with ZOOM_ACCESS_TOKEN set.")
	case errors.As(err, &apiErr):
		return mcp.NewToolResultError(fmt.Sprintf("Failed to %s: Zoom returned status %d: %s", action, apiErr.StatusCode, apiErr.Body))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Failed to %s: %v", action, err))
	}
}

func handleCurrentUser(ctx context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := sc.ZoomClient()
	if err != nil {
		return zoomError("get current user", err), nil
	}
	user, err := client.CurrentUser(ctx)
	if err != nil {
		return zoomError("get current user", err), nil
	}
	sc.Logger().Debug("fetched current user", logging.UserHash(user.Email))
	return common.JSONResult(struct {
		*zoom.User
		FullName  string `json:"full_name"`
		TypeLabel string `json:"type_label"`
	}{user, user.FullName(), user.TypeLabel()})
}

func handleAccountInfo(ctx context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := sc.ZoomClient()
	if err != nil {
		return zoomError("get account info", err), nil
	}
	account, err := client.AccountInfo(ctx)
	if err != nil {
		return zoomError("get account info", err), nil
	}
	return common.JSONResult(account)
}

func handleAccountPlans(ctx context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := sc.ZoomClient()
	if err != nil {
		return zoomError("get account plans", err), nil
	}
	plans, err := client.AccountPlans(ctx)
	if err != nil {
		return zoomError("get account plans", err), nil
	}
	return common.JSONResult(plans)
}

func handleListUsers(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	status := common.StringArg(args, "status", zoom.DefaultUserStatus)
	pageSize, err := common.IntArg(args, "page_size", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := sc.ZoomClient()
	if err != nil {
		return zoomError("list users", err), nil
	}
	list, err := client.ListUsers(ctx, status, pageSize)
	if err != nil {
		return zoomError("list users", err), nil
	}
	return common.JSONResult(list)
}

func handleActivityReport(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	today := now()
	from := common.StringArg(args, "from", today.AddDate(0, 0, -defaultActivityDays).Format(zoom.ActivityDateLayout))
	to := common.StringArg(args, "to", today.Format(zoom.ActivityDateLayout))

	for name, value := range map[string]string{"from": from, "to": to} {
		if _, err := time.Parse(zoom.ActivityDateLayout, value); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s must be a date in YYYY-MM-DD format, got %q", name, value)), nil
		}
	}

	client, err := sc.ZoomClient()
	if err != nil {
		return zoomError("get activity report", err), nil
	}
	report, err := client.ActivityReport(ctx, from, to)
	if err != nil {
		return zoomError("get activity report", err), nil
	}
	return common.JSONResult(report)
}

func handleListMeetings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	meetingType := common.StringArg(args, "type", zoom.DefaultMeetingType)
	pageSize, err := common.IntArg(args, "page_size", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := sc.ZoomClient()
	if err != nil {
		return zoomError("list meetings", err), nil
	}
	list, err := client.ListMeetings(ctx, meetingType, pageSize)
	if err != nil {
		return zoomError("list meetings", err), nil
	}
	return common.JSONResult(list)
}
