// Package zoom_tools provides MCP tools for the Zoom REST API.
//
// Available tools:
//   - zoom_current_user - Profile of the user who owns the access token
//   - zoom_account_info - Account details (requires an admin-scoped token)
//   - zoom_account_plans - Plans attached to the account
//   - zoom_list_users - One page of account users filtered by status
//   - zoom_activity_report - Sign-in/sign-out events for a date range
//   - zoom_list_meetings - One page of the current user's meetings
//
// Tools never start the interactive OAuth prompt. The server must be started
// with ZOOM_ACCESS_TOKEN set; without it every tool returns an error result.
package zoom_tools
