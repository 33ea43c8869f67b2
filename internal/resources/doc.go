// Package resources provides MCP resources for the Zoom session behind
// ZOOM_ACCESS_TOKEN. Resources are read-only data sources that MCP clients
// can fetch without a tool call:
//
//   - zoom://user/me: the profile of the token owner
//   - zoom://token/claims: the decoded claims of the access token (no network)
package resources
