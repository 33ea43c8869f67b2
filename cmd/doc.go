// Package cmd implements the command-line interface for zoomctl.
//
// This package provides the following commands:
//   - demo: Walk through the OAuth2 flow and every Zoom resource (default)
//   - auth-url: Print the Zoom authorization URL
//   - exchange: Exchange an authorization code for an access token
//   - token-info: Decode the claims of ZOOM_ACCESS_TOKEN
//   - me, account, plans, users, activity, meetings: Call one Zoom resource
//   - serve: Start the MCP server exposing the Zoom resources as tools
//   - generate-docs: Generate markdown documentation for all MCP tools
//   - version: Display version information
//
// The demo command is the default command when no subcommand is specified.
package cmd
