// Package config loads zoomctl settings from the process environment and
// optional .env files.
//
// ZOOM_CLIENT_ID and ZOOM_CLIENT_SECRET are required; Validate reports
// ErrMissingCredentials naming whichever is absent. ZOOM_ACCESS_TOKEN is
// optional and, when present, lets callers skip the authorization code
// exchange entirely.
package config
