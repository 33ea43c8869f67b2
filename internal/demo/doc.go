// Package demo drives the interactive zoomctl walkthrough: it obtains an
// access token (directly or through the OAuth2 authorization-code prompt),
// then calls each Zoom resource in turn and prints a readable summary.
//
// A failing step is reported and the walkthrough moves on to the next one.
// The printers in format.go are shared with the single-resource commands.
package demo
