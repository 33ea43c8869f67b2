// Package zoom is a small client for the Zoom REST API.
//
// It covers the OAuth2 authorization-code exchange against the Zoom token
// endpoint and bearer-authenticated GET requests against six resources:
// the current user, account info, account plans, the user list, the
// sign-in activity report and the current user's meetings.
//
// A Client holds at most one access token, set either by a successful
// Exchange or directly with SetAccessToken. Every resource call fails with
// ErrNotAuthenticated, without touching the network, until a token is set.
//
// Non-200 responses are returned as *APIRequestError (resource calls) or
// *AuthExchangeError (token exchange) carrying the status code and raw body.
package zoom
