package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvClientID     = "ZOOM_CLIENT_ID"
	EnvClientSecret = "ZOOM_CLIENT_SECRET"
	EnvAccessToken  = "ZOOM_ACCESS_TOKEN"
	EnvRedirectURI  = "ZOOM_REDIRECT_URI"
	EnvAuthURL      = "ZOOM_AUTH_URL"
	EnvTokenURL     = "ZOOM_TOKEN_URL"
	EnvAPIBaseURL   = "ZOOM_API_BASE_URL"
)

// Default endpoints of the Zoom platform.
const (
	DefaultRedirectURI = "https://oauth.pstmn.io/v1/callback"
	DefaultAuthURL     = "https://zoom.us/oauth/authorize"
	DefaultTokenURL    = "https://zoom.us/oauth/token"
	DefaultAPIBaseURL  = "https://api.zoom.us/v2"

	// MarketplaceURL is where Zoom app credentials are created.
	MarketplaceURL = "https://marketplace.zoom.us/"
)

// ErrMissingCredentials is returned by Validate when a required
// environment variable is absent.
var ErrMissingCredentials = errors.New("missing credentials")

// Config holds the application configuration.
type Config struct {
	// ClientID and ClientSecret identify the Zoom OAuth app.
	ClientID     string
	ClientSecret string

	// AccessToken, when set, bypasses the authorization code flow.
	AccessToken string

	RedirectURI string
	AuthURL     string
	TokenURL    string
	APIBaseURL  string
}

// Load reads configuration from the environment. Files listed in envFiles
// are loaded first and must exist. When none are given an optional ".env"
// in the working directory is loaded if present. Variables already present in the environment take precedence over
// file contents.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else {
		for _, f := range envFiles {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
			}
		}
	}

	return FromEnv(), nil
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		ClientID:     strings.TrimSpace(os.Getenv(EnvClientID)),
		ClientSecret: strings.TrimSpace(os.Getenv(EnvClientSecret)),
		AccessToken:  strings.TrimSpace(os.Getenv(EnvAccessToken)),
		RedirectURI:  getEnv(EnvRedirectURI, DefaultRedirectURI),
		AuthURL:      getEnv(EnvAuthURL, DefaultAuthURL),
		TokenURL:     getEnv(EnvTokenURL, DefaultTokenURL),
		APIBaseURL:   strings.TrimRight(getEnv(EnvAPIBaseURL, DefaultAPIBaseURL), "/"),
	}
}

// Validate checks that the required credentials are present.
func (c *Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, EnvClientID)
	}
	if c.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// HasAccessToken reports whether a token was supplied directly.
func (c *Config) HasAccessToken() bool {
	return c.AccessToken != ""
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
