package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cloudeagle/zoomctl/internal/config"
	"github.com/cloudeagle/zoomctl/internal/demo"
	"github.com/cloudeagle/zoomctl/internal/zoom"
)

func newAuthURLCmd(root *rootOptions) *cobra.Command {
	var (
		redirectURI string
		state       string
	)

	cmd := &cobra.Command{
		Use:   "auth-url",
		Short: "Print the Zoom authorization URL",
		Long: `Prints the URL a user opens to authorize the Zoom app. A random state
is generated unless --state is given; pass --state "" to omit it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, root, needCredentials)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			if !cmd.Flags().Changed("redirect-uri") {
				redirectURI = a.cfg.RedirectURI
			}
			if !cmd.Flags().Changed("state") {
				state = demo.NewState()
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.client.AuthCodeURL(redirectURI, state))
			return nil
		},
	}

	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "OAuth2 redirect URI (default: ZOOM_REDIRECT_URI or the Postman callback)")
	cmd.Flags().StringVar(&state, "state", "", "OAuth2 state parameter (default: random)")

	return cmd
}

func newExchangeCmd(root *rootOptions) *cobra.Command {
	var (
		code        string
		redirectURI string
		tokenFile   string
	)

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Exchange an authorization code for an access token",
		Long: `Exchanges an authorization code for an access token and prints the masked
token summary. With --token-file the token is saved as ZOOM_ACCESS_TOKEN in
an env file readable only by the owner, which the other commands load with
--env-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code = strings.TrimSpace(code)
			if code == "" {
				return demo.ErrNoAuthorizationCode
			}

			a, err := newApp(cmd, root, needCredentials)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			if !cmd.Flags().Changed("redirect-uri") {
				redirectURI = a.cfg.RedirectURI
			}

			state, err := a.client.Exchange(cmd.Context(), code, redirectURI)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			out := cmd.OutOrStdout()
			demo.PrintTokenSummary(out, state)
			if tokenFile == "" {
				fmt.Fprintln(out, "\nThe token is not printed. Use --token-file to save it.")
				return nil
			}
			if err := writeTokenFile(tokenFile, state.AccessToken); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nAccess token written to %s (load it with --env-file %s)\n", tokenFile, tokenFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Authorization code from the callback URL (required)")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "OAuth2 redirect URI used for the authorization request")
	cmd.Flags().StringVar(&tokenFile, "token-file", "", "Save the access token to this env file (mode 0600)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

// tokenFileMode keeps saved tokens private to the owner.
const tokenFileMode = 0o600

// writeTokenFile saves token as ZOOM_ACCESS_TOKEN in dotenv format.
func writeTokenFile(path, token string) error {
	content, err := godotenv.Marshal(map[string]string{config.EnvAccessToken: token})
	if err != nil {
		return fmt.Errorf("failed to encode token file: %w", err)
	}
	if err := os.WriteFile(path, []byte(content+"\n"), tokenFileMode); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, tokenFileMode); err != nil {
		return fmt.Errorf("failed to restrict token file: %w", err)
	}
	return nil
}

func newTokenInfoCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "token-info",
		Short: "Decode the claims of ZOOM_ACCESS_TOKEN",
		Long: `Decodes the JWT claims of ZOOM_ACCESS_TOKEN without verifying the
signature. Nothing is sent to Zoom.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, root, needAccessToken)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			claims, err := zoom.InspectToken(a.cfg.AccessToken)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), claims)
			}
			demo.PrintClaims(cmd.OutOrStdout(), claims, time.Now())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the claims as JSON")

	return cmd
}
