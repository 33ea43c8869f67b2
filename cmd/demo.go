package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cloudeagle/zoomctl/internal/demo"
)

func newDemoCmd(root *rootOptions) *cobra.Command {
	var redirectURI string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Authorize and walk through every Zoom resource",
		Long: `Runs the full demonstration. When ZOOM_ACCESS_TOKEN is set the token is
used directly; otherwise the authorization URL is printed and the
authorization code is read from stdin and exchanged for a token.

Each resource is then fetched and printed. A failing resource is reported
and the walkthrough continues with the next one.`,
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

			runner := demo.NewRunner(a.client, redirectURI, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), a.logger)
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "OAuth2 redirect URI registered with the Zoom app (default: ZOOM_REDIRECT_URI or the Postman callback)")

	return cmd
}
