package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	debug   bool
	envFile string
}

// rootCmd represents the base command for the zoomctl application
var rootCmd = newRootCmd()

// version will be set by main
var version = "dev"

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "zoomctl",
		Short: "Zoom REST API demo client",
		Long: `zoomctl authenticates against the Zoom REST API with the OAuth2
authorization-code flow and reads the current user, account, plans, users,
sign-in activity and meetings.

It can run as:
  - An interactive walkthrough of every resource (default)
  - A set of single-resource commands
  - An MCP (Model Context Protocol) server for AI assistants`,
		SilenceUsage: true,
		Version:      version,
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Load environment variables from this file instead of .env")

	cmd.AddCommand(newDemoCmd(opts))
	cmd.AddCommand(newAuthURLCmd(opts))
	cmd.AddCommand(newExchangeCmd(opts))
	cmd.AddCommand(newTokenInfoCmd(opts))
	cmd.AddCommand(newAPICmds(opts)...)
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newGenerateDocsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "zoomctl version %s\n" .Version}}`)

	// If no subcommand is provided, run the demo command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "demo")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
