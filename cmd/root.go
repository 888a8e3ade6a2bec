package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the meetmcp application
var rootCmd = &cobra.Command{
	Use:   "meetmcp",
	Short: "MCP server for Google Calendar meetings with Meet links",
	Long: `meetmcp exposes Google Calendar meeting management as MCP
(Model Context Protocol) tools for AI assistants: create, list, get,
update and delete calendar events that carry a Google Meet link.

It can run over stdio (default) or as a streamable HTTP server.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meetmcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
