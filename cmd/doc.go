// Package cmd implements the command-line interface for meetmcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing the meeting tools
//   - auth: Authorize a Google account from the terminal
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
