/*
Package main is the entry point for the icon-hub-mcp CLI.

icon-hub-mcp indexes icon libraries and serves existence checks, listings
and "did you mean" suggestions as MCP tools.

Usage:

	icon-hub-mcp [command]

Available Commands:

	serve       Run the MCP server (stdio or streamable HTTP)
	list        List icons by library and substring
	check       Check that an icon exists
	similar     Suggest icons with similar names
	example     Print a markdown usage guide for an icon
	search      Keyword search over icon names, tags, aliases and categories
	components  Browse the UI component catalog
	stats       Show catalog and query history statistics
	config      Manage the icon-hub-mcp configuration
	version     Show version information

Examples:

	# Write the default configuration
	icon-hub-mcp config init

	# Run as MCP server
	icon-hub-mcp serve

	# Did you mean?
	icon-hub-mcp similar arow
*/
package main

import (
	"fmt"
	"os"

	"github.com/khanglvm/icon-hub-mcp/internal/cli"
	"github.com/khanglvm/icon-hub-mcp/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd(version.GetVersion())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
