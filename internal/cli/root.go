package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &GlobalOptions{}

	root := &cobra.Command{
		Use:   "icon-hub-mcp",
		Short: "Icon catalog MCP server - check, list and suggest icons",
		Long: `icon-hub-mcp indexes icon libraries (heroicons, phosphor, and any library
declared in the configuration) and answers three kinds of questions:

  • does this icon (and variant) exist?
  • which icons match this word?
  • which icon did you mean?

It serves the answers as MCP tools to AI clients, and from the command line.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default ~/.icon-hub-mcp.json)")
	root.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "Directory holding the library manifests")

	root.AddCommand(NewServeCmd(opts))
	root.AddCommand(NewListCmd(opts))
	root.AddCommand(NewCheckCmd(opts))
	root.AddCommand(NewSimilarCmd(opts))
	root.AddCommand(NewExampleCmd(opts))
	root.AddCommand(NewSearchCmd(opts))
	root.AddCommand(NewComponentsCmd(opts))
	root.AddCommand(NewStatsCmd(opts))
	root.AddCommand(NewConfigCmd(opts))
	root.AddCommand(NewVersionCmd())

	return root
}
