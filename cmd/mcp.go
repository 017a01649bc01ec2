package cmd

import (
	"github.com/spf13/cobra"

	"themeweaver/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the color engine over the Model Context Protocol",
	Long: `Run an MCP server on stdio exposing the color engine as tools:
palette generation, interpolation, lightness gradients, palette
analysis and color naming.

Point an MCP-capable client at the binary with this subcommand; logs
go to stderr, the protocol stream owns stdout.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	return mcpserver.New(rootCmd.Version).Start()
}
