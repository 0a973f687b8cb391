package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/meishiki/internal/mcpserver"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the meishiki version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "meishiki %s (mcp server %s)\n", version, mcpserver.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
