package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of themeweaver",
	Long:  `All software has versions. This is themeweaver's.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("themeweaver version %s\n", rootCmd.Version)
		fmt.Printf("  commit: %s\n", buildCommit)
		fmt.Printf("  built:  %s\n", buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
