package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vigil/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vigil version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vigil %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
