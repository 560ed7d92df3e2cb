package cmd

import (
	"fmt"

	"tripdesk/internal/version"

	"github.com/spf13/cobra"
)

var versionFull bool

// versionCmd prints the build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		if versionFull {
			fmt.Println(info.Full())
			return
		}
		fmt.Printf("tripdesk %s\n", info)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "include commit and build time")
	rootCmd.AddCommand(versionCmd)
}
