package main

import (
	"fmt"

	"github.com/philipparndt/objwire/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Current()
		fmt.Printf("objwire %s\n", info)
		if info.GoVersion != "" {
			fmt.Printf("built with %s\n", info.GoVersion)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
