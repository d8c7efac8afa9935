package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/bough"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bough",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bough version %s\n", bough.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
