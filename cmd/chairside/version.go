// Version command for the chairside CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/chairside"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the chairside version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("chairside", chairside.Version)
	},
}
