package cmd

import (
	"fmt"

	"github.com/ethpandaops/validator-info/pkg/buildinfo"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("validator-info %v\n", buildinfo.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
