package cmd

import (
	"fmt"

	"github.com/ethpandaops/validator-info/pkg/checks"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// checksCmd represents the checks command
var checksCmd = &cobra.Command{
	Use:   "checks [name...]",
	Short: "Lists the checks run by validate",
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := checks.GetChecks(args)
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true

		yamlData, err := yaml.Marshal(&selected)
		if err != nil {
			return err
		}

		fmt.Print(string(yamlData))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checksCmd)
}
