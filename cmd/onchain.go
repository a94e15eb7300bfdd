package cmd

import (
	"fmt"
	"strconv"

	"github.com/ethpandaops/validator-info/pkg/staking"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var onchainCmd = &cobra.Command{
	Use:   "onchain <network> <validator-id>",
	Short: "Show the staking contract record of a validator",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		validatorID, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid validator id %q: %w", args[1], err)
		}

		cmd.SilenceUsage = true

		if err := appConfig.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		resolver := staking.NewResolver(appConfig, logger)

		lookup, err := resolver.GetValidator(cmd.Context(), args[0], validatorID)
		if err != nil {
			return err
		}

		yamlData, err := yaml.Marshal(staking.NewValidatorSummary(lookup))
		if err != nil {
			return err
		}

		fmt.Print(string(yamlData))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(onchainCmd)
}
