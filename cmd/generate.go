package cmd

import (
	"fmt"
	"os"

	"github.com/ethpandaops/validator-info/pkg/aggregator"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate secp -> name lookup tables",
	Long: `Reads all <network>/*.json validator entries and writes <network>_validators.json
and <network>_validators.csv for every configured network. Existing files are replaced.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		flags := cmd.Flags()
		genConfig := appConfig.Generate

		if flags.Changed("root") {
			genConfig.RootDir, _ = flags.GetString("root")
		}

		if flags.Changed("output-dir") {
			genConfig.OutputDir, _ = flags.GetString("output-dir")
		}

		if flags.Changed("networks") {
			genConfig.Networks, _ = flags.GetStringSlice("networks")
		}

		if flags.Changed("metrics-file") {
			genConfig.MetricsFile, _ = flags.GetString("metrics-file")
		}

		if err := appConfig.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		generator := aggregator.NewGenerator(genConfig, os.Stdout, logger)
		return generator.Run()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("root", ".", "directory containing the network directories")
	generateCmd.Flags().String("output-dir", ".", "directory the lookup tables are written to")
	generateCmd.Flags().StringSlice("networks", []string{"mainnet", "testnet"}, "networks to generate lookup tables for")
	generateCmd.Flags().String("metrics-file", "", "write aggregation metrics to this prometheus textfile")
}
