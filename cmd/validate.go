package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethpandaops/validator-info/pkg/report"
	"github.com/ethpandaops/validator-info/pkg/staking"
	"github.com/ethpandaops/validator-info/pkg/types"
	"github.com/ethpandaops/validator-info/pkg/validator"
	"github.com/spf13/cobra"
)

var schemaFile string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a validator entry",
	Long: `Validates a validator entry (<network>/<secp>.json) against the reference schema,
checks name and logo, compares the keys with the staking contract and checks the file name.
Exits with code 1 on the first failing check.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if schemaFile != "" {
			absSchema, err := filepath.Abs(schemaFile)
			if err != nil {
				return fmt.Errorf("invalid schema path %v: %w", schemaFile, err)
			}

			appConfig.Validation.SchemaFile = absSchema
		}

		if err := appConfig.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		services := &types.CheckServices{
			KeyResolver: staking.NewResolver(appConfig, logger),
		}

		v := validator.NewValidator(appConfig, services, report.NewTextReporter(os.Stdout), logger)

		return v.ValidateFile(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&schemaFile, "schema", "", "reference entry for the schema check (default from config)")
}
