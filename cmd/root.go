package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/ethpandaops/validator-info/pkg/config"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "validator-info",
	Short: "Validates validator metadata entries and generates validator lookup tables",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		initLogger()

		var err error

		appConfig, err = loadConfig()
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		return nil
	},
	SilenceErrors: true,
}

var (
	cfgFile   string
	logFormat string
	verbose   bool

	logger    = logrus.New()
	appConfig *config.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	os.Exit(run(ctx, os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string) int {
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.WithError(err).Error("command failed")
		return 1
	}

	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format, valid values are 'text', 'json'")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	_ = viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindEnv("log-format", "LOG_FORMAT")
	_ = viper.BindEnv("mainnet-rpc-url", "MAINNET_RPC_URL")
}

func initLogger() {
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	switch viper.GetString("log-format") {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{})
	}
}

func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.WithError(err).Warn("failed to load .env file")
		}
	}

	cfg, err := config.NewConfig(cfgFile)
	if err != nil {
		return nil, err
	}

	if mainnetRPCURL := viper.GetString("mainnet-rpc-url"); mainnetRPCURL != "" {
		cfg.MainnetRPCURL = mainnetRPCURL
	}

	return cfg, nil
}
