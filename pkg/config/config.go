package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethpandaops/validator-info/pkg/helper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRPCURLTemplate is expanded with the network name for networks without an explicit endpoint.
	DefaultRPCURLTemplate = "https://rpc-{network}.monadinfra.com/"

	// DefaultStakingContract is the address of the staking precompile.
	DefaultStakingContract = "0x0000000000000000000000000000000000001000"

	// DefaultSchemaFile is the reference validator entry all entries are compared against.
	DefaultSchemaFile = "example/000000000000000000000000000000000000000000000000000000000000000000.json"

	DefaultLogoTimeout = 10 * time.Second

	MainnetNetwork = "mainnet"
	TestnetNetwork = "testnet"
)

type Config struct {
	// Endpoint overrides per network name.
	Networks map[string]*NetworkConfig `yaml:"networks" json:"networks"`

	// RPC endpoint used for networks without override, "{network}" is replaced by the network name.
	RPCURLTemplate string `yaml:"rpcUrlTemplate" json:"rpcUrlTemplate"`

	// Mainnet RPC endpoint, takes precedence over everything else for mainnet (MAINNET_RPC_URL).
	MainnetRPCURL string `yaml:"mainnetRpcUrl" json:"mainnetRpcUrl"`

	// Address of the staking contract.
	StakingContract string `yaml:"stakingContract" json:"stakingContract"`

	// Validation settings
	Validation *ValidateConfig `yaml:"validate" json:"validate"`

	// Aggregation settings
	Generate *GenerateConfig `yaml:"generate" json:"generate"`
}

type NetworkConfig struct {
	RPCURL  string            `yaml:"rpcUrl" json:"rpcUrl"`
	Headers map[string]string `yaml:"headers" json:"headers"`
}

type ValidateConfig struct {
	// Reference entry used for the schema check.
	SchemaFile string `yaml:"schemaFile" json:"schemaFile"`

	// Max time to wait for the logo download.
	LogoTimeout helper.Duration `yaml:"logoTimeout" json:"logoTimeout"`
}

type GenerateConfig struct {
	// Networks to aggregate, each one is a directory below RootDir.
	Networks []string `yaml:"networks" json:"networks"`

	// Directory holding the per network directories.
	RootDir string `yaml:"rootDir" json:"rootDir"`

	// Directory the lookup tables are written to.
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// Optional prometheus textfile with aggregation stats.
	MetricsFile string `yaml:"metricsFile" json:"metricsFile"`
}

// DefaultConfig represents a sane-default configuration.
func DefaultConfig() *Config {
	return &Config{
		Networks:        map[string]*NetworkConfig{},
		RPCURLTemplate:  DefaultRPCURLTemplate,
		StakingContract: DefaultStakingContract,
		Validation: &ValidateConfig{
			SchemaFile:  DefaultSchemaFile,
			LogoTimeout: helper.Duration{Duration: DefaultLogoTimeout},
		},
		Generate: &GenerateConfig{
			Networks:  []string{MainnetNetwork, TestnetNetwork},
			RootDir:   ".",
			OutputDir: ".",
		},
	}
}

func NewConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %v: %w", path, err)
	}

	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return nil, fmt.Errorf("error parsing config file %v: %w", path, err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if !common.IsHexAddress(c.StakingContract) {
		return fmt.Errorf("invalid staking contract address: %q", c.StakingContract)
	}

	if c.RPCURLTemplate == "" {
		return fmt.Errorf("rpcUrlTemplate must not be empty")
	}

	if c.Validation == nil || c.Validation.SchemaFile == "" {
		return fmt.Errorf("validate.schemaFile must not be empty")
	}

	if c.Validation.LogoTimeout.Duration <= 0 {
		return fmt.Errorf("validate.logoTimeout must be positive")
	}

	if c.Generate == nil || len(c.Generate.Networks) == 0 {
		return fmt.Errorf("generate.networks must not be empty")
	}

	for name, network := range c.Networks {
		if network == nil || network.RPCURL == "" {
			return fmt.Errorf("network %v: rpcUrl must not be empty", name)
		}
	}

	return nil
}

// SchemaPath returns the reference entry path. Relative paths are taken from the project root.
func (c *Config) SchemaPath(projectRoot string) string {
	if filepath.IsAbs(c.Validation.SchemaFile) || projectRoot == "" {
		return c.Validation.SchemaFile
	}

	return filepath.Join(projectRoot, c.Validation.SchemaFile)
}

// RPCURL returns the json-rpc endpoint of the given network.
func (c *Config) RPCURL(network string) string {
	if network == MainnetNetwork && c.MainnetRPCURL != "" {
		return c.MainnetRPCURL
	}

	if netConfig := c.Networks[network]; netConfig != nil && netConfig.RPCURL != "" {
		return netConfig.RPCURL
	}

	return strings.ReplaceAll(c.RPCURLTemplate, "{network}", network)
}

// RPCHeaders returns the additional http headers sent to the json-rpc endpoint of the given network.
func (c *Config) RPCHeaders(network string) map[string]string {
	if netConfig := c.Networks[network]; netConfig != nil {
		return netConfig.Headers
	}

	return nil
}
