package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	config, err := NewConfig("")

	require.NoError(t, err)
	require.NoError(t, config.Validate())
	assert.Equal(t, DefaultStakingContract, config.StakingContract)
	assert.Equal(t, DefaultSchemaFile, config.Validation.SchemaFile)
	assert.Equal(t, 10*time.Second, config.Validation.LogoTimeout.Duration)
	assert.Equal(t, []string{"mainnet", "testnet"}, config.Generate.Networks)
}

func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
networks:
  devnet:
    rpcUrl: http://localhost:8545
    headers:
      Authorization: Bearer token
validate:
  logoTimeout: 3s
generate:
  networks: [devnet]
  outputDir: out
`), 0o600))

	config, err := NewConfig(path)

	require.NoError(t, err)
	require.NoError(t, config.Validate())
	assert.Equal(t, 3*time.Second, config.Validation.LogoTimeout.Duration)
	assert.Equal(t, DefaultSchemaFile, config.Validation.SchemaFile)
	assert.Equal(t, []string{"devnet"}, config.Generate.Networks)
	assert.Equal(t, "out", config.Generate.OutputDir)
	assert.Equal(t, ".", config.Generate.RootDir)
	assert.Equal(t, "http://localhost:8545", config.RPCURL("devnet"))
	assert.Equal(t, map[string]string{"Authorization": "Bearer token"}, config.RPCHeaders("devnet"))
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRPCURL(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "https://rpc-mainnet.monadinfra.com/", config.RPCURL("mainnet"))
	assert.Equal(t, "https://rpc-testnet.monadinfra.com/", config.RPCURL("testnet"))

	config.MainnetRPCURL = "https://mainnet.example.org/"
	assert.Equal(t, "https://mainnet.example.org/", config.RPCURL("mainnet"))
	assert.Equal(t, "https://rpc-testnet.monadinfra.com/", config.RPCURL("testnet"))
}

func TestSchemaPath(t *testing.T) {
	config := DefaultConfig()
	root := t.TempDir()

	assert.Equal(t, filepath.Join(root, DefaultSchemaFile), config.SchemaPath(root))
	assert.Equal(t, DefaultSchemaFile, config.SchemaPath(""))

	absSchema := filepath.Join(t.TempDir(), "schema.json")
	config.Validation.SchemaFile = absSchema
	assert.Equal(t, absSchema, config.SchemaPath(root))
}

func TestValidateInvalid(t *testing.T) {
	config := DefaultConfig()
	config.StakingContract = "0x1234"
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Generate.Networks = nil
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Networks["devnet"] = &NetworkConfig{}
	assert.Error(t, config.Validate())
}
