package rpc

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethpandaops/validator-info/pkg/clients/execution/rpc/rpctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionClient(t *testing.T) {
	server, err := rpctest.NewServer(10143, func(args rpctest.CallArgs) ([]byte, error) {
		return append([]byte{0xca, 0xfe}, args.CallData()...), nil
	})
	require.NoError(t, err)
	defer server.Close()

	client, err := NewExecutionClient("devnet", server.URL, map[string]string{"X-Test": "1"})
	require.NoError(t, err)
	require.NoError(t, client.Initialize(context.Background()))
	defer client.Close()

	assert.Equal(t, "devnet", client.GetName())
	assert.Equal(t, server.URL, client.GetEndpoint())

	version, err := client.GetClientVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rpctest/v1.0.0", version)

	chainID, err := client.GetChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(10143), chainID.Uint64())

	blockNumber, err := client.GetBlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), blockNumber)

	to := common.HexToAddress("0x0000000000000000000000000000000000001000")
	result, err := client.CallContract(context.Background(), ethereum.CallMsg{To: &to, Data: []byte{0x01}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xca, 0xfe, 0x01}, result)
}

func TestExecutionClientNotInitialized(t *testing.T) {
	client, err := NewExecutionClient("devnet", "http://127.0.0.1:1", nil)
	require.NoError(t, err)

	_, err = client.CallContract(context.Background(), ethereum.CallMsg{}, nil)
	assert.Error(t, err)
}

func TestNewExecutionClientWithoutEndpoint(t *testing.T) {
	_, err := NewExecutionClient("devnet", "", nil)
	assert.Error(t, err)
}
