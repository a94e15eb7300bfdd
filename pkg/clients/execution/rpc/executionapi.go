package rpc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

type ExecutionClient struct {
	name      string
	endpoint  string
	headers   map[string]string
	rpcClient *rpc.Client
	ethClient *ethclient.Client
}

// NewExecutionClient is used to create a new execution client
func NewExecutionClient(name, url string, headers map[string]string) (*ExecutionClient, error) {
	if url == "" {
		return nil, fmt.Errorf("no rpc endpoint for %v", name)
	}

	client := &ExecutionClient{
		name:     name,
		endpoint: url,
		headers:  headers,
	}

	return client, nil
}

func (ec *ExecutionClient) Initialize(ctx context.Context) error {
	if ec.ethClient != nil {
		return nil
	}

	rpcClient, err := rpc.DialContext(ctx, ec.endpoint)
	if err != nil {
		return err
	}

	for hKey, hVal := range ec.headers {
		rpcClient.SetHeader(hKey, hVal)
	}

	ec.rpcClient = rpcClient
	ec.ethClient = ethclient.NewClient(rpcClient)

	return nil
}

func (ec *ExecutionClient) Close() {
	if ec.ethClient != nil {
		ec.ethClient.Close()
		ec.ethClient = nil
		ec.rpcClient = nil
	}
}

func (ec *ExecutionClient) GetName() string {
	return ec.name
}

func (ec *ExecutionClient) GetEndpoint() string {
	return ec.endpoint
}

func (ec *ExecutionClient) GetClientVersion(ctx context.Context) (string, error) {
	var result string
	err := ec.rpcClient.CallContext(ctx, &result, "web3_clientVersion")

	return result, err
}

func (ec *ExecutionClient) GetChainID(ctx context.Context) (*big.Int, error) {
	return ec.ethClient.ChainID(ctx)
}

func (ec *ExecutionClient) GetBlockNumber(ctx context.Context) (uint64, error) {
	return ec.ethClient.BlockNumber(ctx)
}

// CallContract executes an eth_call, a nil blockNumber selects the latest block.
func (ec *ExecutionClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if ec.ethClient == nil {
		return nil, fmt.Errorf("client %v not initialized", ec.name)
	}

	return ec.ethClient.CallContract(ctx, msg, blockNumber)
}
