package staking

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethpandaops/validator-info/pkg/clients/execution/rpc"
	"github.com/ethpandaops/validator-info/pkg/config"
	"github.com/ethpandaops/validator-info/pkg/types"
	"github.com/sirupsen/logrus"
)

// Resolver looks up validator records on the staking contract of a network.
type Resolver struct {
	config *config.Config
	logger logrus.FieldLogger
}

// ValidatorLookup is an on-chain validator record together with the chain state it was read at.
type ValidatorLookup struct {
	Network       string
	ClientVersion string
	ChainID       uint64
	BlockNumber   uint64
	Validator     *Validator
}

func NewResolver(cfg *config.Config, logger logrus.FieldLogger) *Resolver {
	return &Resolver{
		config: cfg,
		logger: logger.WithField("module", "staking"),
	}
}

// GetValidator connects to the network's rpc endpoint and fetches the full on-chain record at the current head.
func (r *Resolver) GetValidator(ctx context.Context, network string, validatorID uint64) (*ValidatorLookup, error) {
	client, err := rpc.NewExecutionClient(network, r.config.RPCURL(network), r.config.RPCHeaders(network))
	if err != nil {
		return nil, err
	}

	if err := client.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("could not connect to %v rpc (%v): %w", network, getRedactedURL(client.GetEndpoint()), err)
	}
	defer client.Close()

	logger := r.logger.WithFields(logrus.Fields{
		"network":  client.GetName(),
		"endpoint": getRedactedURL(client.GetEndpoint()),
	})

	lookup := &ValidatorLookup{
		Network: client.GetName(),
	}

	// not every endpoint exposes web3_clientVersion
	lookup.ClientVersion, err = client.GetClientVersion(ctx)
	if err != nil {
		logger.WithError(err).Debug("could not get client version")
	}

	chainID, err := client.GetChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get chain id from %v rpc: %w", network, err)
	}

	lookup.ChainID = chainID.Uint64()

	lookup.BlockNumber, err = client.GetBlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get block number from %v rpc: %w", network, err)
	}

	logger.WithFields(logrus.Fields{
		"client":  lookup.ClientVersion,
		"chainId": lookup.ChainID,
		"block":   lookup.BlockNumber,
		"id":      validatorID,
	}).Debug("fetching validator from staking contract")

	contract, err := NewContract(common.HexToAddress(r.config.StakingContract), client)
	if err != nil {
		return nil, err
	}

	lookup.Validator, err = contract.GetValidator(ctx, validatorID, new(big.Int).SetUint64(lookup.BlockNumber))
	if err != nil {
		return nil, err
	}

	return lookup, nil
}

// ResolveValidatorKeys returns the authoritative secp and bls keys of a validator.
func (r *Resolver) ResolveValidatorKeys(ctx context.Context, network string, validatorID uint64) (*types.ValidatorKeys, error) {
	lookup, err := r.GetValidator(ctx, network, validatorID)
	if err != nil {
		return nil, err
	}

	return &types.ValidatorKeys{
		Secp: lookup.Validator.SecpHex(),
		Bls:  lookup.Validator.BlsHex(),
	}, nil
}
