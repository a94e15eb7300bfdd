package staking

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Validator is the on-chain record returned by getValidator.
type Validator struct {
	ID                  uint64
	AuthAddress         common.Address
	Flags               uint64
	Stake               *uint256.Int
	AccRewardPerToken   *uint256.Int
	Commission          *uint256.Int
	UnclaimedRewards    *uint256.Int
	ConsensusStake      *uint256.Int
	ConsensusCommission *uint256.Int
	SnapshotStake       *uint256.Int
	SnapshotCommission  *uint256.Int
	SecpPubkey          []byte
	BlsPubkey           []byte
}

// SecpHex returns the secp public key as lowercase hex without 0x prefix, the format used in validator entries.
func (v *Validator) SecpHex() string {
	return hex.EncodeToString(v.SecpPubkey)
}

// BlsHex returns the bls public key as lowercase hex without 0x prefix.
func (v *Validator) BlsHex() string {
	return hex.EncodeToString(v.BlsPubkey)
}

// Contract is a read-only binding to the staking contract.
type Contract struct {
	address common.Address
	abi     abi.ABI
	caller  ethereum.ContractCaller
}

func NewContract(address common.Address, caller ethereum.ContractCaller) (*Contract, error) {
	parsed, err := abi.JSON(strings.NewReader(stakingABI))
	if err != nil {
		return nil, fmt.Errorf("failed parsing staking abi: %w", err)
	}

	return &Contract{
		address: address,
		abi:     parsed,
		caller:  caller,
	}, nil
}

func (c *Contract) Address() common.Address {
	return c.address
}

// GetValidator fetches the validator record with the given id, a nil blockNumber selects the latest block.
func (c *Contract) GetValidator(ctx context.Context, validatorID uint64, blockNumber *big.Int) (*Validator, error) {
	callData, err := c.abi.Pack(getValidatorMethod, validatorID)
	if err != nil {
		return nil, fmt.Errorf("failed packing %v call: %w", getValidatorMethod, err)
	}

	result, err := c.caller.CallContract(ctx, ethereum.CallMsg{
		To:   &c.address,
		Data: callData,
	}, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("%v(%v) call failed: %w", getValidatorMethod, validatorID, err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%v(%v) returned no data", getValidatorMethod, validatorID)
	}

	values, err := c.abi.Unpack(getValidatorMethod, result)
	if err != nil {
		return nil, fmt.Errorf("failed decoding %v result: %w", getValidatorMethod, err)
	}

	return decodeValidator(validatorID, values)
}

func decodeValidator(validatorID uint64, values []interface{}) (*Validator, error) {
	if len(values) != 12 {
		return nil, fmt.Errorf("unexpected number of return values: %v", len(values))
	}

	validator := &Validator{ID: validatorID}

	var ok bool
	if validator.AuthAddress, ok = values[0].(common.Address); !ok {
		return nil, fmt.Errorf("unexpected type for authAddress: %T", values[0])
	}

	if validator.Flags, ok = values[1].(uint64); !ok {
		return nil, fmt.Errorf("unexpected type for flags: %T", values[1])
	}

	amounts := []**uint256.Int{
		&validator.Stake,
		&validator.AccRewardPerToken,
		&validator.Commission,
		&validator.UnclaimedRewards,
		&validator.ConsensusStake,
		&validator.ConsensusCommission,
		&validator.SnapshotStake,
		&validator.SnapshotCommission,
	}
	for i, target := range amounts {
		value, ok := values[2+i].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("unexpected type for return value %v: %T", 2+i, values[2+i])
		}

		amount, overflow := uint256.FromBig(value)
		if overflow {
			return nil, fmt.Errorf("return value %v overflows uint256", 2+i)
		}

		*target = amount
	}

	if validator.SecpPubkey, ok = values[10].([]byte); !ok {
		return nil, fmt.Errorf("unexpected type for secpPubkey: %T", values[10])
	}

	if validator.BlsPubkey, ok = values[11].([]byte); !ok {
		return nil, fmt.Errorf("unexpected type for blsPubkey: %T", values[11])
	}

	return validator, nil
}
