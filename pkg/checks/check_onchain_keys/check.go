package checkonchainkeys

import (
	"context"
	"fmt"

	"github.com/ethpandaops/validator-info/pkg/types"
	"github.com/sirupsen/logrus"
)

var (
	CheckName       = "check_onchain_keys"
	CheckDescriptor = &types.CheckDescriptor{
		Name:        CheckName,
		Description: "Checks that secp and bls keys match the staking contract record of the validator id.",
		NewCheck:    NewCheck,
	}
)

type Check struct {
	ctx    *types.CheckContext
	logger logrus.FieldLogger
}

func NewCheck(ctx *types.CheckContext) (types.Check, error) {
	if ctx.Services.KeyResolver == nil {
		return nil, fmt.Errorf("%v requires a validator key resolver", CheckName)
	}

	return &Check{
		ctx:    ctx,
		logger: ctx.Logger.WithField("check", CheckName),
	}, nil
}

func (c *Check) Execute(ctx context.Context) error {
	record := c.ctx.Record

	validatorID, err := record.ValidatorID()
	if err != nil {
		c.ctx.Reporter.Fail("Invalid validator id %v: %v", record.FormatField("id"), err)
		return err
	}

	keys, err := c.ctx.Services.KeyResolver.ResolveValidatorKeys(ctx, c.ctx.Network, validatorID)
	if err != nil {
		c.ctx.Reporter.Fail("Failed to fetch validator %v from %v: %v", validatorID, c.ctx.Network, err)
		return err
	}

	c.logger.Debugf("on-chain keys of validator %v: secp=%v bls=%v", validatorID, keys.Secp, keys.Bls)

	if secp := record.Secp(); keys.Secp != secp {
		c.ctx.Reporter.Fail("SECP mismatch:\n   local=%v\n   chain=%v", secp, keys.Secp)
		return fmt.Errorf("secp key mismatch (local %v, chain %v)", secp, keys.Secp)
	}

	c.ctx.Reporter.Ok("SECP key matches on-chain value")

	if bls := record.Bls(); keys.Bls != bls {
		c.ctx.Reporter.Fail("BLS mismatch:\n   local=%v\n   chain=%v", bls, keys.Bls)
		return fmt.Errorf("bls key mismatch (local %v, chain %v)", bls, keys.Bls)
	}

	c.ctx.Reporter.Ok("BLS key matches on-chain value")

	return nil
}
