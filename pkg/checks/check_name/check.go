package checkname

import (
	"context"
	"errors"
	"strings"

	"github.com/ethpandaops/validator-info/pkg/types"
	"github.com/ethpandaops/validator-info/pkg/validatorinfo"
)

var (
	CheckName       = "check_name"
	CheckDescriptor = &types.CheckDescriptor{
		Name:        CheckName,
		Description: "Checks that the validator name is a non-empty string.",
		NewCheck:    NewCheck,
	}
)

var ErrEmptyName = errors.New("name is empty or missing")

type Check struct {
	ctx *types.CheckContext
}

func NewCheck(ctx *types.CheckContext) (types.Check, error) {
	return &Check{
		ctx: ctx,
	}, nil
}

func (c *Check) Execute(_ context.Context) error {
	name, ok := c.ctx.Record.String(validatorinfo.FieldName)
	if !ok || strings.TrimSpace(name) == "" {
		c.ctx.Reporter.Fail("Invalid 'name': field is empty or missing")
		return ErrEmptyName
	}

	c.ctx.Reporter.Ok("Name is valid: '%v'", strings.TrimSpace(name))

	return nil
}
