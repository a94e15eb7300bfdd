package checkfilename

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ethpandaops/validator-info/pkg/types"
)

var (
	CheckName       = "check_filename"
	CheckDescriptor = &types.CheckDescriptor{
		Name:        CheckName,
		Description: "Checks that the entry is stored as <secp>.json.",
		NewCheck:    NewCheck,
	}
)

type Check struct {
	ctx *types.CheckContext
}

func NewCheck(ctx *types.CheckContext) (types.Check, error) {
	return &Check{
		ctx: ctx,
	}, nil
}

func (c *Check) Execute(_ context.Context) error {
	expected := fmt.Sprintf("%v.json", c.ctx.Record.Secp())
	actual := filepath.Base(c.ctx.FilePath)

	if actual != expected {
		c.ctx.Reporter.Fail("Filename mismatch: expected '%v', got '%v'", expected, actual)
		return fmt.Errorf("filename %v does not match secp key (expected %v)", actual, expected)
	}

	c.ctx.Reporter.Ok("Filename matches secp key")

	return nil
}
