package checkschema

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethpandaops/validator-info/pkg/types"
	"github.com/ethpandaops/validator-info/pkg/validatorinfo"
	"github.com/sirupsen/logrus"
)

var (
	CheckName       = "check_schema"
	CheckDescriptor = &types.CheckDescriptor{
		Name:        CheckName,
		Description: "Checks that the entry has every field of the reference entry with the same json type.",
		NewCheck:    NewCheck,
	}
)

type Check struct {
	ctx    *types.CheckContext
	logger logrus.FieldLogger
}

func NewCheck(ctx *types.CheckContext) (types.Check, error) {
	return &Check{
		ctx:    ctx,
		logger: ctx.Logger.WithField("check", CheckName),
	}, nil
}

func (c *Check) Execute(_ context.Context) error {
	schemaFile := c.ctx.Config.SchemaPath(c.ctx.ProjectRoot)

	schema, err := loadSchema(schemaFile)
	if err != nil {
		c.ctx.Reporter.Fail("Failed to load reference schema %v: %v", schemaFile, err)
		return err
	}

	c.logger.Debugf("loaded reference schema with %v fields from %v", len(schema.Keys), schemaFile)

	record := c.ctx.Record
	problems := []error{}

	for _, key := range schema.Keys {
		value, ok := record.Fields[key]
		if !ok {
			c.ctx.Reporter.Fail("Missing field: '%v'", key)
			problems = append(problems, fmt.Errorf("missing field %q", key))

			continue
		}

		expectedType := validatorinfo.TypeName(schema.Fields[key])
		actualType := validatorinfo.TypeName(value)

		if expectedType != actualType {
			c.ctx.Reporter.Fail("Type mismatch for '%v': expected %v, got %v", key, expectedType, actualType)
			problems = append(problems, fmt.Errorf("field %q has type %v, expected %v", key, actualType, expectedType))
		}
	}

	for _, key := range record.Keys {
		if !schema.Has(key) {
			c.ctx.Reporter.Warn("Extra field not in schema: '%v'", key)
		}
	}

	if len(problems) > 0 {
		c.ctx.Reporter.Fail("Schema check failed")
		return errors.Join(problems...)
	}

	c.ctx.Reporter.Ok("Schema and types match")

	return nil
}

func loadSchema(fileName string) (*validatorinfo.Record, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	schema, err := validatorinfo.ParseRecord(data)
	if err != nil {
		return nil, fmt.Errorf("invalid reference entry: %w", err)
	}

	return schema, nil
}
