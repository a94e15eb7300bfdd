package validator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethpandaops/validator-info/pkg/checks"
	"github.com/ethpandaops/validator-info/pkg/config"
	"github.com/ethpandaops/validator-info/pkg/types"
	"github.com/ethpandaops/validator-info/pkg/validatorinfo"
	"github.com/sirupsen/logrus"
)

// ErrCheckFailed is returned for every entry that does not pass validation.
var ErrCheckFailed = errors.New("validation failed")

// Validator runs the validation checks against a single validator entry.
type Validator struct {
	config      *config.Config
	services    *types.CheckServices
	reporter    types.Reporter
	logger      logrus.FieldLogger
	descriptors []*types.CheckDescriptor
}

func NewValidator(cfg *config.Config, services *types.CheckServices, reporter types.Reporter, logger logrus.FieldLogger) *Validator {
	return &Validator{
		config:      cfg,
		services:    services,
		reporter:    reporter,
		logger:      logger.WithField("module", "validator"),
		descriptors: checks.AvailableCheckDescriptors,
	}
}

// ValidateFile validates the entry stored at filePath. The network is derived from the parent directory name.
func (v *Validator) ValidateFile(ctx context.Context, filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("invalid path %v: %w", filePath, err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		v.reporter.Fail("Failed to read file: %v", err)
		return fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}

	record, err := validatorinfo.ParseRecord(data)
	if err != nil {
		v.reporter.Fail("Invalid JSON format: %v", err)
		return fmt.Errorf("%w: invalid json: %w", ErrCheckFailed, err)
	}

	networkDir := filepath.Dir(absPath)
	network := filepath.Base(networkDir)

	v.reporter.Info("")
	v.reporter.Info("Network: %v", network)
	v.reporter.Info("Validator ID: %v", record.FormatField(validatorinfo.FieldID))
	v.reporter.Info("SECP: %v", record.FormatField(validatorinfo.FieldSecp))
	v.reporter.Info("BLS : %v", record.FormatField(validatorinfo.FieldBls))
	v.reporter.Info("")
	v.reporter.Ok("JSON is valid")

	checkCtx := &types.CheckContext{
		FilePath:    absPath,
		ProjectRoot: filepath.Dir(networkDir),
		Network:     network,
		Record:      record,
		Config:      v.config,
		Services:    v.services,
		Reporter:    v.reporter,
		Logger: v.logger.WithFields(logrus.Fields{
			"file":    filepath.Base(absPath),
			"network": network,
		}),
	}

	for _, descriptor := range v.descriptors {
		check, err := descriptor.NewCheck(checkCtx)
		if err != nil {
			return fmt.Errorf("failed initializing %v: %w", descriptor.Name, err)
		}

		v.logger.Debugf("running %v", descriptor.Name)

		if err := check.Execute(ctx); err != nil {
			return fmt.Errorf("%w: %v: %w", ErrCheckFailed, descriptor.Name, err)
		}
	}

	v.reporter.Info("")
	v.reporter.Info("Validation successful!")

	return nil
}
