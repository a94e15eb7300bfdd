package types

import (
	"context"
	"net/http"

	"github.com/ethpandaops/validator-info/pkg/config"
	"github.com/ethpandaops/validator-info/pkg/validatorinfo"
	"github.com/sirupsen/logrus"
)

type CheckDescriptor struct {
	Name        string
	Description string
	NewCheck    func(ctx *CheckContext) (Check, error)
}

type Check interface {
	// Execute runs the check, a returned error marks the entry as invalid.
	Execute(ctx context.Context) error
}

// CheckContext carries the entry under validation and the services available to checks.
type CheckContext struct {
	FilePath string
	// Directory holding the network directories, relative config paths resolve against it.
	ProjectRoot string
	Network     string
	Record      *validatorinfo.Record
	Config      *config.Config
	Services    *CheckServices
	Reporter    Reporter
	Logger      logrus.FieldLogger
}

type CheckServices struct {
	HTTPClient  *http.Client
	KeyResolver ValidatorKeyResolver
}

type ValidatorKeys struct {
	Secp string
	Bls  string
}

type ValidatorKeyResolver interface {
	ResolveValidatorKeys(ctx context.Context, network string, validatorID uint64) (*ValidatorKeys, error)
}

// Reporter writes human readable check results.
type Reporter interface {
	Info(format string, args ...interface{})
	Ok(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Fail(format string, args ...interface{})
}
