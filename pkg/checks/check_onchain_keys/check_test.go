package checkonchainkeys

import (
	"context"
	"errors"
	"testing"

	"github.com/ethpandaops/validator-info/pkg/report"
	"github.com/ethpandaops/validator-info/pkg/types"
	"github.com/ethpandaops/validator-info/pkg/validatorinfo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	keys      *types.ValidatorKeys
	err       error
	networks  []string
	validator []uint64
}

func (f *fakeResolver) ResolveValidatorKeys(_ context.Context, network string, validatorID uint64) (*types.ValidatorKeys, error) {
	f.networks = append(f.networks, network)
	f.validator = append(f.validator, validatorID)

	return f.keys, f.err
}

func runCheck(t *testing.T, resolver *fakeResolver, entry string) (*report.TextReporter, error) {
	t.Helper()

	record, err := validatorinfo.ParseRecord([]byte(entry))
	require.NoError(t, err)

	reporter := report.NewTextReporter(nil)
	check, err := NewCheck(&types.CheckContext{
		Network:  "testnet",
		Record:   record,
		Services: &types.CheckServices{KeyResolver: resolver},
		Reporter: reporter,
		Logger:   logrus.New(),
	})
	require.NoError(t, err)

	return reporter, check.Execute(context.Background())
}

func TestOnChainKeysMatch(t *testing.T) {
	resolver := &fakeResolver{keys: &types.ValidatorKeys{Secp: "02ab", Bls: "8c01"}}

	reporter, err := runCheck(t, resolver, `{"id": 5, "secp": "02ab", "bls": "8c01"}`)

	require.NoError(t, err)
	assert.Equal(t, []string{"testnet"}, resolver.networks)
	assert.Equal(t, []uint64{5}, resolver.validator)
	assert.Equal(t, []string{"SECP key matches on-chain value", "BLS key matches on-chain value"}, reporter.Lines(report.LevelOk))
}

func TestOnChainSecpMismatch(t *testing.T) {
	resolver := &fakeResolver{keys: &types.ValidatorKeys{Secp: "02ff", Bls: "8c02"}}

	reporter, err := runCheck(t, resolver, `{"id": "5", "secp": "02ab", "bls": "8c01"}`)

	require.Error(t, err)
	assert.True(t, reporter.Contains(report.LevelFail, "SECP mismatch"))
	assert.False(t, reporter.Contains(report.LevelFail, "BLS mismatch"))
}

func TestOnChainBlsMismatch(t *testing.T) {
	resolver := &fakeResolver{keys: &types.ValidatorKeys{Secp: "02ab", Bls: "8c02"}}

	reporter, err := runCheck(t, resolver, `{"id": 5, "secp": "02ab", "bls": "8c01"}`)

	require.Error(t, err)
	assert.True(t, reporter.Contains(report.LevelOk, "SECP key matches"))
	assert.True(t, reporter.Contains(report.LevelFail, "BLS mismatch"))
}

func TestOnChainResolverError(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("execution reverted")}

	reporter, err := runCheck(t, resolver, `{"id": 5, "secp": "02ab", "bls": "8c01"}`)

	require.Error(t, err)
	assert.True(t, reporter.Contains(report.LevelFail, "execution reverted"))
}

func TestOnChainInvalidID(t *testing.T) {
	resolver := &fakeResolver{}

	reporter, err := runCheck(t, resolver, `{"id": "five", "secp": "02ab", "bls": "8c01"}`)

	require.Error(t, err)
	assert.Empty(t, resolver.networks)
	assert.True(t, reporter.Contains(report.LevelFail, "Invalid validator id"))
}

func TestOnChainRequiresResolver(t *testing.T) {
	_, err := NewCheck(&types.CheckContext{Services: &types.CheckServices{}})
	assert.Error(t, err)
}
