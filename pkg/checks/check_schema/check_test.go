package checkschema

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethpandaops/validator-info/pkg/config"
	"github.com/ethpandaops/validator-info/pkg/report"
	"github.com/ethpandaops/validator-info/pkg/types"
	"github.com/ethpandaops/validator-info/pkg/validatorinfo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "id": 0,
  "name": "",
  "secp": "000000000000000000000000000000000000000000000000000000000000000000",
  "bls": "",
  "website": "",
  "description": "",
  "logo": "",
  "x": ""
}`

func newTestCheck(t *testing.T, entry string) (types.Check, *report.TextReporter) {
	t.Helper()

	schemaFile := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(schemaFile, []byte(testSchema), 0o600))

	cfg := config.DefaultConfig()
	cfg.Validation.SchemaFile = schemaFile

	record, err := validatorinfo.ParseRecord([]byte(entry))
	require.NoError(t, err)

	reporter := report.NewTextReporter(nil)
	check, err := NewCheck(&types.CheckContext{
		Record:   record,
		Config:   cfg,
		Services: &types.CheckServices{},
		Reporter: reporter,
		Logger:   logrus.New(),
	})
	require.NoError(t, err)

	return check, reporter
}

func TestSchemaMatches(t *testing.T) {
	check, reporter := newTestCheck(t, `{"id": 12, "name": "Alice", "secp": "02ab", "bls": "8c", "website": "https://alice.example", "description": "", "logo": "https://alice.example/logo.png", "x": "@alice"}`)

	require.NoError(t, check.Execute(context.Background()))
	assert.Empty(t, reporter.Lines(report.LevelFail))
	assert.Empty(t, reporter.Lines(report.LevelWarn))
	assert.True(t, reporter.Contains(report.LevelOk, "Schema and types match"))
}

func TestSchemaMissingField(t *testing.T) {
	check, reporter := newTestCheck(t, `{"id": 12, "name": "Alice", "secp": "02ab", "bls": "8c", "website": "", "description": "", "x": ""}`)

	err := check.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logo")
	assert.True(t, reporter.Contains(report.LevelFail, "Missing field: 'logo'"))
	assert.True(t, reporter.Contains(report.LevelFail, "Schema check failed"))
}

func TestSchemaReportsAllProblems(t *testing.T) {
	check, reporter := newTestCheck(t, `{"id": "12", "name": "Alice", "secp": "02ab", "bls": "8c", "website": "", "description": ""}`)

	require.Error(t, check.Execute(context.Background()))
	assert.True(t, reporter.Contains(report.LevelFail, "Type mismatch for 'id': expected integer, got string"))
	assert.True(t, reporter.Contains(report.LevelFail, "Missing field: 'logo'"))
	assert.True(t, reporter.Contains(report.LevelFail, "Missing field: 'x'"))
}

func TestSchemaExtraFieldIsWarning(t *testing.T) {
	check, reporter := newTestCheck(t, `{"id": 12, "name": "Alice", "secp": "02ab", "bls": "8c", "website": "", "description": "", "logo": "", "x": "", "discord": "alice"}`)

	require.NoError(t, check.Execute(context.Background()))
	assert.True(t, reporter.Contains(report.LevelWarn, "Extra field not in schema: 'discord'"))
}

func TestSchemaFileMissing(t *testing.T) {
	record, err := validatorinfo.ParseRecord([]byte(`{}`))
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Validation.SchemaFile = filepath.Join(t.TempDir(), "missing.json")

	check, err := NewCheck(&types.CheckContext{
		Record:   record,
		Config:   cfg,
		Services: &types.CheckServices{},
		Reporter: report.NewTextReporter(nil),
		Logger:   logrus.New(),
	})
	require.NoError(t, err)

	assert.Error(t, check.Execute(context.Background()))
}

func TestSchemaFileRelativeToProjectRoot(t *testing.T) {
	projectRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(projectRoot, "example"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectRoot, "example", "schema.json"), []byte(`{"name": ""}`), 0o600))

	record, err := validatorinfo.ParseRecord([]byte(`{"name": "Alice"}`))
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Validation.SchemaFile = filepath.Join("example", "schema.json")

	reporter := report.NewTextReporter(nil)
	check, err := NewCheck(&types.CheckContext{
		ProjectRoot: projectRoot,
		Record:      record,
		Config:      cfg,
		Services:    &types.CheckServices{},
		Reporter:    reporter,
		Logger:      logrus.New(),
	})
	require.NoError(t, err)

	require.NoError(t, check.Execute(context.Background()))
	assert.True(t, reporter.Contains(report.LevelOk, "Schema and types match"))
}
