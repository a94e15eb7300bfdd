package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, content string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "testnet")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	path := filepath.Join(dir, "02f1c3a9d7b3e0d8f6a2b4c6d8e0f1a3b5c7d9e1f3a5b7c9d1e3f5a7b9c1d3e5f7.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "version", args: []string{"version"}, code: 0},
		{name: "checks", args: []string{"checks"}, code: 0},
		{name: "unknown check", args: []string{"checks", "check_unknown"}, code: 1},
		{name: "unknown command", args: []string{"frobnicate"}, code: 1},
		{name: "validate without file", args: []string{"validate"}, code: 1},
		{name: "validate malformed entry", args: []string{"validate", writeEntry(t, `{"id": 7, "name": `)}, code: 1},
		{name: "validate missing entry", args: []string{"validate", filepath.Join(t.TempDir(), "testnet", "missing.json")}, code: 1},
		{name: "onchain invalid id", args: []string{"onchain", "testnet", "seven"}, code: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.code, run(context.Background(), test.args))
		})
	}
}
