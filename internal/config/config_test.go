package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "dedup.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Thresholds(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[filter]\npident = 95\nqcovs = 90\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Filter.PIdent)
	require.NotNil(t, cfg.Filter.QCovs)
	assert.Equal(t, 95, *cfg.Filter.PIdent)
	assert.Equal(t, 90, *cfg.Filter.QCovs)
}

func TestLoad_PartialLeavesUnset(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[filter]\nqcovs = 50\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Filter.PIdent)
	require.NotNil(t, cfg.Filter.QCovs)
	assert.Equal(t, 50, *cfg.Filter.QCovs)
}

func TestLoad_UnknownKeyFails(t *testing.T) {
	_, err := Load(writeConfig(t, "[filter]\npidnet = 95\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}
