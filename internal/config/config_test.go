package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileDegradesToDefaults(t *testing.T) {
	cfg := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_CorruptFileDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[[not toml"), 0600))

	cfg := LoadFrom(path)
	assert.Equal(t, Default(), cfg)
}

func TestSaveToThenLoadFrom_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Plan.Month = "July"
	cfg.Plan.HeroOffer = "Summer Spa Package - 30% Off"
	cfg.Plan.PostingFrequency = 7
	cfg.Promotions = []Promotion{{Name: "Easter Weekend", Date: "2026-04-12", Notes: "family focus"}}
	cfg.Email.ToAddrs = []string{"marketing@thermavillage.example"}
	require.NoError(t, cfg.SaveTo(path))

	loaded := LoadFrom(path)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFrom_PartialFileKeepsDefaultsElsewhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[plan]\nmonth = \"October\"\n"), 0600))

	cfg := LoadFrom(path)
	assert.Equal(t, "October", cfg.Plan.Month)
	assert.Equal(t, Default().Plan.PostingFrequency, cfg.Plan.PostingFrequency)
	assert.Equal(t, Default().Agent.AgentID, cfg.Agent.AgentID)
}
