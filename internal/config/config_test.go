package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/network"
)

const sampleYAML = `
machine:
  crib: "     beachhead"
  ciphertext: "fbhcaegdebfdg"
  window: CAA
  plugboard: "EA DG"
  diagonal_board: true
  switches:
    ab: false
    HG: false
  source:
    wire: "E.a"
    enabled: true
scan:
  free_running: false
  halt_on_stop: true
output:
  log_level: debug
ui:
  step_delay_ms: 5
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tinybombe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := load("", []string{t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, "AAA", cfg.Machine.Window)
	assert.True(t, cfg.Machine.DiagonalBoard)
	assert.True(t, cfg.Machine.Source.Enabled)
	assert.Equal(t, "Ec", cfg.Machine.Source.Wire)
	assert.True(t, cfg.Scan.FreeRunning)
	assert.False(t, cfg.Scan.HaltOnStop)
	assert.Equal(t, "info", cfg.Output.LogLevel)
	assert.Equal(t, 20, cfg.UI.StepDelayMs)
	assert.Equal(t, "#EF4444", cfg.UI.Colors["hot"])
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, sampleYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "CAA", cfg.Machine.Window)
	assert.False(t, cfg.Scan.FreeRunning)
	assert.True(t, cfg.Scan.HaltOnStop)
	assert.Equal(t, "debug", cfg.Output.LogLevel)
	assert.Equal(t, 5, cfg.UI.StepDelayMs)
	// defaults fill what the file leaves out
	assert.Equal(t, "./reports", cfg.Output.ReportDir)
}

func TestLoadSearchesDirectories(t *testing.T) {
	path := writeConfig(t, sampleYAML)
	cfg, err := load("", []string{filepath.Dir(path)})
	require.NoError(t, err)
	assert.Equal(t, "CAA", cfg.Machine.Window)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TINYBOMBE_MACHINE_WINDOW", "HHH")
	t.Setenv("TINYBOMBE_SCAN_HALT_ON_STOP", "true")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "HHH", cfg.Machine.Window)
	assert.True(t, cfg.Scan.HaltOnStop)
}

func TestSettings(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, "     BEACHHEAD", s.Crib)
	assert.Equal(t, "FBHCAEGDEBFDG", s.Ciphertext)
	assert.Equal(t, cipher.Position(128), s.Start)
	assert.Equal(t, "AE DG", s.Plugboard.String())
	assert.Equal(t, network.NodeAt(4, 0), s.Source.Node)
	assert.True(t, s.Source.Enabled)
	assert.Equal(t, []string{"AB", "GH"}, s.Switches.Open())
}

func TestSettingsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"window", func(c *Config) { c.Machine.Window = "AAZ" }, "machine.window"},
		{"source", func(c *Config) { c.Machine.Source.Wire = "Q" }, "machine.source.wire"},
		{"switch", func(c *Config) { c.Machine.Switches = map[string]bool{"aa": false} }, "machine.switches"},
		{"plugboard", func(c *Config) { c.Machine.Plugboard = "ABA" }, "machine.plugboard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := load("", []string{t.TempDir()})
			require.NoError(t, err)
			tt.mutate(cfg)
			_, err = cfg.Settings()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSettingsBadPlugboardFallsBackToIdentity(t *testing.T) {
	cfg, err := load("", []string{t.TempDir()})
	require.NoError(t, err)
	cfg.Machine.Plugboard = "ABAC"

	s, err := cfg.Settings()
	require.ErrorIs(t, err, cipher.ErrInvalidPlugboard)
	assert.True(t, s.Plugboard.IsIdentity())
	assert.Equal(t, cipher.Position(0), s.Start)
}

func TestSettingsSwitchSpellingsResolveTheSameWay(t *testing.T) {
	cfg, err := load("", []string{t.TempDir()})
	require.NoError(t, err)
	cfg.Machine.Switches = map[string]bool{"ab": true, "AB": false, "Ba": true}

	first, err := cfg.Settings()
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		s, err := cfg.Settings()
		require.NoError(t, err)
		assert.Equal(t, first.Switches.Closed("AB"), s.Switches.Closed("AB"))
	}
}
