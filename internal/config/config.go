package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/menu"
	"github.com/neur0map/tinybombe/internal/network"
	"github.com/neur0map/tinybombe/internal/scanner"
)

const (
	configName = "tinybombe"
	envPrefix  = "TINYBOMBE"
)

// Config represents the complete application configuration
type Config struct {
	Machine MachineConfig `mapstructure:"machine"`
	Scan    ScanConfig    `mapstructure:"scan"`
	Output  OutputConfig  `mapstructure:"output"`
	UI      UIConfig      `mapstructure:"ui"`

	// File is the config file that was read, empty when running on defaults.
	File string `mapstructure:"-"`
}

// MachineConfig describes how the bombe is set up for a run.
type MachineConfig struct {
	Crib          string          `mapstructure:"crib"`
	Ciphertext    string          `mapstructure:"ciphertext"`
	Window        string          `mapstructure:"window"`
	Plugboard     string          `mapstructure:"plugboard"`
	DiagonalBoard bool            `mapstructure:"diagonal_board"`
	Switches      map[string]bool `mapstructure:"switches"`
	Source        SourceConfig    `mapstructure:"source"`
}

// SourceConfig places the test voltage, e.g. wire "Ec" is the hypothesis
// "E is steckered to c".
type SourceConfig struct {
	Wire    string `mapstructure:"wire"`
	Enabled bool   `mapstructure:"enabled"`
}

type ScanConfig struct {
	FreeRunning bool `mapstructure:"free_running"`
	HaltOnStop  bool `mapstructure:"halt_on_stop"`
}

// OutputConfig controls logging and reports.
type OutputConfig struct {
	LogLevel         string `mapstructure:"log_level"`
	Timestamp        bool   `mapstructure:"timestamp"`
	ReportDir        string `mapstructure:"report_dir"`
	WriteReport      bool   `mapstructure:"write_report"`
	ReplaceSeparator bool   `mapstructure:"replace_separator"` // show G as a space in recovered text
}

type UIConfig struct {
	StepDelayMs int               `mapstructure:"step_delay_ms"`
	AltScreen   bool              `mapstructure:"alt_screen"`
	Colors      map[string]string `mapstructure:"colors"`
}

// Load reads the configuration. An explicit path must exist; otherwise
// tinybombe.yaml is searched for in the usual places and a missing file
// simply means defaults. Environment variables such as
// TINYBOMBE_MACHINE_WINDOW override file values.
func Load(path string) (*Config, error) {
	return load(path, searchPaths())
}

func load(path string, dirs []string) (*Config, error) {
	v := viper.New()
	setMachineDefaults(v)
	setScanDefaults(v)
	setOutputDefaults(v)
	setUIDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

// searchPaths lists where tinybombe.yaml is looked for, most specific first
func searchPaths() []string {
	paths := []string{".", "configs"}

	if execPath, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(execPath), "configs"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".tinybombe"))
	}
	return append(paths, "/etc/tinybombe")
}

func setMachineDefaults(v *viper.Viper) {
	v.SetDefault("machine.crib", "")
	v.SetDefault("machine.ciphertext", "")
	v.SetDefault("machine.window", "AAA")
	v.SetDefault("machine.plugboard", "")
	v.SetDefault("machine.diagonal_board", true)
	v.SetDefault("machine.source.wire", "Ec")
	v.SetDefault("machine.source.enabled", true)
}

func setScanDefaults(v *viper.Viper) {
	v.SetDefault("scan.free_running", true)
	v.SetDefault("scan.halt_on_stop", false)
}

func setOutputDefaults(v *viper.Viper) {
	v.SetDefault("output.log_level", "info")
	v.SetDefault("output.timestamp", false)
	v.SetDefault("output.report_dir", "./reports")
	v.SetDefault("output.write_report", false)
	v.SetDefault("output.replace_separator", true)
}

func setUIDefaults(v *viper.Viper) {
	v.SetDefault("ui.step_delay_ms", 20)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.colors", map[string]string{
		"hot":    "#EF4444",
		"cold":   "#3B82F6",
		"stop":   "#D946EF",
		"end":    "#F59E0B",
		"accent": "#7D56F4",
	})
}

// Settings are the machine settings in typed form.
type Settings struct {
	Crib          string
	Ciphertext    string
	Start         cipher.Position
	Plugboard     cipher.Plugboard
	DiagonalBoard bool
	Switches      network.Switches
	Source        scanner.Source
}

// Settings validates the machine section. An invalid plugboard is reported
// as an error, the caller decides whether to carry on with no plugs.
func (c *Config) Settings() (Settings, error) {
	m := c.Machine
	s := Settings{
		Crib:          menu.NormalizeCrib(m.Crib),
		Ciphertext:    strings.ToUpper(strings.TrimSpace(m.Ciphertext)),
		DiagonalBoard: m.DiagonalBoard,
		Switches:      network.NewSwitches(),
	}

	start, err := cipher.ParseWindow(strings.TrimSpace(m.Window))
	if err != nil {
		return s, fmt.Errorf("machine.window: %w", err)
	}
	s.Start = start

	node, err := network.ParseNode(strings.TrimSpace(m.Source.Wire))
	if err != nil {
		return s, fmt.Errorf("machine.source.wire: %w", err)
	}
	s.Source = scanner.Source{Node: node, Enabled: m.Source.Enabled}

	// sorted so a map holding two spellings of one switch resolves the same way every run
	for _, name := range slices.Sorted(maps.Keys(m.Switches)) {
		if err := s.Switches.Set(name, m.Switches[name]); err != nil {
			return s, fmt.Errorf("machine.switches: %w", err)
		}
	}

	plug, err := cipher.ParsePlugboard(m.Plugboard)
	s.Plugboard = plug
	if err != nil {
		return s, fmt.Errorf("machine.plugboard: %w", err)
	}
	return s, nil
}
