// Package report writes the outcome of a bombe run as a YAML document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"gopkg.in/yaml.v3"

	"github.com/neur0map/tinybombe/internal/menu"
	"github.com/neur0map/tinybombe/internal/scanner"
)

// Report is the on-disk record of one run.
type Report struct {
	ID          string    `yaml:"id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Machine     Machine   `yaml:"machine"`
	Menu        []string  `yaml:"menu"`
	Run         Run       `yaml:"run"`
	Stops       []Stop    `yaml:"stops"`
	Host        *Host     `yaml:"host,omitempty"`
}

type Machine struct {
	Crib          string   `yaml:"crib"`
	Ciphertext    string   `yaml:"ciphertext"`
	Start         string   `yaml:"start"`
	Plugboard     string   `yaml:"plugboard"`
	Source        string   `yaml:"source"`
	SourceEnabled bool     `yaml:"source_enabled"`
	DiagonalBoard bool     `yaml:"diagonal_board"`
	OpenSwitches  []string `yaml:"open_switches,omitempty"`
}

type Run struct {
	Steps     int           `yaml:"steps"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Completed bool          `yaml:"completed"`
	Paused    bool          `yaml:"paused,omitempty"`
	Cancelled bool          `yaml:"cancelled,omitempty"`
}

// Stop is one candidate, with the plaintext the ciphertext reads as there
// under the run's plugboard guess.
type Stop struct {
	Window    string `yaml:"window"`
	Position  int    `yaml:"position"`
	HotCount  int    `yaml:"hot_count"`
	HotWires  string `yaml:"hot_wires"`
	Plaintext string `yaml:"plaintext,omitempty"`
}

// Host describes the machine that ran the sweep.
type Host struct {
	Hostname string `yaml:"hostname,omitempty"`
	OS       string `yaml:"os"`
	Platform string `yaml:"platform,omitempty"`
	CPUs     int    `yaml:"cpus"`
	MemoryMB uint64 `yaml:"memory_mb,omitempty"`
}

// ProbeHost collects host details, skipping whatever the platform will not
// report.
func ProbeHost() *Host {
	h := &Host{OS: runtime.GOOS, CPUs: runtime.NumCPU()}
	if info, err := host.Info(); err == nil {
		h.Hostname = info.Hostname
		h.Platform = info.Platform
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		h.CPUs = n
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		h.MemoryMB = vm.Total / (1024 * 1024)
	}
	return h
}

// New assembles a report. decrypt, when non-nil, reads the ciphertext at a
// stop position.
func New(m Machine, links menu.Menu, res scanner.Result, decrypt func(scanner.Stop) string) *Report {
	r := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Machine:     m,
		Run: Run{
			Steps:     res.Steps,
			Elapsed:   res.Elapsed,
			Completed: res.Completed,
			Paused:    res.Paused,
			Cancelled: res.Cancelled,
		},
	}
	for _, l := range links {
		r.Menu = append(r.Menu, l.String())
	}
	for _, st := range res.Stops {
		wires := make([]byte, len(st.HotWires))
		for i, w := range st.HotWires {
			wires[i] = w.WireLetter()
		}
		s := Stop{
			Window:   st.Window(),
			Position: int(st.Position),
			HotCount: st.HotCount,
			HotWires: string(wires),
		}
		if decrypt != nil {
			s.Plaintext = decrypt(st)
		}
		r.Stops = append(r.Stops, s)
	}
	return r
}

// Write stores the report under dir with a timestamped name and returns the
// file path.
func (r *Report) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	name := fmt.Sprintf("tinybombe-%s-%s-%s.yaml", r.Machine.Start, r.GeneratedAt.Format("20060102-150405"), r.shortID())
	path := filepath.Join(dir, name)

	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// shortID keeps file names distinct for runs started in the same second
func (r *Report) shortID() string {
	if r.ID == "" {
		return fmt.Sprintf("%09d", r.GeneratedAt.Nanosecond())
	}
	if len(r.ID) > 8 {
		return r.ID[:8]
	}
	return r.ID
}

// Read loads a report written by Write.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", path, err)
	}
	return &r, nil
}
