package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/config"
	"github.com/neur0map/tinybombe/internal/menu"
	"github.com/neur0map/tinybombe/internal/report"
)

const beachheadPlain = "ACEDGBEACHHEADGAGBADGBEADEDGBEACHBABEGFEDGDAD"

func beachheadCipher(t *testing.T) string {
	t.Helper()
	start, err := cipher.ParseWindow("CAA")
	require.NoError(t, err)
	enc := cipher.NewScrambler(start, cipher.Identity())
	require.NoError(t, enc.SetPlugboard("EA DG"))
	out, err := enc.EncryptText(beachheadPlain)
	require.NoError(t, err)
	return out
}

// run executes the command tree against an empty config file
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runWithConfig(t, "output:\n  log_level: info\n", args...)
}

func runWithConfig(t *testing.T, yamlText string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("TINYBOMBE_PLAIN", "1")

	cfgFile := filepath.Join(t.TempDir(), "tinybombe.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(yamlText), 0o644))

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgFile}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestTableRow(t *testing.T) {
	out, _, err := run(t, "table", "AAA")
	require.NoError(t, err)
	assert.Equal(t, "AAA FEDCBAHG\n", out)
}

func TestTableAll(t *testing.T) {
	out, _, err := run(t, "table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, cipher.Positions)
	assert.Equal(t, "AAA FEDCBAHG", lines[0])
	assert.Equal(t, "HHH HEFGBCDA", lines[cipher.Positions-1])
}

func TestTableVerify(t *testing.T) {
	out, _, err := run(t, "table", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "512 rows")
}

func TestTableBadWindow(t *testing.T) {
	_, _, err := run(t, "table", "AAZ")
	assert.ErrorIs(t, err, cipher.ErrInvalidWindow)
}

func TestEncryptRoundTrip(t *testing.T) {
	enc, _, err := run(t, "encrypt", "-w", "CAA", "-p", "EA DG", "BEACHHEAD")
	require.NoError(t, err)
	enc = strings.TrimSpace(enc)
	assert.Len(t, enc, len("BEACHHEAD"))
	assert.NotEqual(t, "BEACHHEAD", enc)

	dec, _, err := run(t, "decrypt", "-w", "CAA", "-p", "EA DG", enc)
	require.NoError(t, err)
	assert.Equal(t, "BEACHHEAD\n", dec)
}

func TestEncryptJoinsWords(t *testing.T) {
	enc, _, err := run(t, "encrypt", "-w", "CAA", "A", "BED")
	require.NoError(t, err)

	dec, _, err := run(t, "decrypt", "-w", "CAA", "--readable", strings.TrimSpace(enc))
	require.NoError(t, err)
	assert.Equal(t, "A BED\n", dec)
}

func TestEncryptRejectsForeignLetters(t *testing.T) {
	_, _, err := run(t, "encrypt", "XYZ")
	assert.ErrorIs(t, err, cipher.ErrInvalidSymbol)
}

func TestScanFindsBeachhead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	out, _, err := run(t, "scan",
		"--crib", "     BEACHHEAD",
		"--ciphertext", beachheadCipher(t),
		"--source", "Ea",
		"--report", "--report-dir", dir,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "CAA")
	assert.Contains(t, out, "in 512 steps")
	assert.Contains(t, out, "end of cycle")

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	r, err := report.Read(files[0])
	require.NoError(t, err)
	assert.True(t, r.Run.Completed)
	assert.Equal(t, "E.a", r.Machine.Source)

	var windows []string
	for _, st := range r.Stops {
		windows = append(windows, st.Window)
	}
	assert.Contains(t, windows, "CAA")
}

func TestScanHaltOnStopCoversWholeCycle(t *testing.T) {
	out, _, err := run(t, "scan",
		"--crib", "     BEACHHEAD",
		"--ciphertext", beachheadCipher(t),
		"--source", "Ea",
		"--halt-on-stop",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "CAA")
	assert.Contains(t, out, "in 512 steps")
	assert.Contains(t, out, "end of cycle")
}

func TestScanSingle(t *testing.T) {
	out, _, err := run(t, "scan",
		"--crib", "     BEACHHEAD",
		"--ciphertext", beachheadCipher(t),
		"--source", "Ea",
		"--window", "CAA",
		"--single",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "1 stops in 1 steps")
}

func TestScanInvalidCrib(t *testing.T) {
	_, _, err := run(t, "scan", "--crib", "AB", "--ciphertext", "AC")
	assert.ErrorIs(t, err, menu.ErrInvalidCrib)

	_, _, err = run(t, "scan")
	assert.ErrorIs(t, err, menu.ErrInvalidCrib)
}

func TestScanBadWindow(t *testing.T) {
	_, _, err := run(t, "scan", "--crib", "AB", "--ciphertext", "BA", "--window", "ZZZ")
	assert.ErrorIs(t, err, cipher.ErrInvalidWindow)
}

func TestWatchFallsBackToPlainScan(t *testing.T) {
	out, errOut, err := run(t, "watch",
		"--crib", "     BEACHHEAD",
		"--ciphertext", beachheadCipher(t),
		"--source", "Ea",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "end of cycle")
	assert.Contains(t, errOut, "plain scan")
}

func TestStepAtTrueSetting(t *testing.T) {
	out, _, err := run(t, "step", "CAA",
		"--crib", "     BEACHHEAD",
		"--ciphertext", beachheadCipher(t),
		"--source", "Ea",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "window CAA")
	assert.Contains(t, out, "1 hot on bus E: stop")
	assert.Contains(t, out, "reads as")
}

func TestBadPlugboardFallsBackToNoPlugs(t *testing.T) {
	out, errOut, err := run(t, "encrypt", "-w", "CAA", "-p", "AB AC", "BEACHHEAD")
	require.NoError(t, err)
	assert.Contains(t, errOut, "ignoring plugboard guess")

	plain, _, err := run(t, "encrypt", "-w", "CAA", "BEACHHEAD")
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestUnknownLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "table", "AAA")
	assert.Error(t, err)
}

func TestPuzzleIsSeeded(t *testing.T) {
	first, _, err := run(t, "puzzle", "--seed", "7", "--hint")
	require.NoError(t, err)
	second, _, err := run(t, "puzzle", "--seed", "7", "--hint")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "ciphertext")
	assert.Contains(t, first, "wheels=")
}

func TestPuzzleWritesScannableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.yaml")
	_, _, err := run(t, "puzzle", "--seed", "3", "-o", path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Contains(t, s.Crib, "BEACHHEAD")
	assert.NotEmpty(t, s.Ciphertext)

	_, err = menu.Build(s.Crib, s.Ciphertext)
	assert.NoError(t, err)
}

func TestOpenFlagOverridesConfigSwitches(t *testing.T) {
	const cfg = `machine:
  switches:
    AB: true
    CE: false
`
	cipherText := beachheadCipher(t)
	for i := 0; i < 10; i++ {
		dir := filepath.Join(t.TempDir(), "reports")
		_, _, err := runWithConfig(t, cfg,
			"--open", "AB",
			"scan", "--single", "--report", "--report-dir", dir,
			"--crib", "     BEACHHEAD",
			"--ciphertext", cipherText,
		)
		require.NoError(t, err)

		files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
		require.NoError(t, err)
		require.Len(t, files, 1)
		r, err := report.Read(files[0])
		require.NoError(t, err)
		assert.Equal(t, []string{"AB", "CE"}, r.Machine.OpenSwitches, "run %d", i)
	}
}

func TestOpenSwitchReplacesEverySpelling(t *testing.T) {
	sw := map[string]bool{"ab": true, "Ba": true, "cd": true}
	require.NoError(t, openSwitch(sw, "ba"))
	assert.Equal(t, map[string]bool{"AB": false, "cd": true}, sw)

	assert.Error(t, openSwitch(sw, "AZ"))
}

func TestOpenFlagRejectsBadName(t *testing.T) {
	_, _, err := run(t, "--open", "AA", "table", "AAA")
	assert.Error(t, err)
}
