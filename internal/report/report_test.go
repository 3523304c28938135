package report

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neur0map/tinybombe/internal/cipher"
	"github.com/neur0map/tinybombe/internal/menu"
	"github.com/neur0map/tinybombe/internal/scanner"
)

func sampleResult() scanner.Result {
	return scanner.Result{
		Steps:     512,
		Elapsed:   42 * time.Millisecond,
		Completed: true,
		Stops: []scanner.Stop{
			{Position: 128, HotCount: 1, HotWires: []cipher.Symbol{0}},
			{Position: 300, HotCount: 7, HotWires: []cipher.Symbol{0, 1, 2, 3, 4, 5, 7}},
		},
	}
}

func TestNewReport(t *testing.T) {
	links, err := menu.Build("AB", "CD")
	require.NoError(t, err)

	r := New(Machine{Start: "AAA", Source: "E.a"}, links, sampleResult(), func(st scanner.Stop) string {
		return "AT-" + st.Window()
	})

	assert.Equal(t, []string{"A-C(+0)", "B-D(+1)"}, r.Menu)
	require.Len(t, r.Stops, 2)
	assert.Equal(t, Stop{Window: "CAA", Position: 128, HotCount: 1, HotWires: "a", Plaintext: "AT-CAA"}, r.Stops[0])
	assert.Equal(t, "abcdefh", r.Stops[1].HotWires)
	assert.True(t, r.Run.Completed)
	assert.Nil(t, r.Host)
	assert.Len(t, r.ID, 36)
}

func TestWriteAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	r := New(Machine{Crib: "BEACHHEAD", Start: "AAA", OpenSwitches: []string{"AB"}}, nil, sampleResult(), nil)
	r.Host = &Host{OS: "linux", CPUs: 4}

	path, err := r.Write(dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "tinybombe-AAA-"))

	back, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, r.ID, back.ID)
	assert.Equal(t, r.Machine, back.Machine)
	assert.Equal(t, r.Stops, back.Stops)
	assert.Equal(t, r.Run, back.Run)
	assert.Equal(t, r.Host, back.Host)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProbeHost(t *testing.T) {
	h := ProbeHost()
	require.NotNil(t, h)
	assert.NotEmpty(t, h.OS)
	assert.Positive(t, h.CPUs)
}

func TestWriteSameSecondKeepsBothReports(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	first := New(Machine{Start: "AAA"}, nil, sampleResult(), nil)
	second := New(Machine{Start: "AAA"}, nil, sampleResult(), nil)
	first.GeneratedAt, second.GeneratedAt = at, at

	p1, err := first.Write(dir)
	require.NoError(t, err)
	p2, err := second.Write(dir)
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
