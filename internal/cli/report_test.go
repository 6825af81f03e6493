package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfpga/slackline/internal/store"
)

func TestReportText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewReportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "single_clock.yaml")})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Final critical path: 2 ns")
	assert.Contains(t, output, "Fmax:")
	assert.Contains(t, output, "Setup Worst Negative Slack (sWNS): -0.5 ns")
	assert.Contains(t, output, "Setup slack histogram:")
	assert.Contains(t, output, "Hold slack histogram:")
}

func TestReportJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewReportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "single_clock.yaml")})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var payload reportPayload
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.Equal(t, "single_clock", payload.Name)
	require.NotNil(t, payload.CPDNs)
	assert.Equal(t, 2.0, *payload.CPDNs)
	require.NotNil(t, payload.FmaxMHz)
	assert.Equal(t, -0.5, payload.SWNSNs)
	assert.Equal(t, 0.0, payload.HWNSNs)
}

func TestReportMissingSnapshot(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewReportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "no_such.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "E_SNAPSHOT")
}

func TestReportBadBins(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewReportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "single_clock.yaml"), "--bins", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "E_ANALYSIS")
	assert.Contains(t, buf.String(), "ZERO_BINS")
}

func TestReportRecordsPass(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewReportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		filepath.Join("testdata", "single_clock.yaml"),
		"--record", dbPath,
		"--label", "baseline",
	})

	err := cmd.Execute()
	require.NoError(t, err)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	passes, err := st.ListPasses(context.Background())
	require.NoError(t, err)
	require.Len(t, passes, 1)
	assert.Equal(t, "baseline", passes[0].Label)
	assert.Equal(t, 2.0, passes[0].CPDNs)
	assert.Equal(t, -0.5, passes[0].SWNSNs)
}
