package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCLIZones(t *testing.T) {
	out, _, err := runCLI(t, "--timezone", "America/Denver", "2013-02-01 00:00:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Parsed, and Output as %v")
	assert.Contains(t, out, "America/Denver")
	assert.Contains(t, out, "2013-02-01 00:00:00 -0700 MST")
	assert.Contains(t, out, "2013-02-01 00:00:00 +0000 UTC")
}

func TestCLIFuzzy(t *testing.T) {
	out, _, err := runCLI(t, "--fuzzy", "Today is 25 January 2023, a sunny day")
	require.NoError(t, err)
	assert.Contains(t, out, "Skipped")
	assert.Contains(t, out, "Today is | , a sunny day")
	assert.Contains(t, out, "2023-01-25 00:00:00 +0000 UTC")
}

func TestCLIFailures(t *testing.T) {
	out, errOut, err := runCLI(t, "2014-04-26", "not a date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 inputs")
	assert.Contains(t, out, "2014-04-26 00:00:00 +0000 UTC")
	assert.Contains(t, errOut, "skipping input")

	_, _, err = runCLI(t)
	assert.Error(t, err)

	_, _, err = runCLI(t, "--timezone", "Mars/Olympus_Mons", "2014-04-26")
	assert.Error(t, err)

	_, _, err = runCLI(t, "--weekday", "sideways", "Tuesday")
	assert.Error(t, err)
}

func TestCLIFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dtparse.toml")
	require.NoError(t, os.WriteFile(path, []byte("dayfirst = true\n"), 0o600))

	out, _, err := runCLI(t, "--config", path, "01/02/2006")
	require.NoError(t, err)
	assert.Contains(t, out, "2006-02-01 00:00:00 +0000 UTC")

	out, _, err = runCLI(t, "--config", path, "--dayfirst=false", "01/02/2006")
	require.NoError(t, err)
	assert.Contains(t, out, "2006-01-02 00:00:00 +0000 UTC")
}

func TestCLIJSON(t *testing.T) {
	out, _, err := runCLI(t, "--json", "--fuzzy", "--timezone", "UTC", "Today is 25 January 2023, a sunny day")
	require.NoError(t, err)

	var rows []struct {
		Input   string    `json:"input"`
		Zone    string    `json:"zone"`
		Time    time.Time `json:"time"`
		HasZone bool      `json:"has_zone"`
		Skipped []struct {
			Start int    `json:"start"`
			End   int    `json:"end"`
			Text  string `json:"text"`
		} `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	last := rows[2]
	assert.Equal(t, "UTC", last.Zone)
	assert.False(t, last.HasZone)
	assert.Equal(t, "2023-01-25T00:00:00Z", last.Time.Format(time.RFC3339))
	require.Len(t, last.Skipped, 2)
	assert.Equal(t, "Today is", last.Skipped[0].Text)
	assert.Equal(t, 24, last.Skipped[1].Start)
}
