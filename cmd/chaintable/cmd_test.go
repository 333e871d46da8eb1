package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/theflywheel/chaintable/internal/roster"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeRoster(t *testing.T) string {
	t.Helper()

	r := roster.Roster{Students: []roster.Student{
		{Name: "Ivana", Grade: 2},
		{Name: "Ante", Grade: 2},
		{Name: "Jasna", Grade: 2},
		{Name: "Kristina", Grade: 5},
		{Name: "Ivana", Grade: 5},
	}}
	data, err := yaml.Marshal(&r)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestCapacityCmd(t *testing.T) {
	out, err := run(t, "capacity", "0", "3", "33", "4097")
	require.NoError(t, err)
	assert.Equal(t, "0 -> 1\n3 -> 4\n33 -> 64\n4097 -> 8192\n", out)

	_, err = run(t, "capacity", "-1")
	assert.ErrorContains(t, err, "size can not be less than zero")

	_, err = run(t, "capacity", "many")
	assert.ErrorContains(t, err, "not a number")
}

func TestRosterCmd(t *testing.T) {
	file := writeRoster(t)

	out, err := run(t, "roster", "--file", file, "--slots", "1", "--remove", "Kristina")
	require.NoError(t, err)
	assert.Equal(t, "size: 3\ncapacity: 1\n0) (Ivana : 5) -> (Ante : 2) -> (Jasna : 2)\n", out)
}

func TestRosterCmdConfig(t *testing.T) {
	file := writeRoster(t)
	config := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(config, []byte("slots: 3\nhash: xxh3\n"), 0644))

	out, err := run(t, "roster", "-f", file, "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "size: 4\ncapacity: 4\n")

	// Flags take precedence over the config file
	out, err = run(t, "roster", "-f", file, "--config", config, "--slots", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "capacity: 1\n")
}

func TestRosterCmdEnv(t *testing.T) {
	file := writeRoster(t)
	t.Setenv("CHAINTABLE_SLOTS", "5")

	out, err := run(t, "roster", "-f", file)
	require.NoError(t, err)
	assert.Contains(t, out, "capacity: 8\n")
}

func TestRosterCmdErrors(t *testing.T) {
	file := writeRoster(t)

	_, err := run(t, "roster", "-f", file, "--slots", "-2")
	assert.ErrorContains(t, err, "size can not be less than zero")

	_, err = run(t, "roster", "-f", file, "--hash", "crc32")
	assert.ErrorContains(t, err, "unknown hash algorithm")

	_, err = run(t, "roster", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read roster")

	_, err = run(t, "--log-level", "loud", "capacity", "2")
	assert.ErrorContains(t, err, "unknown level string")
}
