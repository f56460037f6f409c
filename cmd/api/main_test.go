package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand_SQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(dir, "cli.db"))
	t.Setenv("LOGGER_LEVEL", "error")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"migrate", "--env-file", filepath.Join(dir, "missing.env")})
	require.NoError(t, cmd.Execute())

	// running it twice is harmless
	cmd = newRootCommand()
	cmd.SetArgs([]string{"migrate", "--env-file", filepath.Join(dir, "missing.env")})
	require.NoError(t, cmd.Execute())
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()
	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)

	cmd.SetArgs([]string{"frobnicate"})
	assert.Error(t, cmd.Execute())
}
