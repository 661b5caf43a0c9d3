package main

import (
	"os"
	"testing"

	"bookshelf/internal/testutil"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMigrations_ParsesMigrationsDir(t *testing.T) {
	migrations, err := goose.CollectMigrations(testutil.MigrationsDir(), 0, goose.MaxVersion)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i, m := range migrations {
		assert.Equal(t, int64(i+1), m.Version, "migration versions must be contiguous")
	}
}

func TestMigrations_CreateEveryTable(t *testing.T) {
	entries, err := os.ReadDir(testutil.MigrationsDir())
	require.NoError(t, err)

	var all string
	for _, e := range entries {
		b, err := os.ReadFile(testutil.MigrationsDir() + "/" + e.Name())
		require.NoError(t, err)
		all += string(b)
	}

	for _, table := range []string{"users", "books", "shelf_entries", "discussions", "discussion_replies"} {
		assert.Contains(t, all, "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
}
