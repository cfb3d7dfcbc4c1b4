package project_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/sqlfront/sqlfront/pkg/project"
	"github.com/stretchr/testify/require"
)

func TestProjectInitialize(t *testing.T) {
	t.Parallel()

	t.Run("scaffolds a fresh directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := New(dir)
		require.NoError(t, p.Initialize(InitOptions{}))

		require.FileExists(t, filepath.Join(dir, ConfigFile))
		require.FileExists(t, filepath.Join(dir, "db", "schema.sql"))

		cfg := p.Config()
		require.NotNil(t, cfg)
		require.Equal(t, DefaultEntrypoint, cfg.Entrypoint)
		require.Equal(t, DefaultIndentSize, cfg.Formatter.IndentSize)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		schemaPath := filepath.Join(dir, "db", "schema.sql")

		p := New(dir)
		require.NoError(t, p.Initialize(InitOptions{}))
		require.NoError(t, os.WriteFile(schemaPath, []byte("CREATE SCHEMA custom;\n"), 0o644))

		require.NoError(t, New(dir).Initialize(InitOptions{}))

		content, err := os.ReadFile(schemaPath)
		require.NoError(t, err)
		require.Equal(t, "CREATE SCHEMA custom;\n", string(content))
	})

	t.Run("custom indent is written back", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := New(dir)
		require.NoError(t, p.Initialize(InitOptions{IndentSize: 2}))
		require.Equal(t, 2, p.Config().Formatter.IndentSize)

		// A fresh load of the config sees the persisted override.
		reloaded := New(dir)
		require.NoError(t, reloaded.Initialize(InitOptions{}))
		require.Equal(t, 2, reloaded.Config().Formatter.IndentSize)
	})

	t.Run("missing root directory", func(t *testing.T) {
		t.Parallel()

		err := New(filepath.Join(t.TempDir(), "missing")).Initialize(InitOptions{})
		require.Error(t, err)
	})
}

func TestProjectParseSchema(t *testing.T) {
	t.Parallel()

	t.Run("parses the entrypoint", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := New(dir)
		require.NoError(t, p.Initialize(InitOptions{}))

		sql, err := p.ParseSchema()
		require.NoError(t, err)
		require.Len(t, sql.Statements, 2)
		require.NotNil(t, sql.Statements[0].CreateSchema)
		require.NotNil(t, sql.Statements[1].CreateTable)
	})

	t.Run("requires initialization", func(t *testing.T) {
		t.Parallel()

		_, err := New(t.TempDir()).ParseSchema()
		require.Error(t, err)
	})
}
