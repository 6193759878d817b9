package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// Каждый файл миграции идет в своей транзакции: упавший файл откатывается
// целиком, применённые до него файлы остаются.
func TestApplyMigrationsRollsBackFailedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_init.sql"),
		[]byte("CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT);\nINSERT INTO notes (body) VALUES ('first');"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_broken.sql"),
		[]byte("INSERT INTO notes (body) VALUES ('second');\nINSERT INTO missing_table VALUES (1);"), 0o600))

	db, err := sqlx.Connect("sqlite", filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer db.Close()

	applyMigrations(db, filepath.Join(dir, "0*.sql"))

	var bodies []string
	require.NoError(t, db.Select(&bodies, "SELECT body FROM notes ORDER BY id"))
	assert.Equal(t, []string{"first"}, bodies)
}
