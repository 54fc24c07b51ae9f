package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// ChatDataKey is the current ItemTable key the editor stores chat data under.
const ChatDataKey = "workbench.panel.aichat.view.aichat.chatdata"

// CreateStateDB creates a workspace state database at dir/state.vscdb with
// an empty ItemTable, returning its path.
func CreateStateDB(t *testing.T, dir string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create workspace directory: %v", err)
	}

	dbPath := filepath.Join(dir, "state.vscdb")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS ItemTable (
		key TEXT PRIMARY KEY,
		value BLOB
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create ItemTable: %v", err)
	}

	return dbPath
}

// CreateStateDBWithPayload creates a state database whose chat-data row
// holds the given payload, stored under the current key.
func CreateStateDBWithPayload(t *testing.T, dir, payload string) string {
	t.Helper()
	dbPath := CreateStateDB(t, dir)
	InsertRow(t, dbPath, ChatDataKey, payload)
	return dbPath
}

// InsertRow inserts one key/value row into an existing state database.
func InsertRow(t *testing.T, dbPath, key, value string) {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec("INSERT OR REPLACE INTO ItemTable (key, value) VALUES (?, ?)", key, []byte(value)); err != nil {
		t.Fatalf("Failed to insert row: %v", err)
	}
}

// CreateCorruptDB writes a file that is not a valid SQLite database.
func CreateCorruptDB(t *testing.T, dir string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create workspace directory: %v", err)
	}

	dbPath := filepath.Join(dir, "state.vscdb")
	if err := os.WriteFile(dbPath, []byte("this is not a sqlite database"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt database: %v", err)
	}
	return dbPath
}
