package internal

import (
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"
)

// chatDataKeys are the ItemTable keys the editor has stored chat data
// under, in priority order. The set is versioned configuration observed
// from real database captures, not a documented contract.
var chatDataKeys = []string{
	"workbench.panel.aichat.view.aichat.chatdata",
	"workbench.panel.aichat.view.aichat.chatData",
}

// Store is a read-only handle on one workspace state database.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens a workspace state database in read-only mode and
// verifies it is usable. Returns a StoreError when the path is not a
// valid SQLite store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, &StoreError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Path: path, Op: "open", Err: err}
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ReadChatPayload performs a point lookup for the chat-data row, trying
// each known key until one is present. A database without any of the keys
// simply has no chat history yet: that is reported as absent, not as an
// error.
func (s *Store) ReadChatPayload() ([]byte, bool, error) {
	for _, key := range chatDataKeys {
		var value []byte
		err := s.db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", key).Scan(&value)
		switch {
		case err == nil:
			return value, true, nil
		case errors.Is(err, sql.ErrNoRows):
			continue
		default:
			// Missing ItemTable or a corrupt file surfaces here.
			return nil, false, &StoreError{Path: s.path, Op: "query", Err: err}
		}
	}
	return nil, false, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
