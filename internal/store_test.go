package internal

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/cursor-chat-export/testutil"
)

func TestOpenStoreMissingFile(t *testing.T) {
	_, err := OpenStore(filepath.Join(t.TempDir(), "does-not-exist.vscdb"))
	if err == nil {
		t.Fatal("OpenStore() should fail for a missing file")
	}
	if !IsStoreError(err) {
		t.Errorf("error should be a StoreError, got %T: %v", err, err)
	}
}

func TestReadChatPayloadPresent(t *testing.T) {
	dbPath := testutil.CreateStateDBWithPayload(t, t.TempDir(), testutil.SimpleChatPayload)

	store, err := OpenStore(dbPath)
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	defer store.Close()

	raw, present, err := store.ReadChatPayload()
	if err != nil {
		t.Fatalf("ReadChatPayload() error: %v", err)
	}
	if !present {
		t.Fatal("ReadChatPayload() should find the stored row")
	}
	if string(raw) != testutil.SimpleChatPayload {
		t.Errorf("payload = %q, want %q", raw, testutil.SimpleChatPayload)
	}
}

func TestReadChatPayloadLegacyKey(t *testing.T) {
	dbPath := testutil.CreateStateDB(t, t.TempDir())
	testutil.InsertRow(t, dbPath, "workbench.panel.aichat.view.aichat.chatData", `{"tabs":[]}`)

	store, err := OpenStore(dbPath)
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	defer store.Close()

	_, present, err := store.ReadChatPayload()
	if err != nil {
		t.Fatalf("ReadChatPayload() error: %v", err)
	}
	if !present {
		t.Error("legacy key should be found by the candidate lookup")
	}
}

func TestReadChatPayloadAbsent(t *testing.T) {
	dbPath := testutil.CreateStateDB(t, t.TempDir())
	testutil.InsertRow(t, dbPath, "some.other.key", "value")

	store, err := OpenStore(dbPath)
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	defer store.Close()

	raw, present, err := store.ReadChatPayload()
	if err != nil {
		t.Fatalf("ReadChatPayload() should not error when the key is absent: %v", err)
	}
	if present || raw != nil {
		t.Error("ReadChatPayload() should report absent for a database without chat data")
	}
}

func TestReadChatPayloadCorruptStore(t *testing.T) {
	dbPath := testutil.CreateCorruptDB(t, t.TempDir())

	store, err := OpenStore(dbPath)
	if err != nil {
		// Some driver versions reject the file at open, which is fine.
		if !IsStoreError(err) {
			t.Errorf("error should be a StoreError, got %T: %v", err, err)
		}
		return
	}
	defer store.Close()

	_, _, err = store.ReadChatPayload()
	if err == nil {
		t.Fatal("ReadChatPayload() should fail for a corrupt database")
	}
	if !IsStoreError(err) {
		t.Errorf("error should be a StoreError, got %T: %v", err, err)
	}
}
