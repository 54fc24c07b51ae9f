package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/cursor-chat-export/testutil"
)

func TestExportCommand(t *testing.T) {
	payload := testutil.ChatPayload(t,
		testutil.SessionRecord(t, "abc", "hi", "hello"))
	dbPath := testutil.CreateStateDBWithPayload(t, t.TempDir(), payload)
	outDir := filepath.Join(t.TempDir(), "out")

	if err := runCommand(t, "export", "--output-dir", outDir, dbPath); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "abc.md")); err != nil {
		t.Errorf("expected abc.md to exist: %v", err)
	}
}

func TestExportCommandEmptyDatabase(t *testing.T) {
	dbPath := testutil.CreateStateDB(t, t.TempDir())
	outDir := filepath.Join(t.TempDir(), "out")

	// An openable database without chat data exports zero files, exit 0.
	if err := runCommand(t, "export", "--output-dir", outDir, dbPath); err != nil {
		t.Fatalf("export of an empty database should succeed: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("output dir should still be created: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d files, want none", len(entries))
	}
}

func TestExportCommandInvalidDatabase(t *testing.T) {
	dbPath := testutil.CreateCorruptDB(t, t.TempDir())

	err := runCommand(t, "export", "--output-dir", filepath.Join(t.TempDir(), "out"), dbPath)
	if err == nil {
		t.Fatal("export should fail for an invalid database path")
	}
}

func TestExportAllCommand(t *testing.T) {
	root := t.TempDir()
	testutil.CreateStateDBWithPayload(t, filepath.Join(root, "ws1"),
		testutil.ChatPayload(t, testutil.SessionRecord(t, "s1", "hi")))
	testutil.CreateStateDBWithPayload(t, filepath.Join(root, "ws2"),
		testutil.ChatPayload(t, testutil.SessionRecord(t, "s2", "hey")))
	outDir := filepath.Join(t.TempDir(), "out")

	if err := runCommand(t, "export-all", "--output-dir", outDir, root); err != nil {
		t.Fatalf("export-all failed: %v", err)
	}

	for _, want := range []string{filepath.Join("ws1", "s1.md"), filepath.Join("ws2", "s2.md")} {
		if _, err := os.Stat(filepath.Join(outDir, want)); err != nil {
			t.Errorf("expected %s to exist: %v", want, err)
		}
	}
}
