package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/iksnae/cursor-chat-export/testutil"
)

func TestExportDBWritesOneFilePerSession(t *testing.T) {
	payload := testutil.ChatPayload(t,
		testutil.SessionRecord(t, "first", "hi", "hello"),
		testutil.SessionRecord(t, "second", "question"))
	dbPath := testutil.CreateStateDBWithPayload(t, t.TempDir(), payload)
	outDir := filepath.Join(t.TempDir(), "out")

	report, err := ExportDB(dbPath, outDir, &MarkdownExporter{}, Options{})
	if err != nil {
		t.Fatalf("ExportDB() error: %v", err)
	}

	if report.Sessions != 2 || len(report.Files) != 2 {
		t.Fatalf("report = %+v, want 2 sessions and 2 files", report)
	}
	if len(report.Failures) != 0 {
		t.Errorf("unexpected failures: %v", report.Failures)
	}

	for _, f := range report.Files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			t.Fatalf("reading %s: %v", f.Path, err)
		}
		if !strings.Contains(string(data), "# Session "+f.SessionID) {
			t.Errorf("%s should contain its session title, got:\n%s", f.Path, data)
		}
	}
}

func TestExportDBNoChatData(t *testing.T) {
	dbPath := testutil.CreateStateDB(t, t.TempDir())
	outDir := filepath.Join(t.TempDir(), "out")

	report, err := ExportDB(dbPath, outDir, &MarkdownExporter{}, Options{})
	if err != nil {
		t.Fatalf("ExportDB() should succeed for a database without chat data: %v", err)
	}
	if report.Sessions != 0 || len(report.Files) != 0 {
		t.Errorf("report = %+v, want zero sessions and zero files", report)
	}
}

func TestExportDBInvalidDatabase(t *testing.T) {
	dbPath := testutil.CreateCorruptDB(t, t.TempDir())

	_, err := ExportDB(dbPath, t.TempDir(), &MarkdownExporter{}, Options{})
	if err == nil {
		t.Fatal("ExportDB() should fail for an invalid database")
	}
}

func TestWriteSessionsDuplicateIDs(t *testing.T) {
	sessions := []internal.Session{
		{ID: "dup", Title: "a", Messages: []internal.Message{{Role: internal.RoleUser, Text: "one"}}},
		{ID: "dup", Title: "b", Messages: []internal.Message{{Role: internal.RoleUser, Text: "two"}}},
	}
	outDir := t.TempDir()

	report, err := WriteSessions(sessions, outDir, &MarkdownExporter{})
	if err != nil {
		t.Fatalf("WriteSessions() error: %v", err)
	}
	if len(report.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(report.Files))
	}

	if filepath.Base(report.Files[0].Path) != "dup.md" {
		t.Errorf("first file = %q, want dup.md", report.Files[0].Path)
	}
	if filepath.Base(report.Files[1].Path) != "dup-2.md" {
		t.Errorf("second file = %q, want dup-2.md (no silent overwrite)", report.Files[1].Path)
	}

	one, _ := os.ReadFile(report.Files[0].Path)
	two, _ := os.ReadFile(report.Files[1].Path)
	if string(one) == string(two) {
		t.Error("the two sessions should keep distinct contents")
	}
}

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"simple-id_1.2", "simple-id_1.2"},
		{"has/slashes\\and spaces", "has-slashes-and-spaces"},
		{"../../etc/passwd", "etc-passwd"},
		{"::", "session"},
		{"", "session"},
	}

	for _, tt := range tests {
		if got := SanitizeID(tt.id); got != tt.want {
			t.Errorf("SanitizeID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestSelectSessions(t *testing.T) {
	sessions := []internal.Session{
		{ID: "old", LastUpdated: time.UnixMilli(1000)},
		{ID: "newest", LastUpdated: time.UnixMilli(3000)},
		{ID: "mid", LastUpdated: time.UnixMilli(2000)},
	}

	latest := SelectSessions(sessions, Options{LatestOnly: true})
	if len(latest) != 1 || latest[0].ID != "newest" {
		t.Errorf("LatestOnly selected %+v, want newest", latest)
	}

	picked := SelectSessions(sessions, Options{TabIndexes: []int{3, 1, 9}})
	if len(picked) != 2 || picked[0].ID != "mid" || picked[1].ID != "old" {
		t.Errorf("TabIndexes selected %+v, want mid then old", picked)
	}

	all := SelectSessions(sessions, Options{})
	if len(all) != 3 {
		t.Errorf("no options should keep all %d sessions, got %d", 3, len(all))
	}
}
