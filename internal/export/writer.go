package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/cursor-chat-export/internal"
)

// WrittenFile describes one rendered session written to disk.
type WrittenFile struct {
	SessionID string
	Path      string
}

// Report summarizes one export run. Write failures are counted, not
// fatal: the remaining sessions are still written.
type Report struct {
	Sessions int
	Files    []WrittenFile
	Failures []error
}

// Options selects which sessions of a database get exported.
type Options struct {
	LatestOnly bool  // only the most recently updated session
	TabIndexes []int // 1-based positions in the stored session list
}

// ExportDB extracts the chat sessions of one workspace database and
// writes one file per session under outputDir, creating it if needed.
// A valid database with no chat data exports zero files and succeeds.
func ExportDB(dbPath, outputDir string, exp Exporter, opts Options) (Report, error) {
	src, err := internal.LoadSource(dbPath)
	if err != nil {
		return Report{}, err
	}

	sessions := SelectSessions(src.Sessions, opts)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	return WriteSessions(sessions, outputDir, exp)
}

// SelectSessions applies the latest-only / tab-index filters.
func SelectSessions(sessions []internal.Session, opts Options) []internal.Session {
	if opts.LatestOnly && len(sessions) > 0 {
		latest := sessions[0]
		for _, s := range sessions[1:] {
			if s.LastUpdated.After(latest.LastUpdated) {
				latest = s
			}
		}
		return []internal.Session{latest}
	}

	if len(opts.TabIndexes) > 0 {
		var picked []internal.Session
		for _, idx := range opts.TabIndexes {
			if idx >= 1 && idx <= len(sessions) {
				picked = append(picked, sessions[idx-1])
			}
		}
		return picked
	}

	return sessions
}

// WriteSessions writes each session to its own file, named by session id.
// Duplicate ids get a deterministic numeric suffix instead of being
// silently overwritten.
func WriteSessions(sessions []internal.Session, outputDir string, exp Exporter) (Report, error) {
	report := Report{Sessions: len(sessions)}
	used := make(map[string]int)

	for i := range sessions {
		session := &sessions[i]
		name := exportFilename(session.ID, exp.Extension(), used)
		path := filepath.Join(outputDir, name)

		if err := writeSessionFile(session, path, exp); err != nil {
			internal.LogError("failed to export session %s: %v", session.ID, err)
			report.Failures = append(report.Failures, &internal.ExportError{
				SessionID: session.ID,
				Path:      path,
				Err:       err,
			})
			continue
		}

		report.Files = append(report.Files, WrittenFile{SessionID: session.ID, Path: path})
	}

	return report, nil
}

func writeSessionFile(session *internal.Session, path string, exp Exporter) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := exp.Export(session, file); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// exportFilename derives a filesystem-safe filename from a session id,
// disambiguating repeats with a numeric suffix.
func exportFilename(id, ext string, used map[string]int) string {
	base := SanitizeID(id)

	used[base]++
	if n := used[base]; n > 1 {
		base = fmt.Sprintf("%s-%d", base, n)
	}

	return base + "." + ext
}

// SanitizeID strips path-unsafe characters from a session id so it can
// be used as a filename.
func SanitizeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}

	s := strings.Trim(b.String(), "-.")
	if s == "" {
		return "session"
	}
	return s
}
