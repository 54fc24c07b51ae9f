package internal

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// StateDBName is the workspace database filename the editor writes.
const StateDBName = "state.vscdb"

// PreviewMessages is how many leading messages of a workspace's first
// session the discover preview shows.
const PreviewMessages = 10

// Source is one discovered workspace database and the sessions it yields.
// A valid database with no chat history yields zero sessions.
type Source struct {
	Path        string
	Sessions    []Session
	Diagnostics []Diagnostic
}

// SourceResult wraps either a loaded Source or the error that prevented
// loading it, so a batch scan can keep walking past corrupt files.
type SourceResult struct {
	Path   string
	Source *Source
	Err    error
}

// ScanSources lazily walks root and yields one SourceResult per
// state.vscdb file, in directory-walk order. Each database is opened,
// read, and closed before the next is visited.
func ScanSources(root string) iter.Seq[SourceResult] {
	return func(yield func(SourceResult) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || d.Name() != StateDBName {
				return nil
			}

			src, loadErr := LoadSource(path)
			if !yield(SourceResult{Path: path, Source: src, Err: loadErr}) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// LoadSource opens one workspace database and extracts its chat sessions.
// The handle is released on every path out of this function.
func LoadSource(path string) (*Source, error) {
	store, err := OpenStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	raw, present, err := store.ReadChatPayload()
	if err != nil {
		return nil, err
	}
	if !present {
		// A workspace with no chat history yet.
		return &Source{Path: path}, nil
	}

	payload, err := DecodePayload(raw)
	if err != nil {
		return nil, err
	}

	sessions, diags := BuildSessions(payload)
	for _, line := range DescribeDiagnostics(diags) {
		LogDebug("%s: %s", path, line)
	}

	return &Source{Path: path, Sessions: sessions, Diagnostics: diags}, nil
}

// MatchedMessage is one message whose text contained the search term.
type MatchedMessage struct {
	SessionID string
	Role      Role
	Text      string
}

// Discovery is the per-file outcome of a discover scan: an error for an
// unreadable file, matches when searching, or a preview otherwise.
type Discovery struct {
	Path    string
	Err     error
	Preview string
	Matches []MatchedMessage
}

// Discover walks root for workspace databases and summarizes each.
//
// With searchText, only files containing it as a case-insensitive
// substring of some message text are returned, with the matching messages
// as context. Without, every readable file with at least one session is
// returned with a preview of its first session. Unreadable files are
// reported in place and never abort the scan. limit > 0 caps how many
// databases are inspected.
func Discover(root, searchText string, limit int) ([]Discovery, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read root directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	needle := strings.ToLower(searchText)
	var results []Discovery
	seen := 0

	for res := range ScanSources(root) {
		if limit > 0 && seen >= limit {
			break
		}
		seen++

		if res.Err != nil {
			results = append(results, Discovery{Path: res.Path, Err: res.Err})
			continue
		}

		if needle != "" {
			matches := searchSource(res.Source, needle)
			if len(matches) == 0 {
				continue
			}
			results = append(results, Discovery{Path: res.Path, Matches: matches})
			continue
		}

		if len(res.Source.Sessions) == 0 {
			LogDebug("no chat sessions in %s", res.Path)
			continue
		}
		preview := RenderPreview(&res.Source.Sessions[0], PreviewMessages)
		results = append(results, Discovery{Path: res.Path, Preview: preview})
	}

	return results, nil
}

func searchSource(src *Source, needle string) []MatchedMessage {
	var matches []MatchedMessage
	for _, session := range src.Sessions {
		for _, msg := range session.Messages {
			if strings.Contains(strings.ToLower(msg.Text), needle) {
				matches = append(matches, MatchedMessage{
					SessionID: session.ID,
					Role:      msg.Role,
					Text:      msg.Text,
				})
			}
		}
	}
	return matches
}
