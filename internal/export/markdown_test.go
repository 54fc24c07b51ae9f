package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/cursor-chat-export/internal"
)

func testSession() *internal.Session {
	return &internal.Session{
		ID:    "test1",
		Title: "Test Conversation",
		Messages: []internal.Message{
			{Role: internal.RoleUser, Text: "Hello, how are you?"},
			{Role: internal.RoleAssistant, Text: "I'm doing well!", CodeFragments: []internal.CodeFragment{
				{Language: "go", Content: "fmt.Println(\"hi\")"},
			}},
		},
	}
}

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		session *internal.Session
		want    []string
	}{
		{
			name:    "basic session",
			session: testSession(),
			want: []string{
				"# Test Conversation",
				"**user:**",
				"Hello, how are you?",
				"**assistant:**",
				"```go\nfmt.Println(\"hi\")\n```",
			},
		},
		{
			name: "empty session",
			session: &internal.Session{
				ID:    "empty",
				Title: "empty",
			},
			want: []string{"# empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &MarkdownExporter{}

			if err := exporter.Export(tt.session, &buf); err != nil {
				t.Fatalf("Export() error: %v", err)
			}

			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestMarkdownExporter_Extension(t *testing.T) {
	exporter := &MarkdownExporter{}
	if got := exporter.Extension(); got != "md" {
		t.Errorf("MarkdownExporter.Extension() = %v, want md", got)
	}
}
