package export

import (
	"io"

	"github.com/iksnae/cursor-chat-export/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export writes a session as a Markdown document
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	_, err := io.WriteString(w, internal.RenderMarkdown(session))
	return err
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
