package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/cursor-chat-export/internal"
)

// JSONLExporter exports sessions in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a session to JSONL format
func (e *JSONLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range session.Messages {
		obj := map[string]interface{}{
			"session_id": session.ID,
			"role":       msg.Role,
			"text":       msg.Text,
		}

		if len(msg.CodeFragments) > 0 {
			obj["code_fragments"] = msg.CodeFragments
		}
		if !msg.Timestamp.IsZero() {
			obj["timestamp"] = msg.Timestamp
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
