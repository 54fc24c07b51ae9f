package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	exporter := &JSONLExporter{}

	if err := exporter.Export(testSession(), &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []map[string]interface{}
	for scanner.Scan() {
		var obj map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
			t.Fatalf("line is not valid JSON: %v", err)
		}
		lines = append(lines, obj)
	}

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want one per message", len(lines))
	}
	if lines[0]["role"] != "user" || lines[0]["text"] != "Hello, how are you?" {
		t.Errorf("first line = %v", lines[0])
	}
	if lines[1]["session_id"] != "test1" {
		t.Errorf("each line should carry the session id, got %v", lines[1])
	}
	if _, ok := lines[1]["code_fragments"]; !ok {
		t.Error("assistant line should include its code fragments")
	}
}
