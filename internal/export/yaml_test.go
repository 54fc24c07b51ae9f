package export

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	exporter := &YAMLExporter{}

	if err := exporter.Export(testSession(), &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var decoded struct {
		ID       string `yaml:"id"`
		Title    string `yaml:"title"`
		Messages []struct {
			Role string `yaml:"role"`
			Text string `yaml:"text"`
		} `yaml:"messages"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if decoded.ID != "test1" || decoded.Title != "Test Conversation" {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded.Messages) != 2 || decoded.Messages[1].Role != "assistant" {
		t.Errorf("messages = %+v", decoded.Messages)
	}
}
