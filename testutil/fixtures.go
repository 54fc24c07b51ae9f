package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
)

// SimpleChatPayload is a minimal well-formed chat payload: one session
// with one user and one assistant message.
const SimpleChatPayload = `{"tabs":[{"tabId":"abc","chatTitle":"Greeting","bubbles":[{"type":"user","text":"hi"},{"type":"ai","text":"hello"}]}]}`

// ChatPayload builds a payload with the given session records.
func ChatPayload(t *testing.T, sessions ...map[string]interface{}) string {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{"tabs": sessions})
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	return string(data)
}

// SessionRecord builds one session record with simple alternating
// user/assistant text messages.
func SessionRecord(t *testing.T, id string, texts ...string) map[string]interface{} {
	t.Helper()
	bubbles := make([]map[string]interface{}, 0, len(texts))
	for i, text := range texts {
		role := "user"
		if i%2 == 1 {
			role = "ai"
		}
		bubbles = append(bubbles, map[string]interface{}{
			"type": role,
			"text": text,
		})
	}
	return map[string]interface{}{
		"tabId":     id,
		"chatTitle": fmt.Sprintf("Session %s", id),
		"bubbles":   bubbles,
	}
}
