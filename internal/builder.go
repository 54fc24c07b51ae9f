package internal

import (
	"fmt"
	"strings"
	"time"
)

// Candidate field names per logical field, in priority order. The chat
// payload schema has renamed these across editor versions; the tables
// below cover the shapes observed in real database captures. Lookup is
// first-present-wins, with a documented default when nothing matches.
var (
	sessionListFields = []string{"tabs", "chats", "sessions"}
	sessionIDFields   = []string{"tabId", "id", "chatId", "composerId"}
	titleFields       = []string{"chatTitle", "title", "name"}
	messageListFields = []string{"bubbles", "messages"}
	roleFields        = []string{"type", "role", "messageType"}
	textFields        = []string{"text", "rawText", "content"}
	codeListFields    = []string{"codeBlocks", "selections", "suggestedCodeBlocks"}
	codeLangFields    = []string{"language", "languageId", "lang"}
	codeContentFields = []string{"content", "text", "code"}
	timestampFields   = []string{"timestamp", "lastSendTime", "createdAt"}
)

// BuildSessions extracts chat sessions from a decoded payload.
//
// A payload with no recognizable session list yields zero sessions and no
// diagnostics: an unknown schema is not an error, so a batch scan over
// many workspaces keeps progressing. A session record without an id is
// skipped with a diagnostic (the id is the export filename key and is
// never synthesized). A malformed message becomes an empty-text turn in
// place, so message order and turn count are preserved.
func BuildSessions(payload Value) ([]Session, []Diagnostic) {
	list := payload.Field(sessionListFields...)
	items := list.Items()
	if items == nil {
		return nil, nil
	}

	var sessions []Session
	var diags []Diagnostic

	for i, rec := range items {
		if rec.Kind() != KindObject {
			diags = append(diags, Diagnostic{
				SessionIndex: i,
				MessageIndex: -1,
				Reason:       "session record is not an object",
			})
			continue
		}

		id, ok := rec.Field(sessionIDFields...).Str()
		if !ok || id == "" {
			diags = append(diags, Diagnostic{
				SessionIndex: i,
				MessageIndex: -1,
				Reason:       "session record has no id",
			})
			continue
		}

		session := Session{
			ID:          id,
			Title:       rec.Field(titleFields...).StrOr(id),
			LastUpdated: millisField(rec, timestampFields...),
		}
		if session.Title == "" {
			session.Title = id
		}

		msgItems := rec.Field(messageListFields...).Items()
		for j, msgRec := range msgItems {
			msg, diag := buildMessage(msgRec)
			if diag != "" {
				diags = append(diags, Diagnostic{
					SessionIndex: i,
					MessageIndex: j,
					Reason:       diag,
				})
			}
			session.Messages = append(session.Messages, msg)
		}

		sessions = append(sessions, session)
	}

	return sessions, diags
}

// buildMessage extracts one turn. A record of the wrong shape still yields
// a placeholder Message so the turn keeps its position.
func buildMessage(rec Value) (Message, string) {
	if rec.Kind() != KindObject {
		return Message{Role: RoleUnknown}, "message record is not an object"
	}

	msg := Message{
		Role:      normalizeRole(rec.Field(roleFields...)),
		Timestamp: millisField(rec, timestampFields...),
	}

	text := rec.Field(textFields...).StrOr("")
	plain, fenced := splitFencedBlocks(text)
	msg.Text = plain
	msg.CodeFragments = append(msg.CodeFragments, fenced...)

	for _, listName := range codeListFields {
		for _, block := range rec.Field(listName).Items() {
			content, ok := block.Field(codeContentFields...).Str()
			if !ok || content == "" {
				continue
			}
			msg.CodeFragments = append(msg.CodeFragments, CodeFragment{
				Language: block.Field(codeLangFields...).StrOr(""),
				Content:  content,
			})
		}
	}

	return msg, ""
}

// normalizeRole maps the role field to a Role. Older schemas store a
// numeric type (1=user, 2=assistant), newer ones a string; string matches
// are case-insensitive. Anything else maps to RoleUnknown rather than
// dropping the turn.
func normalizeRole(v Value) Role {
	if n, ok := v.Int64(); ok {
		switch n {
		case 1:
			return RoleUser
		case 2:
			return RoleAssistant
		}
		return RoleUnknown
	}

	s, ok := v.Str()
	if !ok {
		return RoleUnknown
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user", "human":
		return RoleUser
	case "ai", "assistant", "bot":
		return RoleAssistant
	}
	return RoleUnknown
}

// millisField reads the first present candidate field as a unix-millisecond
// timestamp. Returns the zero time when absent or non-numeric.
func millisField(rec Value, names ...string) time.Time {
	ms, ok := rec.Field(names...).Int64()
	if !ok || ms <= 0 {
		return time.Time{}
	}
	return time.Unix(0, ms*int64(time.Millisecond)).UTC()
}

// splitFencedBlocks separates ``` fenced code blocks embedded in message
// text from the surrounding narrative. The fence language tag, when
// present, becomes the fragment language.
func splitFencedBlocks(text string) (string, []CodeFragment) {
	if !strings.Contains(text, "```") {
		return text, nil
	}

	var narrative []string
	var fragments []CodeFragment
	var code []string
	lang := ""
	inFence := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				fragments = append(fragments, CodeFragment{
					Language: lang,
					Content:  strings.Join(code, "\n"),
				})
				code = nil
				inFence = false
			} else {
				lang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				inFence = true
			}
			continue
		}
		if inFence {
			code = append(code, line)
		} else {
			narrative = append(narrative, line)
		}
	}

	// Unterminated fence: keep what was collected rather than losing it.
	if inFence && len(code) > 0 {
		fragments = append(fragments, CodeFragment{
			Language: lang,
			Content:  strings.Join(code, "\n"),
		})
	}

	return strings.TrimSpace(strings.Join(narrative, "\n")), fragments
}

// DescribeDiagnostics renders diagnostics as one readable line each.
func DescribeDiagnostics(diags []Diagnostic) []string {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		if d.MessageIndex < 0 {
			lines = append(lines, fmt.Sprintf("session %d: %s", d.SessionIndex, d.Reason))
		} else {
			lines = append(lines, fmt.Sprintf("session %d message %d: %s", d.SessionIndex, d.MessageIndex, d.Reason))
		}
	}
	return lines
}
