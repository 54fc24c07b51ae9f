package internal

import "time"

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleUnknown is the fallback for role values no schema version maps.
	RoleUnknown Role = "unknown"
)

// CodeFragment is one code block attached to a message.
type CodeFragment struct {
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Content  string `json:"content" yaml:"content"`
}

// Message is one turn in a chat session. A message with no text and no
// code fragments is still a valid turn and is never dropped.
type Message struct {
	Role          Role           `json:"role" yaml:"role"`
	Text          string         `json:"text" yaml:"text"`
	CodeFragments []CodeFragment `json:"code_fragments,omitempty" yaml:"code_fragments,omitempty"`
	Timestamp     time.Time      `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// Session is one conversation thread ("tab") extracted from a workspace
// database. Message order is conversation order.
type Session struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Messages    []Message `json:"messages" yaml:"messages"`
	LastUpdated time.Time `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
}

// Diagnostic records a per-record extraction problem that was downgraded
// instead of failing the enclosing payload.
type Diagnostic struct {
	SessionIndex int
	MessageIndex int // -1 for session-level problems
	Reason       string
}
