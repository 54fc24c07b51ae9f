package internal

import (
	"fmt"
	"strings"
)

const previewTextWidth = 80

// RenderMarkdown renders one session as a full Markdown document. The
// output depends only on the session contents: identical input yields
// byte-identical output.
func RenderMarkdown(session *Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", session.Title)

	for i, msg := range session.Messages {
		label := string(msg.Role)
		if !msg.Timestamp.IsZero() {
			label = fmt.Sprintf("%s (%s)", label, msg.Timestamp.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintf(&b, "**%s:**\n\n", label)

		if msg.Text != "" {
			fmt.Fprintf(&b, "%s\n\n", msg.Text)
		}

		for _, frag := range msg.CodeFragments {
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", frag.Language, frag.Content)
		}

		if i < len(session.Messages)-1 {
			b.WriteString("---\n\n")
		}
	}

	return b.String()
}

// RenderPreview renders up to maxMessages one-line message summaries,
// joined by newlines, with no headers. Used by discover output.
func RenderPreview(session *Session, maxMessages int) string {
	var lines []string
	for _, msg := range session.Messages {
		if len(lines) >= maxMessages {
			break
		}
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, previewText(msg)))
	}
	return strings.Join(lines, "\n")
}

func previewText(msg Message) string {
	text := msg.Text
	if text == "" && len(msg.CodeFragments) > 0 {
		text = "[code]"
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	if len(text) > previewTextWidth {
		text = text[:previewTextWidth-3] + "..."
	}
	return text
}
