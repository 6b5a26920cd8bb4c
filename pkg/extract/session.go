package extract

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"claude-explorer/pkg/models"
)

// transcriptLine is the loose per-line shape of a session JSONL file.
// Only user and assistant lines carry a conversation message; other
// record types (summaries, tool results, metadata) are passed over.
type transcriptLine struct {
	Type      string          `json:"type"`
	Timestamp string          `json:"timestamp"`
	UUID      string          `json:"uuid"`
	Message   json.RawMessage `json:"message"`
}

type transcriptMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// contentBlock is one element of a block-list message content. Text
// blocks contribute their text; tool_use blocks collapse to a
// "[Tool: name]" marker the renderer knows how to display.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Name string `json:"name"`
}

// parseTranscript reads a session JSONL file into renderable messages
// and reports the file's total line count. Lines that fail to parse
// are skipped; only opening or scanning the file can fail.
func parseTranscript(path string, opts Options) ([]models.Message, int, error) {
	messages := []models.Message{}
	lines, err := forEachLine(path, func(line []byte) {
		if len(messages) >= opts.MaxMessages {
			return
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			return
		}

		var record transcriptLine
		if err := json.Unmarshal(line, &record); err != nil {
			return
		}
		if record.Type != "user" && record.Type != "assistant" {
			return
		}

		var msg transcriptMessage
		if len(record.Message) > 0 {
			if err := json.Unmarshal(record.Message, &msg); err != nil {
				return
			}
		}
		role := msg.Role
		if role == "" {
			role = record.Type
		}

		content := flattenContent(msg.Content)
		if strings.TrimSpace(content) == "" {
			return
		}
		content = truncate(content, opts.MaxContentLen)

		messages = append(messages, models.Message{
			Role:      role,
			Content:   content,
			Timestamp: record.Timestamp,
			UUID:      shortID(record.UUID),
		})
	})
	if err != nil {
		return nil, 0, err
	}
	return messages, lines, nil
}

// flattenContent renders message content to plain text. Content is
// either a JSON string or a list of typed blocks.
func flattenContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var blocks []contentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return ""
	}
	parts := []string{}
	for _, block := range blocks {
		switch block.Type {
		case "text":
			parts = append(parts, block.Text)
		case "tool_use":
			name := block.Name
			if name == "" {
				name = "unknown"
			}
			parts = append(parts, "[Tool: "+name+"]")
		}
	}
	return strings.Join(parts, "\n")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate cuts s to at most max bytes without splitting a UTF-8
// sequence, so truncated content is always valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
