package extract

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"claude-explorer/pkg/models"
)

// History parses history.jsonl, one entry per line in file order.
// Malformed lines are skipped individually; the rest of the file is
// still read.
func (e *Extractor) History() []models.HistoryEntry {
	path := filepath.Join(e.root, "history.jsonl")

	entries := []models.HistoryEntry{}
	badLines := 0
	total, err := forEachLine(path, func(line []byte) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			// Blank lines are padding, not corruption.
			return
		}
		var entry models.HistoryEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			badLines++
			return
		}
		entries = append(entries, entry)
	})
	if badLines > 0 {
		e.warnf("history: skipped %d of %d lines as malformed", badLines, total)
	}
	if err != nil && !os.IsNotExist(err) {
		e.failf("history", err)
	}
	return entries
}
