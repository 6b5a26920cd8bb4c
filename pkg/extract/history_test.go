package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestHistory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "history.jsonl"),
		`{"display":"fix the build","project":"/home/u/proj","sessionId":"abc-123","timestamp":1700000000000}
{"display":"second prompt"}
not json at all
{"display":"third","project":"/home/u/other"}
`)

	e := New(root, DefaultOptions(), nil)
	entries := e.History()

	require.Len(t, entries, 3)
	assert.Equal(t, "fix the build", entries[0].Display)
	assert.Equal(t, "/home/u/proj", entries[0].Project)
	assert.Equal(t, "abc-123", entries[0].SessionID)
	assert.Equal(t, int64(1700000000000), entries[0].Timestamp)

	// Optional fields stay zero when the line omits them.
	assert.Equal(t, "second prompt", entries[1].Display)
	assert.Empty(t, entries[1].Project)
	assert.Zero(t, entries[1].Timestamp)

	// File order is preserved across the skipped line.
	assert.Equal(t, "third", entries[2].Display)

	require.Len(t, e.Warnings(), 1)
	assert.Contains(t, e.Warnings()[0], "1 of 4")
}

func TestHistoryMalformedLinesAreCounted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "history.jsonl"),
		"{\"display\":\"a\"}\n{bad\n\n{\"display\":\"b\"}\n[1,2,3\n")

	e := New(root, DefaultOptions(), nil)
	entries := e.History()

	// 5 lines total, 2 malformed, 1 blank: only the malformed ones are
	// reported, and blanks still count toward the file's line total.
	assert.Len(t, entries, 2)
	require.Len(t, e.Warnings(), 1)
	assert.Contains(t, e.Warnings()[0], "2 of 5")
}

func TestHistoryBlankLinesAreNotMalformed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "history.jsonl"),
		"\n{\"display\":\"a\"}\n\n\n{\"display\":\"b\"}\n")

	e := New(root, DefaultOptions(), nil)
	entries := e.History()

	assert.Len(t, entries, 2)
	assert.Empty(t, e.Warnings())
}

func TestHistoryMissingFile(t *testing.T) {
	e := New(t.TempDir(), DefaultOptions(), nil)

	entries := e.History()
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.Empty(t, e.Warnings())
}
