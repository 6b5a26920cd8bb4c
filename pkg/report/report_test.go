package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claude-explorer/pkg/models"
)

// embeddedData pulls the injected JSON back out of a rendered report.
func embeddedData(t *testing.T, html string) []byte {
	t.Helper()
	const marker = "const data = "
	start := strings.Index(html, marker)
	require.NotEqual(t, -1, start, "injection point not found")
	rest := html[start+len(marker):]
	end := strings.Index(rest, "\n")
	require.NotEqual(t, -1, end)
	return []byte(strings.TrimSuffix(strings.TrimSpace(rest[:end]), ";"))
}

func TestRender(t *testing.T) {
	doc := sampleDocument()
	var buf bytes.Buffer
	require.NoError(t, Render(doc, &buf))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Claude Explorer</title>")

	data := embeddedData(t, html)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc.History, got.History)
	assert.Equal(t, doc.Plans, got.Plans)
	assert.Equal(t, doc.Todos, got.Todos)
}

// A document full of markup must never break out of the script element
// it is embedded in.
func TestRenderHostileContentStaysEmbedded(t *testing.T) {
	doc := models.NewDocument()
	doc.History = []models.HistoryEntry{
		{Display: "</script><script>alert('x')</script>"},
		{Display: "<!-- --><img src=x onerror=alert(1)>"},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(doc, &buf))

	data := embeddedData(t, buf.String())
	assert.NotContains(t, string(data), "</script>")

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc.History, got.History)
}

func TestRenderDeterministic(t *testing.T) {
	doc := sampleDocument()
	var first, second bytes.Buffer
	require.NoError(t, Render(doc, &first))
	require.NoError(t, Render(doc, &second))
	assert.Equal(t, first.String(), second.String())
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "report.html")
	size, err := Write(models.NewDocument(), path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), size)
	assert.Greater(t, size, int64(0))
}
