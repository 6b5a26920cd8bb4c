package report

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"claude-explorer/pkg/models"
)

//go:embed template.html
var templateHTML string

// The template uses [[ ]] delimiters so the embedded JavaScript and
// CSS never collide with template syntax. The only action in it is the
// data injection point.
var reportTemplate = template.Must(
	template.New("report").Delims("[[", "]]").Parse(templateHTML))

// Render writes the full HTML report to w with the encoded document
// embedded. The JSON is pre-escaped by Encode, so injection is a plain
// write, not a string substitution.
func Render(doc *models.Document, w io.Writer) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	return reportTemplate.Execute(w, map[string]string{"Data": string(data)})
}

// Write renders the report to path, creating parent directories as
// needed, and returns the size of the written file.
func Write(doc *models.Document, path string) (int64, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := Render(doc, f); err != nil {
		return 0, fmt.Errorf("render report: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
