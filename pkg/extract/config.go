package extract

import (
	"encoding/json"
	"os"
	"path/filepath"

	"claude-explorer/pkg/models"
)

// Config reads one opaque JSON config blob relative to the root.
// Missing files are an empty object; unparseable files warn and fall
// back to an empty object so the composite document always has valid
// JSON in every passthrough slot.
func (e *Extractor) Config(elem ...string) json.RawMessage {
	path := filepath.Join(append([]string{e.root}, elem...)...)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			e.failf("config "+filepath.Base(path), err)
		}
		return models.EmptyObject
	}
	if !json.Valid(data) {
		e.warnf("config %s: not valid JSON, ignoring", filepath.Base(path))
		return models.EmptyObject
	}
	return json.RawMessage(data)
}
