package extract

import (
	"os"
	"path/filepath"

	"claude-explorer/pkg/models"
)

// FileHistory lists the per-session file snapshots kept under
// file-history/. Files beyond the cap are dropped; FileCount reflects
// what was kept.
func (e *Extractor) FileHistory() []models.FileHistorySession {
	dir := filepath.Join(e.root, "file-history")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			e.failf("file-history", err)
		}
		return []models.FileHistorySession{}
	}

	sessions := []models.FileHistorySession{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		children, err := os.ReadDir(filepath.Join(dir, entry.Name()))
		if err != nil {
			e.warnf("file-history: list %s: %v", entry.Name(), err)
			continue
		}

		files := []models.FileRecord{}
		for _, child := range children {
			if child.IsDir() {
				continue
			}
			if len(files) >= e.opts.MaxFiles {
				break
			}
			info, err := child.Info()
			if err != nil {
				e.warnf("file-history: stat %s/%s: %v", entry.Name(), child.Name(), err)
				continue
			}
			files = append(files, models.FileRecord{Name: child.Name(), Size: info.Size()})
		}
		sessions = append(sessions, models.FileHistorySession{
			SessionID: entry.Name(),
			FileCount: len(files),
			Files:     files,
		})
	}
	return sessions
}
