package extract

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"claude-explorer/pkg/models"
)

var titleCaser = cases.Title(language.English)

// humanizeTitle turns a file stem like "fix-login-flow" into
// "Fix Login Flow" for display.
func humanizeTitle(stem string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	return titleCaser.String(strings.TrimSpace(s))
}

// Plans reads every *.md file in the plans directory, in listing
// order. Content is kept verbatim; escaping is the serializer's job.
func (e *Extractor) Plans() []models.Plan {
	dir := filepath.Join(e.root, "plans")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			e.failf("plans", err)
		}
		return []models.Plan{}
	}

	plans := []models.Plan{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			e.warnf("plans: stat %s: %v", entry.Name(), err)
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			e.warnf("plans: read %s: %v", entry.Name(), err)
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ".md")
		plans = append(plans, models.Plan{
			Name:     stem,
			Title:    humanizeTitle(stem),
			File:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().Format("2006-01-02"),
			Content:  string(content),
		})
	}
	return plans
}
