package extract

import (
	"os"
	"path/filepath"
	"strings"

	"claude-explorer/pkg/models"
)

const previewLen = 200

// Projects walks projects/<dir>/*.jsonl and parses each session
// transcript. Hidden directories are skipped. At most MaxSessions
// session files are read per project, the first N in listing order;
// size and line count are measured fresh from each file.
func (e *Extractor) Projects() []models.Project {
	dir := filepath.Join(e.root, "projects")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			e.failf("projects", err)
		}
		return []models.Project{}
	}

	projects := []models.Project{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		sessions := e.projectSessions(filepath.Join(dir, entry.Name()))
		if len(sessions) == 0 {
			continue
		}
		projects = append(projects, models.Project{
			Path:         entry.Name(),
			SessionCount: len(sessions),
			Sessions:     sessions,
		})
	}
	return projects
}

func (e *Extractor) projectSessions(projectDir string) []models.Session {
	entries, err := os.ReadDir(projectDir)
	if err != nil {
		e.warnf("projects: list %s: %v", filepath.Base(projectDir), err)
		return nil
	}

	sessions := []models.Session{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jsonl") {
			continue
		}
		if len(sessions) >= e.opts.MaxSessions {
			break
		}
		path := filepath.Join(projectDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			e.warnf("projects: stat %s: %v", entry.Name(), err)
			continue
		}
		messages, lines, err := parseTranscript(path, e.opts)
		if err != nil {
			e.warnf("projects: read %s: %v", entry.Name(), err)
			continue
		}

		session := models.Session{
			ID:           strings.TrimSuffix(entry.Name(), ".jsonl"),
			Size:         info.Size(),
			Lines:        lines,
			MessageCount: len(messages),
			Messages:     messages,
		}
		if len(messages) > 0 {
			session.FirstTimestamp = messages[0].Timestamp
			session.LastTimestamp = messages[len(messages)-1].Timestamp
			session.Preview = truncate(messages[0].Content, previewLen)
		}
		sessions = append(sessions, session)
	}
	return sessions
}
