package extract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"claude-explorer/pkg/models"
)

// TodoLists reads every *.json file under todos/. Lists whose task
// array is empty or unreadable are excluded entirely, so every list in
// the result has at least one task.
func (e *Extractor) TodoLists() []models.TodoList {
	dir := filepath.Join(e.root, "todos")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			e.failf("todos", err)
		}
		return []models.TodoList{}
	}

	lists := []models.TodoList{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			e.warnf("todos: read %s: %v", entry.Name(), err)
			continue
		}
		var tasks []models.Task
		if err := json.Unmarshal(data, &tasks); err != nil {
			e.warnf("todos: parse %s: %v", entry.Name(), err)
			continue
		}
		if len(tasks) == 0 {
			continue
		}
		lists = append(lists, models.TodoList{
			ID:    strings.TrimSuffix(entry.Name(), ".json"),
			Tasks: tasks,
		})
	}
	return lists
}
