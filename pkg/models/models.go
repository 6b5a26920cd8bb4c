package models

import "encoding/json"

// HistoryEntry is one prompt from history.jsonl. Entries keep the order
// they appear in the file; the log is append-only.
type HistoryEntry struct {
	Display   string `json:"display"`
	Project   string `json:"project,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	// Timestamp is epoch milliseconds. Zero means the entry had none.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// Message is a single transcript entry from a session JSONL file.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	UUID      string `json:"uuid"`
}

// Session describes one session transcript inside a project directory.
// Size and Lines are measured from the file at extraction time.
type Session struct {
	ID             string    `json:"id"`
	Size           int64     `json:"size"`
	Lines          int       `json:"lines"`
	MessageCount   int       `json:"messageCount"`
	Messages       []Message `json:"messages"`
	FirstTimestamp string    `json:"firstTimestamp"`
	LastTimestamp  string    `json:"lastTimestamp"`
	Preview        string    `json:"preview"`
}

// Project groups the sessions recorded under one project directory.
// SessionCount always equals len(Sessions).
type Project struct {
	Path         string    `json:"path"`
	SessionCount int       `json:"sessionCount"`
	Sessions     []Session `json:"sessions"`
}

// Plan is one markdown plan file, content verbatim.
type Plan struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	File     string `json:"file"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
	Content  string `json:"content"`
}

// Skill is one skill directory. Description comes from the SKILL.md
// frontmatter when present; Files keeps directory listing order.
type Skill struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content"`
	Files       []string `json:"files"`
}

// Task statuses as written by Claude Code.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// Task is one entry of a todo list.
type Task struct {
	Content    string `json:"content"`
	Status     string `json:"status"`
	ActiveForm string `json:"activeForm,omitempty"`
}

// TodoList is the task list of one session. Lists with no tasks are
// never emitted.
type TodoList struct {
	ID    string `json:"id"`
	Tasks []Task `json:"tasks"`
}

// FileRecord is one backed-up file inside a file-history session.
type FileRecord struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// FileHistorySession lists the file snapshots kept for one session.
// FileCount always equals len(Files).
type FileHistorySession struct {
	SessionID string       `json:"sessionId"`
	FileCount int          `json:"fileCount"`
	Files     []FileRecord `json:"files"`
}

// Document is the composite of every resource category. Every key is
// always present in the serialized form; consumers only check for
// emptiness, never for absence.
type Document struct {
	Settings         json.RawMessage      `json:"settings"`
	SettingsLocal    json.RawMessage      `json:"settingsLocal"`
	Stats            json.RawMessage      `json:"stats"`
	InstalledPlugins json.RawMessage      `json:"installedPlugins"`
	Marketplaces     json.RawMessage      `json:"marketplaces"`
	History          []HistoryEntry       `json:"history"`
	Plans            []Plan               `json:"plans"`
	Projects         []Project            `json:"projects"`
	Skills           []Skill              `json:"skills"`
	Todos            []TodoList           `json:"todos"`
	FileHistory      []FileHistorySession `json:"fileHistory"`
}

// EmptyObject is the default for opaque config blobs that are missing
// or unreadable.
var EmptyObject = json.RawMessage("{}")

// NewDocument returns a document where every collection is empty but
// present, so serialization never produces null or missing keys.
func NewDocument() *Document {
	return &Document{
		Settings:         EmptyObject,
		SettingsLocal:    EmptyObject,
		Stats:            EmptyObject,
		InstalledPlugins: EmptyObject,
		Marketplaces:     EmptyObject,
		History:          []HistoryEntry{},
		Plans:            []Plan{},
		Projects:         []Project{},
		Skills:           []Skill{},
		Todos:            []TodoList{},
		FileHistory:      []FileHistorySession{},
	}
}
