package extract

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"claude-explorer/pkg/models"
)

// Options bounds the size of extracted collections. Truncation always
// keeps the first N entries in directory-listing order.
type Options struct {
	MaxSessions   int // sessions kept per project
	MaxMessages   int // messages kept per session transcript
	MaxContentLen int // characters kept per message
	MaxFiles      int // files kept per file-history session
}

// DefaultOptions mirrors the tool's default CLI flag values.
func DefaultOptions() Options {
	return Options{
		MaxSessions:   20,
		MaxMessages:   500,
		MaxContentLen: 5000,
		MaxFiles:      50,
	}
}

// Extractor reads a Claude data directory and produces typed records
// for each resource category. Every category is best-effort: missing
// inputs become empty results, malformed records are skipped with a
// warning, and a failure in one category never stops the others.
type Extractor struct {
	root     string
	opts     Options
	log      *logrus.Logger
	warnings []string
}

// New returns an extractor rooted at dir. A nil logger discards
// warnings.
func New(dir string, opts Options, log *logrus.Logger) *Extractor {
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.ErrorLevel)
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultOptions().MaxSessions
	}
	if opts.MaxMessages <= 0 {
		opts.MaxMessages = DefaultOptions().MaxMessages
	}
	if opts.MaxContentLen <= 0 {
		opts.MaxContentLen = DefaultOptions().MaxContentLen
	}
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = DefaultOptions().MaxFiles
	}
	return &Extractor{root: dir, opts: opts, log: log}
}

// Root returns the directory this extractor reads from.
func (e *Extractor) Root() string {
	return e.root
}

// Extract runs every resource category and assembles the composite
// document. It fails only when the root directory itself is missing or
// unreadable; anything below that degrades to empty results and
// warnings.
func (e *Extractor) Extract() (*models.Document, error) {
	if _, err := os.Stat(e.root); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("claude directory not found: %s", e.root)
		}
		return nil, fmt.Errorf("claude directory: %w", err)
	}

	doc := models.NewDocument()
	doc.Settings = e.Config("settings.json")
	doc.SettingsLocal = e.Config("settings.local.json")
	doc.Stats = e.Config("stats-cache.json")
	doc.InstalledPlugins = e.Config("plugins", "installed_plugins.json")
	doc.Marketplaces = e.Config("plugins", "known_marketplaces.json")
	doc.History = e.History()
	doc.Plans = e.Plans()
	doc.Skills = e.Skills()
	doc.Todos = e.TodoLists()
	doc.FileHistory = e.FileHistory()
	doc.Projects = e.Projects()
	return doc, nil
}

// Warnings returns every non-fatal problem hit so far, in order.
func (e *Extractor) Warnings() []string {
	return e.warnings
}

func (e *Extractor) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.warnings = append(e.warnings, msg)
	e.log.Warn(msg)
}

// failf records a category-scoped fatal I/O problem. Extraction of the
// other categories continues regardless.
func (e *Extractor) failf(category string, err error) {
	msg := fmt.Sprintf("%s: %v", category, err)
	e.warnings = append(e.warnings, msg)
	e.log.Error(msg)
}
