package extract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizeTitle(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"fix-login-flow", "Fix Login Flow"},
		{"refactor_parser", "Refactor Parser"},
		{"mixed-style_name", "Mixed Style Name"},
		{"single", "Single"},
		{"already Title", "Already Title"},
	}
	for _, tt := range tests {
		if got := humanizeTitle(tt.stem); got != tt.want {
			t.Errorf("humanizeTitle(%q) = %q, want %q", tt.stem, got, tt.want)
		}
	}
}

func TestPlans(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "plans")
	writeFile(t, filepath.Join(dir, "fix-login-flow.md"), "# Plan\n\ndo the thing <script>\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a plan")

	e := New(root, DefaultOptions(), nil)
	plans := e.Plans()

	require.Len(t, plans, 1)
	p := plans[0]
	assert.Equal(t, "fix-login-flow", p.Name)
	assert.Equal(t, "Fix Login Flow", p.Title)
	assert.Equal(t, "fix-login-flow.md", p.File)
	assert.Equal(t, int64(len("# Plan\n\ndo the thing <script>\n")), p.Size)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, p.Modified)
	// Content stays verbatim, markup included.
	assert.Equal(t, "# Plan\n\ndo the thing <script>\n", p.Content)
}

func TestPlansMissingDir(t *testing.T) {
	e := New(t.TempDir(), DefaultOptions(), nil)
	assert.Empty(t, e.Plans())
	assert.Empty(t, e.Warnings())
}
