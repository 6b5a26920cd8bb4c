package extract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkills(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "skills")
	writeFile(t, filepath.Join(dir, "pdf-tools", "SKILL.md"),
		"---\nname: pdf-tools\ndescription: Work with PDF files\n---\n\n# PDF tools\n")
	writeFile(t, filepath.Join(dir, "pdf-tools", "helper.py"), "print('hi')\n")
	writeFile(t, filepath.Join(dir, "bare", "script.sh"), "echo hi\n")
	writeFile(t, filepath.Join(dir, "stray-file.md"), "not a skill dir")

	e := New(root, DefaultOptions(), nil)
	skills := e.Skills()

	require.Len(t, skills, 2)

	assert.Equal(t, "bare", skills[0].Name)
	assert.Empty(t, skills[0].Description)
	assert.Empty(t, skills[0].Content)
	assert.Equal(t, []string{"script.sh"}, skills[0].Files)

	assert.Equal(t, "pdf-tools", skills[1].Name)
	assert.Equal(t, "Work with PDF files", skills[1].Description)
	assert.Contains(t, skills[1].Content, "# PDF tools")
	assert.Equal(t, []string{"SKILL.md", "helper.py"}, skills[1].Files)
}

func TestParseSkillDescription(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"well formed", "---\nname: x\ndescription: does things\n---\nbody", "does things"},
		{"no frontmatter", "# just markdown\n", ""},
		{"unterminated", "---\ndescription: broken\n", ""},
		{"bad yaml", "---\ndescription: [unclosed\n---\n", ""},
		{"no description field", "---\nname: x\n---\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseSkillDescription([]byte(tt.content)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
