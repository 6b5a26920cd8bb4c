package extract

import (
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"claude-explorer/pkg/models"
)

var skillFrontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n?`)

// skillMeta is the YAML frontmatter of a SKILL.md descriptor.
type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Skills reads every directory under skills/. A skill without a
// SKILL.md descriptor is still listed with its member files; the
// description stays empty.
func (e *Extractor) Skills() []models.Skill {
	dir := filepath.Join(e.root, "skills")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			e.failf("skills", err)
		}
		return []models.Skill{}
	}

	skills := []models.Skill{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		skill := models.Skill{Name: entry.Name(), Files: []string{}}

		members, err := os.ReadDir(filepath.Join(dir, entry.Name()))
		if err != nil {
			e.warnf("skills: list %s: %v", entry.Name(), err)
		}
		for _, m := range members {
			skill.Files = append(skill.Files, m.Name())
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name(), "SKILL.md"))
		if err == nil {
			skill.Content = string(content)
			skill.Description = parseSkillDescription(content)
		} else if !os.IsNotExist(err) {
			e.warnf("skills: read %s/SKILL.md: %v", entry.Name(), err)
		}

		skills = append(skills, skill)
	}
	return skills
}

// parseSkillDescription pulls the description field out of SKILL.md
// frontmatter. Bad or absent frontmatter just means no description.
func parseSkillDescription(content []byte) string {
	matches := skillFrontmatterPattern.FindSubmatch(content)
	if len(matches) != 2 {
		return ""
	}
	var meta skillMeta
	if err := yaml.Unmarshal(matches[1], &meta); err != nil {
		return ""
	}
	return meta.Description
}
