package stories

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spboyer/storysheet/internal/models"
	"github.com/spboyer/storysheet/internal/validation"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ErrNoStories is returned when a stories file parses but defines nothing.
var ErrNoStories = errors.New("no stories defined")

// File is the on-disk layout of a YAML stories file.
type File struct {
	Stories []models.Story `yaml:"stories"`
}

// Load reads story lists from path. The format is chosen by extension:
// .yaml/.yml files are schema-checked and decoded, .md/.markdown files use
// level-2 headings as story names and their list items as steps.
func Load(path string) ([]models.Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stories file: %w", err)
	}

	var stories []models.Story
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		stories, err = ParseYAML(data)
	case ".md", ".markdown":
		stories = ParseMarkdown(data)
	default:
		return nil, fmt.Errorf("unsupported stories file extension %q: use .yaml, .yml, .md or .markdown", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(stories) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoStories)
	}
	return stories, nil
}

// ParseYAML validates data against the stories schema and decodes it.
func ParseYAML(data []byte) ([]models.Story, error) {
	if errs := validation.ValidateStoriesBytes(data); len(errs) > 0 {
		return nil, &validation.Error{Problems: errs}
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Stories, nil
}

// ParseMarkdown collects stories from a Markdown document. Lists that
// appear before the first level-2 heading are ignored, as are nested lists.
func ParseMarkdown(source []byte) []models.Story {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var stories []models.Story
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Heading:
			if v.Level == 2 {
				stories = append(stories, models.Story{Name: inlineText(v, source)})
			}
		case *ast.List:
			if len(stories) == 0 {
				continue
			}
			cur := &stories[len(stories)-1]
			for item := v.FirstChild(); item != nil; item = item.NextSibling() {
				if step := inlineText(item, source); step != "" {
					cur.Steps = append(cur.Steps, step)
				}
			}
		}
	}
	return stories
}

// inlineText concatenates the text under n, skipping nested lists.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.List:
			if c != n {
				return ast.WalkSkipChildren, nil
			}
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
