package catalog

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

type postFrontMatter struct {
	Title     string   `yaml:"title"`
	Summary   string   `yaml:"summary"`
	Author    string   `yaml:"author"`
	Tags      []string `yaml:"tags"`
	Image     string   `yaml:"image"`
	Published string   `yaml:"published"`
	Updated   string   `yaml:"updated"`
	Draft     bool     `yaml:"draft"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

var sanitizer = bluemonday.UGCPolicy()

// loadPosts reads every .md file under dir, parses its YAML front matter,
// renders the body to sanitized HTML and returns posts newest first. Drafts
// are skipped. A missing directory yields an empty list, not an error.
func loadPosts(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read posts dir %s: %w", dir, err)
	}

	var posts []Post
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		p, err := loadPost(path)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Published.After(posts[j].Published) })
	return posts, nil
}

func loadPost(path string) (*Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read post %s: %w", path, err)
	}

	var fm postFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("parse front matter %s: %w", path, err)
	}
	if fm.Draft {
		return nil, nil
	}
	if fm.Title == "" {
		return nil, fmt.Errorf("post %s: missing title", path)
	}

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("render post %s: %w", path, err)
	}

	p := Post{
		Slug:    strings.TrimSuffix(filepath.Base(path), ".md"),
		Title:   fm.Title,
		Summary: fm.Summary,
		Author:  fm.Author,
		Tags:    fm.Tags,
		Image:   fm.Image,
		Body:    template.HTML(sanitizer.SanitizeBytes(buf.Bytes())),
	}
	if fm.Published != "" {
		t, err := time.Parse("2006-01-02", fm.Published)
		if err != nil {
			return nil, fmt.Errorf("post %s: bad published date %q: %w", path, fm.Published, err)
		}
		p.Published = t
	}
	if fm.Updated != "" {
		t, err := time.Parse("2006-01-02", fm.Updated)
		if err != nil {
			return nil, fmt.Errorf("post %s: bad updated date %q: %w", path, fm.Updated, err)
		}
		p.Updated = t
	}
	return &p, nil
}
