package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chapterweb/chaptersite/internal/markdown"
	"github.com/chapterweb/chaptersite/internal/model"
)

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrUnknownSection = errors.New("unknown page section")
)

// PageSections are the content directories served as pages.
var PageSections = []string{"projects", "achievements"}

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// PageService serves markdown pages from CONTENT_PATH/<section>/<slug>.md.
// Rendered pages are cached until the TTL expires, so edits show up without a restart.
type PageService struct {
	parser      *markdown.Parser
	contentPath string
	cache       *expirable.LRU[string, *model.Page]
}

func NewPageService(contentPath string, cacheSize int, cacheTTL time.Duration) *PageService {
	return &PageService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
		cache:       expirable.NewLRU[string, *model.Page](cacheSize, nil, cacheTTL),
	}
}

func validSection(section string) bool {
	for _, s := range PageSections {
		if s == section {
			return true
		}
	}
	return false
}

// Pages lists a section newest first. Files that fail to render are skipped.
func (s *PageService) Pages(section string) ([]*model.Page, error) {
	if !validSection(section) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	files, err := filepath.Glob(filepath.Join(s.contentPath, section, "*.md"))
	if err != nil {
		return nil, err
	}

	pages := []*model.Page{}
	for _, file := range files {
		slug := strings.TrimSuffix(filepath.Base(file), ".md")
		page, err := s.Page(section, slug)
		if err != nil {
			continue
		}
		pages = append(pages, page)
	}

	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Date.After(pages[j].Date)
	})

	return pages, nil
}

func (s *PageService) Page(section, slug string) (*model.Page, error) {
	if !validSection(section) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	if !slugPattern.MatchString(slug) {
		return nil, ErrPageNotFound
	}

	key := section + "/" + slug
	if page, ok := s.cache.Get(key); ok {
		return page, nil
	}

	content, err := os.ReadFile(filepath.Join(s.contentPath, section, slug+".md"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, key)
	}

	page, err := s.render(section, slug, content)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, page)
	return page, nil
}

func (s *PageService) render(section, slug string, content []byte) (*model.Page, error) {
	html, meta, err := s.parser.Render(content)
	if err != nil {
		return nil, fmt.Errorf("render %s/%s: %w", section, slug, err)
	}

	page := &model.Page{
		Section:     section,
		Slug:        slug,
		Content:     string(content),
		HTMLContent: string(html),
	}

	title, ok := meta["title"].(string)
	if ok && title != "" {
		page.Title = title
	} else {
		page.Title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}

	description, ok := meta["description"].(string)
	if ok {
		page.Description = description
	}

	image, ok := meta["image"].(string)
	if ok {
		page.Image = image
	}

	switch date := meta["date"].(type) {
	case string:
		parsed, err := time.Parse("2006-01-02", date)
		if err == nil {
			page.Date = parsed
		}
	case time.Time:
		page.Date = date
	}

	tags, ok := meta["tags"].([]any)
	if ok {
		for _, tag := range tags {
			tagStr, ok := tag.(string)
			if ok {
				page.Tags = append(page.Tags, tagStr)
			}
		}
	}

	return page, nil
}
