package service

import (
	"encoding/xml"
	"log/slog"
	"strings"
	"time"

	"github.com/chapterweb/chaptersite/internal/model"
)

// publicRoutes are the site's static pages. Admin screens never belong here.
var publicRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "weekly"},
	{"/events", "0.9", "daily"},
	{"/notices", "0.9", "daily"},
	{"/gallery", "0.7", "weekly"},
	{"/team", "0.6", "monthly"},
	{"/projects", "0.7", "monthly"},
	{"/achievements", "0.7", "monthly"},
	{"/contact", "0.5", "yearly"},
}

type SitemapService struct {
	pageService *PageService
	baseURL     string
	now         func() time.Time
}

func NewSitemapService(pageService *PageService, baseURL string) *SitemapService {
	return &SitemapService{
		pageService: pageService,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		now:         time.Now,
	}
}

// GenerateSitemap lists the static pages plus every markdown page of each section.
func (s *SitemapService) GenerateSitemap() ([]byte, error) {
	today := s.now().Format("2006-01-02")

	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]model.SitemapURL, 0, len(publicRoutes)),
	}

	for _, route := range publicRoutes {
		sitemap.URLs = append(sitemap.URLs, model.SitemapURL{
			Loc:        s.baseURL + route.Path,
			LastMod:    today,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}

	for _, section := range PageSections {
		pages, err := s.pageService.Pages(section)
		if err != nil {
			// A missing section directory should not take the sitemap down
			slog.Warn("failed to list pages for sitemap", "error", err, "section", section)
			continue
		}

		for _, page := range pages {
			lastMod := today
			if !page.Date.IsZero() {
				lastMod = page.Date.Format("2006-01-02")
			}
			sitemap.URLs = append(sitemap.URLs, model.SitemapURL{
				Loc:        s.baseURL + "/" + section + "/" + page.Slug,
				LastMod:    lastMod,
				ChangeFreq: "monthly",
				Priority:   "0.6",
			})
		}
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return []byte(xml.Header + string(output)), nil
}
