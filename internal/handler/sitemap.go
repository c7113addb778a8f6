package handler

import (
	"log/slog"
	"net/http"

	"github.com/chapterweb/chaptersite/internal/service"
)

type SitemapHandler struct {
	sitemapService *service.SitemapService
}

func NewSitemapHandler(sitemapService *service.SitemapService) *SitemapHandler {
	return &SitemapHandler{
		sitemapService: sitemapService,
	}
}

func (h *SitemapHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	sitemap, err := h.sitemapService.GenerateSitemap()
	if err != nil {
		slog.Error("failed to generate sitemap", "error", err)
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(sitemap)
}
