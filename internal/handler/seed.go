package handler

import (
	"net/http"

	"github.com/chapterweb/chaptersite/internal/service"
)

type SeedHandler struct {
	seedService *service.SeedService
}

func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
	}
}

// Migrate runs the seed loader. Failed tables are part of the report, so a
// partial run still answers 200; the client reads the per-table status.
func (h *SeedHandler) Migrate(w http.ResponseWriter, r *http.Request) {
	report, _ := h.seedService.Migrate(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"tables":   report.Tables,
		"migrated": report.Migrated(),
		"skipped":  report.Skipped(),
		"failed":   report.Failed(),
	})
}
