package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chapterweb/chaptersite/internal/app"
	"github.com/chapterweb/chaptersite/internal/handler"
	"github.com/chapterweb/chaptersite/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	cfg := app.Cfg

	// Handlers
	health := handler.NewHealthHandler(app.DB)
	events := handler.NewEventHandler(app.EventService, cfg.UploadMaxSizeMB)
	notices := handler.NewNoticeHandler(app.NoticeService, cfg.UploadMaxSizeMB, cfg.UploadMaxFiles)
	gallery := handler.NewGalleryHandler(app.GalleryService, cfg.UploadMaxSizeMB)
	members := handler.NewMemberHandler(app.MemberService, cfg.UploadMaxSizeMB)
	highlights := handler.NewHighlightHandler(app.HighlightService, cfg.UploadMaxSizeMB)
	pages := handler.NewPageHandler(app.PageService)
	contact := handler.NewContactHandler(app.ContactService)
	auth := handler.NewAuthHandler(app.AuthService)
	uploads := handler.NewUploadHandler(app.UploadService, cfg.HasBucket, cfg.UploadMaxSizeMB)
	seed := handler.NewSeedHandler(app.SeedService)
	sitemap := handler.NewSitemapHandler(app.SitemapService)

	mux := http.NewServeMux()

	// ============================================================================
	// OPERATIONS
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// ============================================================================
	// PUBLIC API (/api/*)
	// ============================================================================

	mux.HandleFunc("GET /api/events", events.List)
	mux.HandleFunc("GET /api/events/{id}", events.Show)
	mux.HandleFunc("GET /api/notices", notices.List)
	mux.HandleFunc("GET /api/notices/{id}", notices.Show)
	mux.HandleFunc("GET /api/gallery", gallery.List)
	mux.HandleFunc("GET /api/members/{group}", members.List)
	mux.HandleFunc("GET /api/highlights", highlights.List)
	mux.HandleFunc("GET /api/pages/{section}", pages.List)
	mux.HandleFunc("GET /api/pages/{section}/{slug}", pages.Show)
	mux.HandleFunc("GET /sitemap.xml", sitemap.Sitemap)

	// Contact relay (rate limited)
	mux.HandleFunc("POST /api/contact", middleware.RateLimitContact()(contact.Send))
	mux.HandleFunc("OPTIONS /api/contact", contact.Preflight)

	// ============================================================================
	// ADMIN API (/admin/*)
	// ============================================================================

	mux.HandleFunc("POST /admin/login", middleware.RateLimitAuth()(auth.Login))
	mux.HandleFunc("POST /admin/logout", auth.Logout)
	mux.HandleFunc("GET /admin/session", middleware.RequireAdmin(auth.Session))

	mux.HandleFunc("POST /admin/seed", middleware.RequireAdmin(seed.Migrate))

	// Raw storage access
	mux.HandleFunc("POST /admin/uploads", middleware.RequireAdmin(uploads.Upload))
	mux.HandleFunc("DELETE /admin/uploads", middleware.RequireAdmin(uploads.Delete))

	// Events
	mux.HandleFunc("POST /admin/events", middleware.RequireAdmin(events.Create))
	mux.HandleFunc("PUT /admin/events/{id}", middleware.RequireAdmin(events.Update))
	mux.HandleFunc("DELETE /admin/events/{id}", middleware.RequireAdmin(events.Delete))
	mux.HandleFunc("POST /admin/events/{id}/poster", middleware.RequireAdmin(events.UploadPoster))
	mux.HandleFunc("DELETE /admin/events/{id}/poster", middleware.RequireAdmin(events.DeletePoster))

	// Notices
	mux.HandleFunc("POST /admin/notices", middleware.RequireAdmin(notices.Create))
	mux.HandleFunc("PUT /admin/notices/{id}", middleware.RequireAdmin(notices.Update))
	mux.HandleFunc("DELETE /admin/notices/{id}", middleware.RequireAdmin(notices.Delete))
	mux.HandleFunc("POST /admin/notices/{id}/attachments", middleware.RequireAdmin(notices.AddAttachments))
	mux.HandleFunc("DELETE /admin/notices/{id}/attachments/{index}", middleware.RequireAdmin(notices.RemoveAttachment))

	// Gallery
	mux.HandleFunc("POST /admin/gallery", middleware.RequireAdmin(gallery.Create))
	mux.HandleFunc("DELETE /admin/gallery/{id}", middleware.RequireAdmin(gallery.Delete))

	// Members
	mux.HandleFunc("POST /admin/members/{group}", middleware.RequireAdmin(members.Create))
	mux.HandleFunc("PUT /admin/members/{group}/{id}", middleware.RequireAdmin(members.Update))
	mux.HandleFunc("DELETE /admin/members/{group}/{id}", middleware.RequireAdmin(members.Delete))
	mux.HandleFunc("POST /admin/members/{group}/{id}/photo", middleware.RequireAdmin(members.UploadPhoto))
	mux.HandleFunc("DELETE /admin/members/{group}/{id}/photo", middleware.RequireAdmin(members.DeletePhoto))

	// Event highlights
	mux.HandleFunc("POST /admin/highlights", middleware.RequireAdmin(highlights.Create))
	mux.HandleFunc("DELETE /admin/highlights/{id}", middleware.RequireAdmin(highlights.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Metrics(mux),
		middleware.RequestLogging,
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.Config(cfg), // Before CSRF, which reads APP_ENV for the cookie
		middleware.CSRFProtection,
		middleware.AdminAuth(app.AuthService),
	)
}
