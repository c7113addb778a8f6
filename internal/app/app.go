package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chapterweb/chaptersite/internal/config"
	"github.com/chapterweb/chaptersite/internal/db"
	"github.com/chapterweb/chaptersite/internal/repository"
	"github.com/chapterweb/chaptersite/internal/service"
	"github.com/chapterweb/chaptersite/internal/storage"
)

const attachmentsBucket = "notice-attachments"

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	Storage          storage.Client
	AuthService      *service.AuthService
	EmailService     *service.EmailService
	ContactService   *service.ContactService
	UploadService    *service.UploadService
	SeedService      *service.SeedService
	EventService     *service.EventService
	NoticeService    *service.NoticeService
	GalleryService   *service.GalleryService
	MemberService    *service.MemberService
	HighlightService *service.HighlightService
	PageService      *service.PageService
	SitemapService   *service.SitemapService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = db.Close(database)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Storage
	store, err := storage.New(cfg)
	if err != nil {
		_ = db.Close(database)
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return Wire(cfg, database, store), nil
}

// Wire builds repositories and services on top of an open database and store.
func Wire(cfg *config.Config, database *sqlx.DB, store storage.Client) *App {
	// Repositories
	tableRepository := repository.NewTableRepository(database)
	eventRepository := repository.NewEventRepository(database)
	noticeRepository := repository.NewNoticeRepository(database)
	galleryRepository := repository.NewGalleryRepository(database)
	memberRepository := repository.NewMemberRepository(database)
	highlightRepository := repository.NewHighlightRepository(database)

	// Services
	codec := storage.NewCodec(cfg.StoragePublicURL)
	uploadService := service.NewUploadService(store, codec, cfg.StorageDefaultBucket, cfg.StorageCacheControl)

	imageField := func(folder string) service.SingleFileField {
		return service.SingleFileField{
			Uploads:   uploadService,
			MaxSizeMB: cfg.UploadMaxSizeMB,
			Folder:    folder,
			Bucket:    cfg.StorageDefaultBucket,
		}
	}
	attachments := service.AttachmentList{
		Uploads:   uploadService,
		MaxSizeMB: cfg.UploadMaxSizeMB,
		MaxFiles:  cfg.UploadMaxFiles,
		Folder:    "notices",
		Bucket:    attachmentsBucket,
	}

	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ContactInbox,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		cfg.AdminEmail,
		cfg.AdminPasswordHash,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
	)

	pageService := service.NewPageService(cfg.ContentPath, cfg.PageCacheSize, cfg.PageCacheTTL)

	return &App{
		Cfg:              cfg,
		DB:               database,
		Storage:          store,
		AuthService:      authService,
		EmailService:     emailService,
		ContactService:   service.NewContactService(emailService),
		UploadService:    uploadService,
		SeedService:      service.NewSeedService(tableRepository),
		EventService:     service.NewEventService(eventRepository, imageField("events")),
		NoticeService:    service.NewNoticeService(noticeRepository, attachments),
		GalleryService:   service.NewGalleryService(galleryRepository, imageField("gallery")),
		MemberService:    service.NewMemberService(memberRepository, imageField("members")),
		HighlightService: service.NewHighlightService(highlightRepository, imageField("highlights")),
		PageService:      pageService,
		SitemapService:   service.NewSitemapService(pageService, cfg.AppURL),
	}
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
