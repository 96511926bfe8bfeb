package bootstrap

import (
	"context"
	"log"
	"time"

	"bookhive-be/internal/access"
	"bookhive-be/internal/config"
	"bookhive-be/internal/controller"
	"bookhive-be/internal/directory"
	"bookhive-be/internal/pkg/logger"
	"bookhive-be/internal/pkg/mailer"
	"bookhive-be/internal/pkg/markdown"
	"bookhive-be/internal/repository/unitofwork"
	"bookhive-be/internal/service"
	"bookhive-be/pkg/importer"
	pktNats "bookhive-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	TeamController    controller.ITeamController
	ShelfController   controller.IShelfController
	BookController    controller.IBookController
	ChapterController controller.IChapterController
	PageController    controller.IPageController
	ReorderController controller.IReorderController
	ExportController  controller.IExportController
	ImportController  controller.IImportController
	ViewController    controller.IViewController

	// Background services, run from main.go
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS, best effort: a missing broker disables the fan-out but never the API.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis backs the public view cache only.
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Ownership resolution
	dir := directory.NewDirectory(uowFactory)
	resolver := access.NewResolver(dir)

	renderer := markdown.NewRenderer()

	publisherService := service.NewPublisherService(pubSub, cfg.App.EventTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, uowFactory)

	summarizer := importer.NewAnthropicSummarizer(cfg.Importer.AnthropicAPIKey, cfg.Importer.Model)
	imp := importer.NewImporter(time.Duration(cfg.Importer.ScrapeTimeout)*time.Second, summarizer)

	authService := service.NewAuthService(uowFactory)
	teamService := service.NewTeamService(uowFactory, resolver, dir, emailService)
	shelfService := service.NewShelfService(uowFactory, resolver)
	bookService := service.NewBookService(uowFactory, resolver)
	chapterService := service.NewChapterService(uowFactory, resolver)
	revisionService := service.NewRevisionService(uowFactory, resolver, publisherService, natsPub)
	pageService := service.NewPageService(uowFactory, resolver, renderer, revisionService, publisherService, natsPub)
	reorderService := service.NewReorderService(uowFactory, resolver)
	viewService := service.NewViewService(uowFactory, rdb)
	exportService := service.NewExportService(uowFactory, resolver, time.Duration(cfg.Export.TimeoutSeconds)*time.Second)
	importService := service.NewImportService(uowFactory, resolver, imp, renderer, publisherService, natsPub)

	return &Container{
		AuthController:    controller.NewAuthController(authService),
		TeamController:    controller.NewTeamController(teamService),
		ShelfController:   controller.NewShelfController(shelfService),
		BookController:    controller.NewBookController(bookService),
		ChapterController: controller.NewChapterController(chapterService),
		PageController:    controller.NewPageController(pageService, revisionService),
		ReorderController: controller.NewReorderController(reorderService),
		ExportController:  controller.NewExportController(exportService),
		ImportController:  controller.NewImportController(importService),
		ViewController:    controller.NewViewController(viewService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
