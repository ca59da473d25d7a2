package cmd

import (
	"log/slog"
	"time"

	httpin "github.com/ayobami7/click-and-collect-notif/internal/adapters/in/http"
	"github.com/ayobami7/click-and-collect-notif/internal/adapters/out/notifier"
	"github.com/ayobami7/click-and-collect-notif/internal/adapters/out/postgres"
	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/commands"
	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/queries"
	"github.com/ayobami7/click-and-collect-notif/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *notifier.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        notifier.NewHub(config.EventBufferSize, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) Hub() *notifier.Hub {
	return c.hub
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.collectionUoWFactory(), c.config.BarcodePrefix)
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	return commands.NewMarkReadyCommandHandler(c.collectionUoWFactory())
}

func (c *CompositionRoot) CreateSubmitCollectionCommandHandler() commands.SubmitCollectionCommandHandler {
	return commands.NewSubmitCollectionCommandHandler(c.collectionUoWFactory(), c.hub, c.logger)
}

func (c *CompositionRoot) CreateCompleteCollectionCommandHandler() commands.CompleteCollectionCommandHandler {
	return commands.NewCompleteCollectionCommandHandler(c.collectionUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateCancelCollectionCommandHandler() commands.CancelCollectionCommandHandler {
	return commands.NewCancelCollectionCommandHandler(c.collectionUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCollectionCommandHandler() commands.DeleteCollectionCommandHandler {
	return commands.NewDeleteCollectionCommandHandler(c.collectionUoWFactory())
}

func (c *CompositionRoot) CreatePurgeExpiredCollectionsCommandHandler() commands.PurgeExpiredCollectionsCommandHandler {
	return commands.NewPurgeExpiredCollectionsCommandHandler(c.collectionUoWFactory())
}

func (c *CompositionRoot) CreateGetCollectionsQueryHandler() queries.GetCollectionsQueryHandler {
	return queries.NewGetCollectionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCollectionQueryHandler() queries.GetCollectionQueryHandler {
	return queries.NewGetCollectionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateMarkReadyCommandHandler(),
		c.CreateSubmitCollectionCommandHandler(),
		c.CreateCompleteCollectionCommandHandler(),
		c.CreateCancelCollectionCommandHandler(),
		c.CreateDeleteCollectionCommandHandler(),
		c.CreateGetCollectionsQueryHandler(),
		c.CreateGetCollectionQueryHandler(),
	)
}

func (c *CompositionRoot) CreateWebSocketHandler() *httpin.WebSocketHandler {
	return httpin.NewWebSocketHandler(c.hub, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	retention := c.config.RetentionWindow
	if retention <= 0 {
		retention = 24 * time.Hour
	}
	return jobs.NewJobManager(c.CreatePurgeExpiredCollectionsCommandHandler(), retention, c.logger)
}

func (c *CompositionRoot) collectionUoWFactory() commands.CollectionUoWFactory {
	return FuncCollectionUoWFactory(func() commands.CollectionUoW {
		return c.uowFactory.Create()
	})
}

type FuncCollectionUoWFactory func() commands.CollectionUoW

func (f FuncCollectionUoWFactory) Create() commands.CollectionUoW {
	return f()
}
