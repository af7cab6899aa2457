package cmd

import (
	"log/slog"

	httpin "orderboard/internal/adapters/in/http"
	"orderboard/internal/adapters/out/broadcast"
	"orderboard/internal/adapters/out/gormdb"
	"orderboard/internal/adapters/out/gormdb/orderrepo"
	"orderboard/internal/adapters/out/memory"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/application/usecases/sessions"
	"orderboard/internal/core/ports"
	"orderboard/internal/jobs"
	"orderboard/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs Config
	logger  *slog.Logger

	gormDB     *gorm.DB
	reader     ports.OrderReader
	uowFactory ports.UnitOfWorkFactory

	hub       *broadcast.Hub
	sequencer *commands.Sequencer
	clock     clock.Clock
}

// NewCompositionRoot opens the configured record store and builds the
// shared infrastructure every handler depends on.
func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		configs:   configs,
		logger:    logger,
		hub:       broadcast.NewHub(configs.SSEBuffer, logger),
		sequencer: commands.NewSequencer(),
		clock:     clock.NewSystem(),
	}

	switch configs.StoreDriver {
	case StorePostgres, StoreMySQL:
		db, err := gormdb.Open(configs.StoreDriver, configs.DSN())
		if err != nil {
			return nil, err
		}
		root.gormDB = db
		root.reader = orderrepo.NewGormOrderRepository(db)
		root.uowFactory = gormdb.NewGormUnitOfWorkFactory(db)
	default:
		store := memory.NewStore()
		root.reader = store
		root.uowFactory = memory.NewUnitOfWorkFactory(store)
	}

	logger.Info("record store ready", "driver", configs.StoreDriver)
	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.hub, c.sequencer, c.clock)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.hub, c.sequencer, c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.hub, c.sequencer)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateOpenSessionHandler() sessions.OpenSessionHandler {
	return sessions.NewOpenSessionHandler(c.sequencer, c.reader, c.hub, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.hub,
		c.CreateListOrdersQueryHandler(),
		jobs.Schedules{
			Heartbeat: c.configs.HeartbeatSchedule,
			Stats:     c.configs.StatsSchedule,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateOpenSessionHandler(),
		c.logger,
	)

	return httpin.NewRouter(server, httpin.RouterConfig{
		AllowOrigins: c.configs.CORSOrigins,
		StaticDir:    c.configs.StaticDir,
	}, c.logger)
}

// CloseStreams ends every open event stream. Called before the HTTP server
// shuts down, since streams never finish on their own.
func (c *CompositionRoot) CloseStreams() {
	c.hub.Close()
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	return gormdb.Close(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
