package cmd

import (
	"time"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/jrerepo"
	redisadapter "fulfillment/internal/adapters/out/redis"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const defaultContactCacheTTL = 15 * time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gate       *commands.DispatchGate
	resolver   *queries.ContactResolver
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) CompositionRoot {
	ttl := defaultContactCacheTTL
	if parsed, err := time.ParseDuration(config.ContactCacheTTL); err == nil && parsed > 0 {
		ttl = parsed
	}

	var publisher ports.OrderEventPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewOrderEventPublisher(config.KafkaHost, config.KafkaOrderChangedTopic)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       commands.NewDispatchGate(),
		resolver: queries.NewContactResolver(
			jrerepo.NewGormJREDirectory(gormDB),
			redisadapter.NewContactCache(redisClient),
			ttl,
		),
		publisher: publisher,
		logger:    logger,
	}
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSaveFinalCorrectionCommandHandler() commands.SaveFinalCorrectionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveFinalCorrectionCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateMarkBatchDispatchedCommandHandler() commands.MarkBatchDispatchedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkBatchDispatchedCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSendDispatchOtpCommandHandler() commands.SendDispatchOtpCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendDispatchOtpCommandHandler(f, c.resolver, c.gate)
}

func (c *CompositionRoot) CreateVerifyDispatchOtpCommandHandler() commands.VerifyDispatchOtpCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyDispatchOtpCommandHandler(f, c.publisher, c.gate)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetAssignedOrderGroupsQueryHandler() queries.GetAssignedOrderGroupsQueryHandler {
	return queries.NewGetAssignedOrderGroupsQueryHandler(
		c.uowFactory.Create().OrderRepository(), c.resolver)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory.Create().OtpRepository(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
