package cmd

import (
	"log/slog"
	"strings"
	"time"

	"go.temporal.io/sdk/client"
	"gorm.io/gorm"

	inhttp "fulfillment/internal/adapters/in/http"
	inkafka "fulfillment/internal/adapters/in/kafka"
	outkafka "fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/temporalorch"
	"fulfillment/internal/core/application/services"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"
	"fulfillment/internal/workflows"
)

const defaultSuspensionStaleThreshold = 30 * time.Minute

// CompositionRoot wires adapters to use cases. Everything hangs off the
// shared gorm handle, the Kafka endpoints and the Temporal client.
type CompositionRoot struct {
	configs Config

	gormDB       *gorm.DB
	orders       *orderrepo.GormOrderRepository
	products     *catalogrepo.GormProductRepository
	users        *catalogrepo.GormUserRepository
	publisher    *outkafka.EventPublisher
	orchestrator *temporalorch.Orchestrator
	starter      *workflows.Starter

	log *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, temporalClient client.Client, log *slog.Logger) CompositionRoot {
	brokers := strings.Split(configs.KafkaHost, ",")

	root := CompositionRoot{
		configs:   configs,
		gormDB:    gormDB,
		orders:    orderrepo.NewGormOrderRepository(gormDB),
		products:  catalogrepo.NewGormProductRepository(gormDB),
		users:     catalogrepo.NewGormUserRepository(gormDB),
		publisher: outkafka.NewEventPublisher(brokers, configs.KafkaOrderEventsTopic, log),
		log:       log,
	}
	if temporalClient != nil {
		root.orchestrator = temporalorch.NewOrchestrator(temporalClient, log)
		root.starter = workflows.NewStarter(temporalClient, log)
	}
	return root
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.publisher, c.log)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orders, c.publisher, c.log)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders, c.publisher, c.log)
}

func (c *CompositionRoot) CreateSuspendOrderCommandHandler() commands.SuspendOrderCommandHandler {
	return commands.NewSuspendOrderCommandHandler(c.orders, c.log)
}

func (c *CompositionRoot) CreateConfirmStepCommandHandler() commands.ConfirmStepCommandHandler {
	return commands.NewConfirmStepCommandHandler(c.orders, c.orchestrator, c.log)
}

func (c *CompositionRoot) CreateIngestEventCommandHandler() commands.IngestEventCommandHandler {
	return commands.NewIngestEventCommandHandler(c.orders, c.log)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateCatalogService() services.CatalogService {
	return services.NewCatalogService(c.products, c.users)
}

func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	var starter inhttp.WorkflowStarter
	if c.starter != nil {
		starter = c.starter
	}
	return inhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateSuspendOrderCommandHandler(),
		c.CreateConfirmStepCommandHandler(),
		c.CreateGetOrderStatusQueryHandler(),
		c.CreateGetOrderTimelineQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetDashboardQueryHandler(),
		c.CreateCatalogService(),
		starter,
	)
}

func (c *CompositionRoot) CreateEventConsumer() *inkafka.Consumer {
	brokers := strings.Split(c.configs.KafkaHost, ",")
	return inkafka.NewConsumer(
		brokers,
		c.configs.KafkaInboundEventsTopic,
		c.configs.KafkaConsumerGroup,
		c.CreateIngestEventCommandHandler(),
		c.log,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	threshold := defaultSuspensionStaleThreshold
	if c.configs.SuspensionStaleThreshold != "" {
		if parsed, err := time.ParseDuration(c.configs.SuspensionStaleThreshold); err == nil {
			threshold = parsed
		} else {
			c.log.Warn("invalid SUSPENSION_STALE_THRESHOLD, using default",
				"value", c.configs.SuspensionStaleThreshold,
				"default", defaultSuspensionStaleThreshold.String())
		}
	}
	return jobs.NewJobManager(c.orders, threshold, c.log)
}

// Close releases the outbound connections the root owns.
func (c *CompositionRoot) Close() {
	if err := c.publisher.Close(); err != nil {
		c.log.Warn("failed to close event publisher", "error", err)
	}
}
