package cmd

import (
	"log/slog"

	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/notifications"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config            Config
	gormDB            *gorm.DB
	uowFactory        *postgres.GormUnitOfWorkFactory
	pricing           commands.Pricing
	deliveryEstimator services.DeliveryTimeEstimator
	kitchenEstimator  services.KitchenLoadEstimator
	logger            *slog.Logger
}

// NewCompositionRoot wires use cases onto the database. A nil cursor keeps the
// Postgres dispatch cursor.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	cursor ports.DispatchCursor,
	logger *slog.Logger,
) (CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	deliveryFee, err := kernel.NewMoney(config.DeliveryFeeCents)
	if err != nil {
		return CompositionRoot{}, err
	}
	deliveryEstimator, err := services.NewDeliveryTimeEstimator(config.DefaultPrepMinutes, config.DeliveryMinutes)
	if err != nil {
		return CompositionRoot{}, err
	}
	kitchenEstimator, err := services.NewKitchenLoadEstimator(config.KitchenMediumThreshold, config.KitchenHighThreshold)
	if err != nil {
		return CompositionRoot{}, err
	}

	opts := []postgres.Option{
		postgres.WithEventPublisher(publisher),
		postgres.WithLogger(logger),
	}
	if cursor != nil {
		opts = append(opts, postgres.WithDispatchCursor(cursor))
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, opts...),
		pricing: commands.Pricing{
			TaxRateBasisPoints: config.TaxRateBasisPoints,
			DeliveryFee:        deliveryFee,
		},
		deliveryEstimator: deliveryEstimator,
		kitchenEstimator:  kitchenEstimator,
		logger:            logger,
	}, nil
}

// NewEventPublisher fans status changes out to Kafka, or to the log when no
// broker is configured, and to the transition counter. close releases the
// Kafka writer.
func NewEventPublisher(
	config Config,
	registry prometheus.Registerer,
	logger *slog.Logger,
) (publisher ports.EventPublisher, closeFn func() error, err error) {
	metrics, err := notifications.NewMetricsPublisher(registry)
	if err != nil {
		return nil, nil, err
	}

	if config.KafkaHost == "" {
		return notifications.Fanout{notifications.NewLogPublisher(logger), metrics}, func() error { return nil }, nil
	}

	kafka, err := notifications.NewKafkaPublisher(config.KafkaHost, config.KafkaOrderChangedTopic, logger)
	if err != nil {
		return nil, nil, err
	}
	return notifications.Fanout{kafka, metrics}, kafka.Close, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.pricing, c.deliveryEstimator, nil)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateAutoCancelStaleOrdersCommandHandler() commands.AutoCancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoCancelStaleOrdersCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateAutoAssignDeliveryCommandHandler() commands.AutoAssignDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignDeliveryCommandHandler(f, c.config.PickupLead, nil)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAgentCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateSetAgentActiveCommandHandler() commands.SetAgentActiveCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAgentActiveCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAgentsQueryHandler() queries.ListAgentsQueryHandler {
	return queries.NewListAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateKitchenWorkloadQueryHandler() queries.KitchenWorkloadQueryHandler {
	return queries.NewKitchenWorkloadQueryHandler(c.gormDB, c.kitchenEstimator)
}

func (c *CompositionRoot) CreateOptimizeKitchenQueueQueryHandler() queries.OptimizeKitchenQueueQueryHandler {
	return queries.NewOptimizeKitchenQueueQueryHandler(c.gormDB, c.kitchenEstimator)
}

func (c *CompositionRoot) CreateEstimateDeliveryTimeQueryHandler() queries.EstimateDeliveryTimeQueryHandler {
	return queries.NewEstimateDeliveryTimeQueryHandler(c.gormDB, c.deliveryEstimator, nil)
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateMenuItem:        c.CreateCreateMenuItemCommandHandler(),
		CreateAgent:           c.CreateCreateAgentCommandHandler(),
		SetAgentActive:        c.CreateSetAgentActiveCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		TransitionOrderStatus: c.CreateTransitionOrderStatusCommandHandler(),
		AutoAssignDelivery:    c.CreateAutoAssignDeliveryCommandHandler(),
		UpdateDeliveryStatus:  c.CreateUpdateDeliveryStatusCommandHandler(),
		AutoCancelStaleOrders: c.CreateAutoCancelStaleOrdersCommandHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		ListAgents:            c.CreateListAgentsQueryHandler(),
		KitchenWorkload:       c.CreateKitchenWorkloadQueryHandler(),
		OptimizeKitchenQueue:  c.CreateOptimizeKitchenQueueQueryHandler(),
		EstimateDeliveryTime:  c.CreateEstimateDeliveryTimeQueryHandler(),
	}
	return httpin.NewServer(handlers, c.config.StaleAfter, c.logger)
}

// CreateJobManager returns a manager with no jobs when no stores are configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if len(c.config.JobsStoreIDs) == 0 {
		return jobs.NewJobManager()
	}
	return jobs.NewJobManager(
		jobs.NewStaleOrderReaperJob(c.CreateAutoCancelStaleOrdersCommandHandler(),
			c.config.JobsStoreIDs, c.config.StaleAfter, c.config.ReaperSchedule, c.logger),
		jobs.NewDeliveryAssignmentJob(c.CreateAutoAssignDeliveryCommandHandler(),
			c.config.JobsStoreIDs, c.config.AssignmentSchedule, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
