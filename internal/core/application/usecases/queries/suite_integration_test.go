package queries_test

import (
	"context"
	"time"

	postgres_adapter "pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/adapters/out/postgres/agentrepo"
	"pizzeria/internal/adapters/out/postgres/assignmentrepo"
	"pizzeria/internal/adapters/out/postgres/menurepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// storeSuite runs a PostgreSQL container for a query suite and seeds data
// through the real repositories.
type storeSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	orderRepo      *orderrepo.GormOrderRepository
	menuRepo       *menurepo.GormMenuRepository
	agentRepo      *agentrepo.GormAgentRepository
	assignmentRepo *assignmentrepo.GormAssignmentRepository
	storeID        kernel.UUID
	now            time.Time
}

func (suite *storeSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), postgres_adapter.Config())
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.menuRepo = menurepo.NewGormMenuRepository(db)
	suite.agentRepo = agentrepo.NewGormAgentRepository(db, &mockAggregateTracker{})
	suite.assignmentRepo = assignmentrepo.NewGormAssignmentRepository(db)
}

func (suite *storeSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *storeSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, menu_items, delivery_agents, delivery_assignments",
	).Error
	suite.Require().NoError(err)

	suite.storeID = kernel.NewUUID()
	suite.now = time.Date(2026, 4, 2, 19, 30, 0, 0, time.UTC)
}

func (suite *storeSuite) addMenuItem(name string, price int64, prep int) *menu.Item {
	item, err := menu.NewItem(kernel.NewUUID(), suite.storeID, name, kernel.MustNewMoney(price), prep, true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.Add(context.Background(), item))
	return item
}

// addOrder places an order for quantity units of item and walks it to status.
func (suite *storeSuite) addOrder(item *menu.Item, quantity int, status order.Status, createdAt time.Time) *order.Order {
	ctx := context.Background()

	line, err := order.NewLineItem(item.ID(), item.Name(), quantity, item.Price(), item.PrepMinutes())
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), suite.storeID, []order.LineItem{line},
		kernel.MustNewMoney(0), kernel.MustNewMoney(300), "", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	path := []order.Status{order.Accepted, order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered}
	if status == order.Cancelled {
		path = []order.Status{order.Cancelled}
	}
	for _, next := range path {
		if o.Status() == status {
			break
		}
		suite.Require().NoError(o.Transition(next, createdAt.Add(time.Minute)))
		suite.Require().NoError(suite.orderRepo.Update(ctx, o))
	}
	suite.Require().Equal(status, o.Status())
	return o
}
