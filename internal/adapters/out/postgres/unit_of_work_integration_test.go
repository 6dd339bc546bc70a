package postgres_test

import (
	"context"
	"testing"
	"time"

	"aftersales/internal/adapters/out/postgres"
	"aftersales/internal/adapters/out/postgres/attemptrepo"
	"aftersales/internal/adapters/out/postgres/complaintrepo"
	"aftersales/internal/adapters/out/postgres/couponrepo"
	"aftersales/internal/adapters/out/postgres/orderrepo"
	"aftersales/internal/adapters/out/postgres/outboxrepo"
	"aftersales/internal/adapters/out/postgres/refundrepo"
	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that repository operations performed
// through one unit of work commit and roll back together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&complaintrepo.ComplaintDTO{},
		&attemptrepo.AttemptDTO{},
		&couponrepo.CouponDTO{},
		&refundrepo.RequestDTO{},
		&outboxrepo.IntentDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, complaints, delivery_attempts, coupons, refund_requests, notification_outbox",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "desk lamp", 40.00, 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{item},
		order.PaymentMethodCard,
		40.00,
		"Sam Lee",
		"sam@example.com",
		"+15550101",
		"",
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	testComplaint, err := complaint.NewComplaint(
		kernel.NewUUID(),
		testOrder.ID(),
		testOrder.UserID(),
		complaint.TypeNotReceived,
		"order never arrived",
		nil,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	intent, err := notification.NewIntent(
		kernel.NewUUID(),
		testComplaint.ID(),
		testOrder.ID(),
		testOrder.UserID(),
		notification.TypeComplaintRejected,
		testOrder.CustomerName(),
		testOrder.CustomerEmail(),
		map[string]string{"reason": "fresh tracking shows movement"},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.ComplaintRepository().Add(ctx, testComplaint))
	suite.Require().NoError(uow.NotificationOutbox().Add(ctx, intent))
	suite.Require().NoError(uow.Commit(ctx))

	readBack := suite.factory.Create()

	loadedOrder, err := readBack.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loadedOrder.IsEqual(testOrder))

	loadedComplaint, err := readBack.ComplaintRepository().Get(ctx, testComplaint.ID())
	suite.Require().NoError(err)
	suite.True(loadedComplaint.IsEqual(testComplaint))

	pending, err := readBack.NotificationOutbox().GetAllPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(notification.TypeComplaintRejected, pending[0].IntentType())
	suite.Equal("fresh tracking shows movement", pending[0].AdditionalData()["reason"])
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNextAttemptNumber_InsideTransaction() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	attemptRepo := uow.AttemptRepository()
	next, err := attemptRepo.NextAttemptNumber(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(1, next)

	attempt, err := shipment.NewAttempt(orderID, next, time.Now().UTC().AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Require().NoError(attemptRepo.Add(ctx, attempt))

	next, err = attemptRepo.NextAttemptNumber(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(2, next)

	suite.Require().NoError(uow.Commit(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
