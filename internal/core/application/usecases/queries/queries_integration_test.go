package queries_test

import (
	"context"
	"testing"
	"time"

	"aftersales/internal/adapters/out/postgres"
	"aftersales/internal/adapters/out/postgres/attemptrepo"
	"aftersales/internal/adapters/out/postgres/complaintrepo"
	"aftersales/internal/adapters/out/postgres/orderrepo"
	"aftersales/internal/core/application/usecases/queries"
	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/core/domain/model/shipment"
	"aftersales/internal/core/domain/services"
	"aftersales/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite exercises the read-side handlers against a real
// PostgreSQL schema, seeding state through the write-side repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	uowf      *postgres.GormUnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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
	))

	suite.uowf = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, complaints, delivery_attempts",
	).Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) seedOrder(method order.PaymentMethod) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "wool blanket", 60.00, 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{item},
		method,
		60.00,
		"Robin Kim",
		"robin@example.com",
		"+15550102",
		"",
	)
	suite.Require().NoError(err)

	uow := suite.uowf.Create()
	ctx := context.Background()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
	return o
}

func (suite *QueriesIntegrationTestSuite) updateOrder(o *order.Order) {
	uow := suite.uowf.Create()
	ctx := context.Background()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesIntegrationTestSuite) seedAttempt(attempt *shipment.Attempt) {
	uow := suite.uowf.Create()
	ctx := context.Background()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AttemptRepository().Add(ctx, attempt))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderStatus_RetryAfterFailure() {
	ctx := context.Background()

	o := suite.seedOrder(order.PaymentMethodCard)
	suite.Require().NoError(o.MarkPaid())
	suite.Require().NoError(o.StartProcessing())
	suite.Require().NoError(o.MarkShipped(time.Now().UTC().Truncate(time.Microsecond)))
	suite.updateOrder(o)

	failed, err := shipment.NewAttempt(o.ID(), 1, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(failed.MarkFailed("nobody home"))
	suite.seedAttempt(failed)

	retry, err := shipment.NewAttempt(o.ID(), 2, time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.seedAttempt(retry)

	handler := queries.NewGetOrderStatusQueryHandler(suite.db)
	query, err := queries.NewGetOrderStatusQuery(o.ID())
	suite.Require().NoError(err)

	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Delivery attempt failed – next delivery scheduled on 2026-09-03", view.StatusText)
	suite.Equal(string(services.SeverityWarning), view.Severity)
	suite.Empty(view.Action)
	suite.Require().Len(view.Attempts, 2)
	suite.Equal("failed", view.Attempts[0].Status)
	suite.Equal("nobody home", view.Attempts[0].FailureReason)
	suite.Equal("scheduled", view.Attempts[1].Status)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderStatus_ReturningToProviderPrepaid() {
	ctx := context.Background()

	o := suite.seedOrder(order.PaymentMethodCard)
	suite.Require().NoError(o.MarkPaid())
	suite.Require().NoError(o.StartProcessing())
	suite.Require().NoError(o.MarkShipped(time.Now().UTC().Truncate(time.Microsecond)))
	suite.Require().NoError(o.MarkReturningToProvider())
	suite.updateOrder(o)

	handler := queries.NewGetOrderStatusQueryHandler(suite.db)
	query, err := queries.NewGetOrderStatusQuery(o.ID())
	suite.Require().NoError(err)

	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Delivery Failed – Returning to Provider", view.StatusText)
	suite.Equal(string(services.SeverityError), view.Severity)
	suite.Equal(string(services.ActionSelectRefundMethod), view.Action)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderStatus_UnknownOrder() {
	handler := queries.NewGetOrderStatusQueryHandler(suite.db)
	query, err := queries.NewGetOrderStatusQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) seedComplaint(c *complaint.Complaint) {
	uow := suite.uowf.Create()
	ctx := context.Background()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ComplaintRepository().Add(ctx, c))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesIntegrationTestSuite) TestGetComplaint_FullView() {
	ctx := context.Background()

	o := suite.seedOrder(order.PaymentMethodCard)
	c, err := complaint.NewComplaint(
		kernel.NewUUID(),
		o.ID(),
		o.UserID(),
		complaint.TypeDamaged,
		"chipped on one corner",
		[]string{"https://img.example.com/corner.jpg"},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.seedComplaint(c)

	handler := queries.NewGetComplaintQueryHandler(suite.db)
	query, err := queries.NewGetComplaintQuery(c.ID())
	suite.Require().NoError(err)

	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(view.ComplaintID.IsEqual(c.ID()))
	suite.True(view.OrderID.IsEqual(o.ID()))
	suite.Equal("damaged", view.ComplaintType)
	suite.Equal("chipped on one corner", view.Description)
	suite.Equal([]string{"https://img.example.com/corner.jpg"}, view.EvidenceImages)
	suite.Equal("investigating", view.InvestigationStatus)
	suite.Equal("none", view.PickupStatus)
	suite.Equal("none", view.ResolutionType)
	suite.Nil(view.ReplacementOrderID)
	suite.Equal(1, view.Version)
}

func (suite *QueriesIntegrationTestSuite) TestGetComplaint_NotFound() {
	handler := queries.NewGetComplaintQueryHandler(suite.db)
	query, err := queries.NewGetComplaintQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetComplaintsUnderInvestigation_SkipsResolved() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	open, err := complaint.NewComplaint(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		complaint.TypeReturn, "does not fit", nil, base)
	suite.Require().NoError(err)
	suite.seedComplaint(open)

	resolved, err := complaint.NewComplaint(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		complaint.TypeDamaged, "dented lid", nil, base.Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(resolved.Reject("normal wear"))
	suite.seedComplaint(resolved)

	handler := queries.NewGetComplaintsUnderInvestigationQueryHandler(suite.db)
	cases, err := handler.Handle(ctx, queries.NewGetComplaintsUnderInvestigationQuery())
	suite.Require().NoError(err)

	suite.Require().Len(cases, 1)
	suite.True(cases[0].ComplaintID.IsEqual(open.ID()))
	suite.Equal("return", cases[0].ComplaintType)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
