package queries_test

import (
	"context"
	"testing"
	"time"

	"sale/internal/adapters/out/postgres/orderrepo"
	"sale/internal/core/application/usecases/queries"
	"sale/internal/core/domain/model/kernel"
	"sale/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetExpiredQuotationsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetExpiredQuotationsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetExpiredQuotationsQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetExpiredQuotationsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetExpiredQuotationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetExpiredQuotationsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error
	suite.Require().NoError(err)
}

func (suite *GetExpiredQuotationsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetExpiredQuotationsQuery(time.Now())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetExpiredQuotationsQueryHandlerTestSuite) TestHandle_StaleQuotations_ReturnsTheirCodes() {
	suite.createOrderInState("SO-000001", order.Quotation)
	suite.createOrderInState("SO-000002", order.Quotation)
	suite.createOrderInState("SO-000003", order.Draft)
	suite.backdateOrders("SO-000001", "SO-000002", "SO-000003")

	query, err := queries.NewGetExpiredQuotationsQuery(time.Now().Add(-time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("SO-000001", result[0].Code)
	suite.Equal("SO-000002", result[1].Code)
}

func (suite *GetExpiredQuotationsQueryHandlerTestSuite) TestHandle_FreshQuotations_ReturnsEmptySlice() {
	suite.createOrderInState("SO-000001", order.Quotation)

	query, err := queries.NewGetExpiredQuotationsQuery(time.Now().Add(-time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetExpiredQuotationsQueryHandlerTestSuite) TestHandle_NonQuotationStates_AreIgnored() {
	suite.createOrderInState("SO-000001", order.Draft)
	suite.createOrderInState("SO-000002", order.Ordered)
	suite.createOrderInState("SO-000003", order.Cancelled)
	suite.backdateOrders("SO-000001", "SO-000002", "SO-000003")

	query, err := queries.NewGetExpiredQuotationsQuery(time.Now().Add(-time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetExpiredQuotationsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetExpiredQuotationsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetExpiredQuotationsQuery constructor")
}

func (suite *GetExpiredQuotationsQueryHandlerTestSuite) createOrderInState(code string, state order.State) {
	testOrder, err := order.NewOrder(kernel.NewUUID(), code, "WEBSITE")
	suite.Require().NoError(err)

	if state != order.Draft {
		suite.Require().NoError(testOrder.ChangeState(order.Quotation))
	}
	if state == order.Ordered || state == order.Cancelled {
		suite.Require().NoError(testOrder.ChangeState(state))
	}

	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)
}

// backdateOrders pushes updated_at two hours into the past so the orders
// fall behind any recent cutoff.
func (suite *GetExpiredQuotationsQueryHandlerTestSuite) backdateOrders(codes ...string) {
	stale := time.Now().Add(-2 * time.Hour)
	for _, code := range codes {
		err := suite.db.Exec("UPDATE orders SET updated_at = ? WHERE code = ?", stale, code).Error
		suite.Require().NoError(err)
	}
}

func TestGetExpiredQuotationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetExpiredQuotationsQueryHandlerTestSuite))
}
