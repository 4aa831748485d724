package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/station"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repository tracker dependency in tests
// where unit of work tracking is irrelevant.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderQueriesTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository

	listHandler     queries.GetOrdersQueryHandler
	detailHandler   queries.GetOrderQueryHandler
	historyHandler  queries.GetOrderHistoryQueryHandler
	timelineHandler queries.GetOrderTimelineQueryHandler
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderSequenceDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.listHandler = queries.NewGetOrdersQueryHandler(db)
	suite.detailHandler = queries.NewGetOrderQueryHandler(db)
	suite.historyHandler = queries.NewGetOrderHistoryQueryHandler(db)
	suite.timelineHandler = queries.NewGetOrderTimelineQueryHandler(db)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *OrderQueriesTestSuite) newOrder(orgID kernel.UUID, sequence int, createdAt time.Time) *order.Order {
	return suite.newBranchOrder(orgID, kernel.NewUUID(), sequence, createdAt)
}

func (suite *OrderQueriesTestSuite) newBranchOrder(
	orgID, branchID kernel.UUID, sequence int, createdAt time.Time,
) *order.Order {
	staff, err := order.NewStaff(kernel.NewUUID(), "Dana")
	suite.Require().NoError(err)

	pizza, err := order.NewItem("Pizza", 2, 12.50)
	suite.Require().NoError(err)
	pizza, err = pizza.WithStation(station.TypeKitchen, "Main Kitchen")
	suite.Require().NoError(err)

	cola, err := order.NewItem("Cola", 1, 3.00)
	suite.Require().NoError(err)
	cola, err = cola.WithStation(station.TypeBeverage, "Bar")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), orgID, branchID,
		fmt.Sprintf("#ORD-%04d", sequence), fmt.Sprintf("T%d", sequence), "Walk-in",
		staff, []order.Item{pizza, cola}, createdAt,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderQueriesTestSuite) TestGetOrders_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersQuery(kernel.NewUUID(), "", "", 1, 20)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_ReturnsOwnOrgNewestFirst() {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	first := suite.newOrder(orgID, 1, base.Add(-2*time.Hour))
	second := suite.newOrder(orgID, 2, base.Add(-1*time.Hour))
	foreign := suite.newOrder(kernel.NewUUID(), 3, base)
	for _, o := range []*order.Order{first, second, foreign} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	query, err := queries.NewGetOrdersQuery(orgID, "", "", 1, 20)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("#ORD-0002", result[0].Number)
	suite.Equal("#ORD-0001", result[1].Number)
	suite.Equal(order.Pending, result[0].Status)
	suite.Equal(2, result[0].ItemCount)
	suite.InDelta(30.80, result[0].Total, 0.001)
	suite.Equal("Dana", result[0].StaffName)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_StatusFilterAndPagination() {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	for i := 1; i <= 3; i++ {
		aggregate := suite.newOrder(orgID, i, base.Add(time.Duration(i)*time.Minute))
		if i == 3 {
			_, err := aggregate.Dispatch(base.Add(time.Hour))
			suite.Require().NoError(err)
		}
		suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))
	}

	query, err := queries.NewGetOrdersQuery(orgID, "pending", "", 1, 20)
	suite.Require().NoError(err)
	result, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(result, 2)

	query, err = queries.NewGetOrdersQuery(orgID, "", "", 2, 2)
	suite.Require().NoError(err)
	result, err = suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("#ORD-0001", result[0].Number)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_BranchFilter() {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	suite.Require().NoError(suite.orderRepo.Add(ctx, suite.newBranchOrder(orgID, branchID, 1, base)))
	suite.Require().NoError(suite.orderRepo.Add(ctx, suite.newOrder(orgID, 2, base)))

	query, err := queries.NewGetOrdersQuery(orgID, "", branchID.String(), 1, 20)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("#ORD-0001", result[0].Number)
	suite.True(result[0].BranchID.IsEqual(branchID))
}

func (suite *OrderQueriesTestSuite) TestGetOrder_FullDetail() {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	aggregate := suite.newOrder(orgID, 1, now)
	_, err := aggregate.Dispatch(now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.ProcessPayment("card", aggregate.Total(), now.Add(2*time.Minute)))
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(orgID, aggregate.ID())
	suite.Require().NoError(err)

	detail, err := suite.detailHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("#ORD-0001", detail.Number)
	suite.Equal("T1", detail.Table)
	suite.Equal("Walk-in", detail.Customer)
	suite.Equal(order.Completed, detail.Status)
	suite.InDelta(28.00, detail.Subtotal, 0.001)
	suite.InDelta(2.80, detail.Tax, 0.001)
	suite.InDelta(30.80, detail.Total, 0.001)

	suite.Require().Len(detail.Items, 2)
	suite.Equal("Pizza", detail.Items[0].Name)
	suite.Equal("kitchen", detail.Items[0].StationType)

	suite.Require().NotNil(detail.Payment)
	suite.Equal("card", detail.Payment.Method)
	suite.InDelta(30.80, detail.Payment.Amount, 0.001)

	suite.Require().Len(detail.Timeline, 3)
	suite.Equal("Order Created", detail.Timeline[0].Title)
	suite.Equal("Order Dispatched", detail.Timeline[1].Title)
	suite.Equal("Payment Processed", detail.Timeline[2].Title)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_WrongOrg_ReturnsNotFound() {
	ctx := context.Background()
	aggregate := suite.newOrder(kernel.NewUUID(), 1, time.Now().UTC())
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), aggregate.ID())
	suite.Require().NoError(err)

	_, err = suite.detailHandler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetOrderHistory_FiltersByBranchAndDateRange() {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	inBranchOld := suite.newBranchOrder(orgID, branchID, 1, base.Add(-72*time.Hour))
	inBranchRecent := suite.newBranchOrder(orgID, branchID, 2, base.Add(-time.Hour))
	otherBranch := suite.newBranchOrder(orgID, kernel.NewUUID(), 3, base.Add(-time.Hour))
	for _, o := range []*order.Order{inBranchOld, inBranchRecent, otherBranch} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	query, err := queries.NewGetOrderHistoryQuery(orgID, branchID.String(), "", "", "", 1, 20)
	suite.Require().NoError(err)
	result, err := suite.historyHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("#ORD-0002", result[0].Number)
	suite.Equal("#ORD-0001", result[1].Number)

	from := base.Add(-24 * time.Hour).Format(time.RFC3339)
	query, err = queries.NewGetOrderHistoryQuery(orgID, branchID.String(), "", from, "", 1, 20)
	suite.Require().NoError(err)
	result, err = suite.historyHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("#ORD-0002", result[0].Number)

	to := base.Add(-48 * time.Hour).Format(time.RFC3339)
	query, err = queries.NewGetOrderHistoryQuery(orgID, "", "", "", to, 1, 20)
	suite.Require().NoError(err)
	result, err = suite.historyHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("#ORD-0001", result[0].Number)
}

func (suite *OrderQueriesTestSuite) TestGetOrderHistory_IncludesTerminalStates() {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	cancelled := suite.newOrder(orgID, 1, now.Add(-time.Hour))
	err := cancelled.UpdateStatus(order.Cancelled, order.SourceService, now)
	suite.Require().NoError(err)
	pending := suite.newOrder(orgID, 2, now)
	for _, o := range []*order.Order{cancelled, pending} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	query, err := queries.NewGetOrderHistoryQuery(orgID, "", "cancelled", "", "", 1, 20)
	suite.Require().NoError(err)
	result, err := suite.historyHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(order.Cancelled, result[0].Status)

	query, err = queries.NewGetOrderHistoryQuery(orgID, "", "", "", "", 1, 20)
	suite.Require().NoError(err)
	result, err = suite.historyHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *OrderQueriesTestSuite) TestGetOrderTimeline_ReturnsEntriesInRecordedOrder() {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	aggregate := suite.newOrder(orgID, 1, now)
	_, err := aggregate.Dispatch(now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderTimelineQuery(orgID, aggregate.ID())
	suite.Require().NoError(err)

	timeline, err := suite.timelineHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(timeline, 2)
	suite.Equal("Order Created", timeline[0].Title)
	suite.Equal("Order Dispatched", timeline[1].Title)
	suite.Equal("success", timeline[1].Outcome)
}

func (suite *OrderQueriesTestSuite) TestGetOrderTimeline_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderTimelineQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.timelineHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderQueriesIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderQueriesTestSuite))
}
