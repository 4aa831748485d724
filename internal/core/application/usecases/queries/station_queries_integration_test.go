package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/stationrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/station"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type StationQueriesTestSuite struct {
	suite.Suite
	container   *pgcontainer.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	stationRepo *stationrepo.GormStationRepository

	queueHandler     queries.GetStationOrdersQueryHandler
	directoryHandler queries.GetStationsQueryHandler
}

func (suite *StationQueriesTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &stationrepo.StationDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.stationRepo = stationrepo.NewGormStationRepository(db)
	suite.queueHandler = queries.NewGetStationOrdersQueryHandler(db)
	suite.directoryHandler = queries.NewGetStationsQueryHandler(db)
}

func (suite *StationQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StationQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, stations").Error)
}

func (suite *StationQueriesTestSuite) addOrder(
	orgID kernel.UUID,
	sequence int,
	createdAt time.Time,
	items []order.Item,
) *order.Order {
	staff, err := order.NewStaff(kernel.NewUUID(), "Dana")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), orgID, kernel.NewUUID(),
		fmt.Sprintf("#ORD-%04d", sequence), "T1", "",
		staff, items, createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *StationQueriesTestSuite) item(name string, stationType station.Type) order.Item {
	item, err := order.NewItem(name, 1, 5.00)
	suite.Require().NoError(err)
	item, err = item.WithStation(stationType, "")
	suite.Require().NoError(err)
	return item
}

func (suite *StationQueriesTestSuite) TestGetStationOrders_KitchenSeesKitchenAndDessertItems() {
	orgID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	suite.addOrder(orgID, 1, now, []order.Item{
		suite.item("Pizza", station.TypeKitchen),
		suite.item("Tiramisu", station.TypeDessert),
		suite.item("Cola", station.TypeBeverage),
	})

	query, err := queries.NewGetStationOrdersQuery(orgID, station.FamilyKitchen)
	suite.Require().NoError(err)

	result, err := suite.queueHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Items, 2)
	suite.Equal("Pizza", result[0].Items[0].Name)
	suite.Equal("Tiramisu", result[0].Items[1].Name)
}

func (suite *StationQueriesTestSuite) TestGetStationOrders_BarExcludesOrdersWithoutBarItems() {
	orgID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	suite.addOrder(orgID, 1, now, []order.Item{
		suite.item("Pizza", station.TypeKitchen),
	})
	withBar := suite.addOrder(orgID, 2, now.Add(time.Minute), []order.Item{
		suite.item("Mojito", station.TypeBar),
		suite.item("Cola", station.TypeBeverage),
	})

	query, err := queries.NewGetStationOrdersQuery(orgID, station.FamilyBar)
	suite.Require().NoError(err)

	result, err := suite.queueHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(withBar.ID()))
	suite.Len(result[0].Items, 2)
}

func (suite *StationQueriesTestSuite) TestGetStationOrders_ExcludesFinishedOrders() {
	orgID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	staff, err := order.NewStaff(kernel.NewUUID(), "Dana")
	suite.Require().NoError(err)

	served, err := order.NewOrder(
		kernel.NewUUID(), orgID, kernel.NewUUID(),
		"#ORD-0001", "T1", "", staff,
		[]order.Item{suite.item("Pizza", station.TypeKitchen)}, now,
	)
	suite.Require().NoError(err)
	_, err = served.Dispatch(now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(served.UpdateStatus(order.Served, order.SourceKitchen, now.Add(2*time.Minute)))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), served))

	inPrep := suite.addOrder(orgID, 2, now.Add(time.Minute), []order.Item{
		suite.item("Burger", station.TypeKitchen),
	})
	_, err = inPrep.Dispatch(now.Add(2 * time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), inPrep))

	query, err := queries.NewGetStationOrdersQuery(orgID, station.FamilyKitchen)
	suite.Require().NoError(err)

	result, err := suite.queueHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(inPrep.ID()))
	suite.Equal(order.InPrep, result[0].Status)
}

func (suite *StationQueriesTestSuite) TestGetStationOrders_OldestFirst() {
	orgID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	suite.addOrder(orgID, 2, now, []order.Item{suite.item("Burger", station.TypeKitchen)})
	suite.addOrder(orgID, 1, now.Add(-time.Hour), []order.Item{suite.item("Pizza", station.TypeKitchen)})

	query, err := queries.NewGetStationOrdersQuery(orgID, station.FamilyKitchen)
	suite.Require().NoError(err)

	result, err := suite.queueHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("#ORD-0001", result[0].Number)
	suite.Equal("#ORD-0002", result[1].Number)
}

func (suite *StationQueriesTestSuite) TestGetStations_ReturnsOwnOrgSortedByName() {
	ctx := context.Background()
	orgID := kernel.NewUUID()

	grill, err := station.NewStation(kernel.NewUUID(), orgID, "Grill", station.TypeKitchen)
	suite.Require().NoError(err)
	bar, err := station.NewStation(kernel.NewUUID(), orgID, "Cocktail Bar", station.TypeBar)
	suite.Require().NoError(err)
	foreign, err := station.NewStation(kernel.NewUUID(), kernel.NewUUID(), "Elsewhere", station.TypeKitchen)
	suite.Require().NoError(err)
	for _, s := range []*station.Station{grill, bar, foreign} {
		suite.Require().NoError(suite.stationRepo.Add(ctx, s))
	}

	query, err := queries.NewGetStationsQuery(orgID)
	suite.Require().NoError(err)

	result, err := suite.directoryHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Cocktail Bar", result[0].Name)
	suite.Equal(station.TypeBar, result[0].Type)
	suite.Equal("Grill", result[1].Name)
	suite.True(result[0].Active)
}

func TestStationQueriesIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(StationQueriesTestSuite))
}
