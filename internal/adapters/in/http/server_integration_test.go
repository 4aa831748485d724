package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/stationrepo"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Exercises the REST surface against a real database through the same
// wiring the binary uses.
type ServerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	server    *httptest.Server
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderSequenceDTO{},
		&stationrepo.StationDTO{},
	))

	app := cmd.NewCompositionRoot(cmd.Config{}, db)
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDispatchOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateProcessPaymentCommandHandler(),
		app.CreateRecallOrderCommandHandler(),
		app.CreateCreateStationCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetStationOrdersQueryHandler(),
		app.CreateGetStationsQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateGetOrderTimelineQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	suite.server = httptest.NewServer(e)
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_sequences, stations").Error)
}

func (suite *ServerIntegrationTestSuite) do(
	method, path, orgID string, body any,
) (int, []byte) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequest(method, suite.server.URL+path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Org-ID", orgID)

	resp, err := suite.server.Client().Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)
	return resp.StatusCode, raw
}

func (suite *ServerIntegrationTestSuite) createOrderRequest() httpadapter.CreateOrderRequest {
	return httpadapter.CreateOrderRequest{
		BranchID:  kernel.NewUUID().String(),
		Table:     "T5",
		Customer:  "Walk-in",
		StaffID:   kernel.NewUUID().String(),
		StaffName: "Dana",
		Items: []httpadapter.ItemRequest{
			{Name: "Pizza", Quantity: 2, Price: 10.00, StationType: "kitchen"},
			{Name: "Cola", Quantity: 1, Price: 3.00, StationType: "bar"},
		},
	}
}

func (suite *ServerIntegrationTestSuite) TestCreateOrder_ReturnsPersistedOrder() {
	orgID := kernel.NewUUID().String()

	code, raw := suite.do(nethttp.MethodPost, "/api/v1/orders", orgID, suite.createOrderRequest())

	suite.Require().Equal(nethttp.StatusCreated, code, string(raw))
	var detail httpadapter.OrderDetail
	suite.Require().NoError(json.Unmarshal(raw, &detail))
	suite.NotEmpty(detail.ID)
	suite.Equal("#ORD-0001", detail.Number)
	suite.Equal("pending", detail.Status)
	suite.Equal("T5", detail.Table)
	suite.InDelta(23.00, detail.Subtotal, 0.001)
	suite.InDelta(2.30, detail.Tax, 0.001)
	suite.InDelta(25.30, detail.Total, 0.001)
	suite.Require().Len(detail.Items, 2)
	suite.Require().Len(detail.Timeline, 1)
	suite.Equal("Order Created", detail.Timeline[0].Title)
}

func (suite *ServerIntegrationTestSuite) TestMutations_ReturnUpdatedOrder() {
	orgID := kernel.NewUUID().String()

	code, raw := suite.do(nethttp.MethodPost, "/api/v1/orders", orgID, suite.createOrderRequest())
	suite.Require().Equal(nethttp.StatusCreated, code, string(raw))
	var created httpadapter.OrderDetail
	suite.Require().NoError(json.Unmarshal(raw, &created))

	base := fmt.Sprintf("/api/v1/orders/%s", created.ID)

	code, raw = suite.do(nethttp.MethodPost, base+"/dispatch", orgID, httpadapter.DispatchOrderRequest{})
	suite.Require().Equal(nethttp.StatusOK, code, string(raw))
	var dispatched httpadapter.OrderDetail
	suite.Require().NoError(json.Unmarshal(raw, &dispatched))
	suite.Equal("in_prep", dispatched.Status)
	suite.Len(dispatched.Timeline, 2)

	code, raw = suite.do(nethttp.MethodPost, base+"/status", orgID,
		httpadapter.UpdateStatusRequest{Status: "served"})
	suite.Require().Equal(nethttp.StatusOK, code, string(raw))
	var served httpadapter.OrderDetail
	suite.Require().NoError(json.Unmarshal(raw, &served))
	suite.Equal("served", served.Status)
	suite.Len(served.Timeline, 3)

	code, raw = suite.do(nethttp.MethodPost, base+"/payment", orgID,
		httpadapter.ProcessPaymentRequest{Method: "card", Amount: served.Total})
	suite.Require().Equal(nethttp.StatusOK, code, string(raw))
	var paid httpadapter.OrderDetail
	suite.Require().NoError(json.Unmarshal(raw, &paid))
	suite.Equal("completed", paid.Status)
	suite.Require().NotNil(paid.Payment)
	suite.Equal("card", paid.Payment.Method)
	suite.InDelta(25.30, paid.Payment.Amount, 0.001)
	suite.Len(paid.Timeline, 4)
}

func (suite *ServerIntegrationTestSuite) TestUpdateOrder_ReturnsRecomputedTotals() {
	orgID := kernel.NewUUID().String()

	code, raw := suite.do(nethttp.MethodPost, "/api/v1/orders", orgID, suite.createOrderRequest())
	suite.Require().Equal(nethttp.StatusCreated, code, string(raw))
	var created httpadapter.OrderDetail
	suite.Require().NoError(json.Unmarshal(raw, &created))

	code, raw = suite.do(nethttp.MethodPatch, "/api/v1/orders/"+created.ID, orgID,
		httpadapter.UpdateOrderRequest{
			Items: []httpadapter.ItemRequest{
				{Name: "Salad", Quantity: 1, Price: 8.00, StationType: "kitchen"},
			},
		})
	suite.Require().Equal(nethttp.StatusOK, code, string(raw))
	var updated httpadapter.OrderDetail
	suite.Require().NoError(json.Unmarshal(raw, &updated))
	suite.Require().Len(updated.Items, 1)
	suite.Equal("Salad", updated.Items[0].Name)
	suite.InDelta(8.00, updated.Subtotal, 0.001)
	suite.InDelta(8.80, updated.Total, 0.001)
}

func (suite *ServerIntegrationTestSuite) TestMutation_ForeignOrg_ReturnsNotFound() {
	orgID := kernel.NewUUID().String()

	code, raw := suite.do(nethttp.MethodPost, "/api/v1/orders", orgID, suite.createOrderRequest())
	suite.Require().Equal(nethttp.StatusCreated, code, string(raw))
	var created httpadapter.OrderDetail
	suite.Require().NoError(json.Unmarshal(raw, &created))

	foreignOrg := kernel.NewUUID().String()
	code, raw = suite.do(nethttp.MethodPost,
		"/api/v1/orders/"+created.ID+"/dispatch", foreignOrg, httpadapter.DispatchOrderRequest{})

	suite.Equal(nethttp.StatusNotFound, code, string(raw))
}

func TestServerIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ServerIntegrationTestSuite))
}
