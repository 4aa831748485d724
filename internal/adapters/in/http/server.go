// Package http exposes the order coordination use cases over a REST API.
// Every endpoint is organization scoped through the X-Org-ID header; an
// order outside the caller's organization is indistinguishable from a
// missing one.
package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/station"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// orgHeader carries the caller's organization on every request.
const orgHeader = "X-Org-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	dispatchOrderHandler  commands.DispatchOrderCommandHandler
	updateStatusHandler   commands.UpdateOrderStatusCommandHandler
	processPaymentHandler commands.ProcessPaymentCommandHandler
	recallOrderHandler    commands.RecallOrderCommandHandler
	createStationHandler  commands.CreateStationCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getStationOrdersHandler queries.GetStationOrdersQueryHandler
	getStationsHandler      queries.GetStationsQueryHandler
	getOrderHistoryHandler  queries.GetOrderHistoryQueryHandler
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	recallOrderHandler commands.RecallOrderCommandHandler,
	createStationHandler commands.CreateStationCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getStationOrdersHandler queries.GetStationOrdersQueryHandler,
	getStationsHandler queries.GetStationsQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateOrderHandler:      updateOrderHandler,
		dispatchOrderHandler:    dispatchOrderHandler,
		updateStatusHandler:     updateStatusHandler,
		processPaymentHandler:   processPaymentHandler,
		recallOrderHandler:      recallOrderHandler,
		createStationHandler:    createStationHandler,
		getOrdersHandler:        getOrdersHandler,
		getOrderHandler:         getOrderHandler,
		getStationOrdersHandler: getStationOrdersHandler,
		getStationsHandler:      getStationsHandler,
		getOrderHistoryHandler:  getOrderHistoryHandler,
		getOrderTimelineHandler: getOrderTimelineHandler,
	}
}

// RegisterRoutes attaches all REST endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/history", s.GetOrderHistory)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PATCH("/orders/:orderID", s.UpdateOrder)
	api.DELETE("/orders/:orderID", s.RecallOrder)
	api.POST("/orders/:orderID/dispatch", s.DispatchOrder)
	api.POST("/orders/:orderID/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderID/payment", s.ProcessPayment)
	api.GET("/orders/:orderID/history", s.GetOrderTimeline)

	api.GET("/kitchen/orders", s.GetKitchenOrders)
	api.POST("/kitchen/orders/:orderID/status", s.UpdateKitchenOrderStatus)
	api.GET("/bar/orders", s.GetBarOrders)
	api.POST("/bar/orders/:orderID/status", s.UpdateBarOrderStatus)

	api.GET("/stations", s.GetStations)
	api.POST("/stations", s.CreateStation)
}

// CreateOrder handles POST /api/v1/orders - opens a new order and returns
// it with its assigned number and computed totals.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orgID, err := orgFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("branchId", err))
	}
	staffID, err := kernel.UUIDFromString(req.StaffID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("staffId", err))
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, orgID, branchID, staffID,
		req.Table, req.Customer, req.StaffName,
		itemInputs(req.Items),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orgID, orderID, http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders - lists the organization's orders.
// Supports status, branch, page and pageSize query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	orgID, err := orgFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	page := intParam(ctx, "page", 1)
	pageSize := intParam(ctx, "pageSize", 0)

	query, err := queries.NewGetOrdersQuery(
		orgID, ctx.QueryParam("status"), ctx.QueryParam("branch"), page, pageSize,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:        o.ID.String(),
			BranchID:  o.BranchID.String(),
			Number:    o.Number,
			Table:     o.Table,
			Customer:  o.Customer,
			StaffName: o.StaffName,
			Status:    o.Status.String(),
			ItemCount: o.ItemCount,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID - returns one order's full detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orgID, orderID, err := orderScope(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orgID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetail(detail))
}

// UpdateOrder handles PATCH /api/v1/orders/:orderID - edits items, table or
// customer and returns the updated order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orgID, orderID, err := orderScope(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var items []commands.ItemInput
	if req.Items != nil {
		items = itemInputs(req.Items)
	}

	cmd, err := commands.NewUpdateOrderCommand(orgID, orderID, items, req.Table, req.Customer)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orgID, orderID, http.StatusOK)
}

// RecallOrder handles DELETE /api/v1/orders/:orderID - removes a mistaken order.
func (s *Server) RecallOrder(ctx echo.Context) error {
	orgID, orderID, err := orderScope(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecallOrderCommand(orgID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.recallOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:orderID/dispatch - sends the
// order to its preparation stations and returns it in its new state.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orgID, orderID, err := orderScope(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req DispatchOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targets := make([]order.DispatchTarget, 0, len(req.Targets))
	for _, target := range req.Targets {
		stationType, typeErr := station.TypeFromString(target.Station)
		if typeErr != nil {
			return respondError(ctx, typeErr)
		}
		targets = append(targets, order.DispatchTarget{Item: target.Item, Station: stationType})
	}

	cmd, err := commands.NewDispatchOrderCommand(orgID, orderID, targets)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orgID, orderID, http.StatusOK)
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderID/status - changes
// the order's lifecycle state on behalf of service staff.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	return s.updateStatus(ctx, order.SourceService)
}

// ProcessPayment handles POST /api/v1/orders/:orderID/payment - settles the
// order and returns it with the recorded payment.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	orgID, orderID, err := orderScope(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req ProcessPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewProcessPaymentCommand(orgID, orderID, req.Method, req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.processPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orgID, orderID, http.StatusOK)
}

// GetOrderHistory handles GET /api/v1/orders/history - lists past orders.
// Supports branch, status, dateFrom, dateTo, page and pageSize query parameters.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orgID, err := orgFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	page := intParam(ctx, "page", 1)
	pageSize := intParam(ctx, "pageSize", 0)

	query, err := queries.NewGetOrderHistoryQuery(
		orgID,
		ctx.QueryParam("branch"),
		ctx.QueryParam("status"),
		ctx.QueryParam("dateFrom"),
		ctx.QueryParam("dateTo"),
		page, pageSize,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:        o.ID.String(),
			BranchID:  o.BranchID.String(),
			Number:    o.Number,
			Table:     o.Table,
			Customer:  o.Customer,
			StaffName: o.StaffName,
			Status:    o.Status.String(),
			ItemCount: o.ItemCount,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTimeline handles GET /api/v1/orders/:orderID/history - returns the timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	orgID, orderID, err := orderScope(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderTimelineQuery(orgID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	timeline, err := s.getOrderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, timelineEntries(timeline))
}

// GetKitchenOrders handles GET /api/v1/kitchen/orders - the kitchen's queue.
func (s *Server) GetKitchenOrders(ctx echo.Context) error {
	return s.stationOrders(ctx, station.FamilyKitchen)
}

// UpdateKitchenOrderStatus handles POST /api/v1/kitchen/orders/:orderID/status.
// Status changes made here are attributed to the kitchen on the timeline.
func (s *Server) UpdateKitchenOrderStatus(ctx echo.Context) error {
	return s.updateStatus(ctx, order.SourceKitchen)
}

// GetBarOrders handles GET /api/v1/bar/orders - the bar's queue.
func (s *Server) GetBarOrders(ctx echo.Context) error {
	return s.stationOrders(ctx, station.FamilyBar)
}

// UpdateBarOrderStatus handles POST /api/v1/bar/orders/:orderID/status.
// Status changes made here are attributed to the bar on the timeline.
func (s *Server) UpdateBarOrderStatus(ctx echo.Context) error {
	return s.updateStatus(ctx, order.SourceBar)
}

// GetStations handles GET /api/v1/stations - lists the station directory.
func (s *Server) GetStations(ctx echo.Context) error {
	orgID, err := orgFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetStationsQuery(orgID)
	if err != nil {
		return respondError(ctx, err)
	}

	stations, err := s.getStationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Station, len(stations))
	for i, st := range stations {
		response[i] = Station{
			ID:     st.ID.String(),
			Name:   st.Name,
			Type:   st.Type.String(),
			Active: st.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStation handles POST /api/v1/stations - registers a preparation station.
func (s *Server) CreateStation(ctx echo.Context) error {
	orgID, err := orgFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateStationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stationType, err := station.TypeFromString(req.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	stationID := kernel.NewUUID()
	cmd, err := commands.NewCreateStationCommand(stationID, orgID, req.Name, stationType)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createStationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateStationResponse{ID: stationID.String()})
}

func (s *Server) updateStatus(ctx echo.Context, source order.UpdateSource) error {
	orgID, orderID, err := orderScope(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orgID, orderID, status, source)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orgID, orderID, http.StatusOK)
}

// respondOrder reads back the order's current state so every mutation
// returns the full resource, assigned number and recomputed totals included.
func (s *Server) respondOrder(ctx echo.Context, orgID, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetOrderQuery(orgID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(code, orderDetail(detail))
}

func (s *Server) stationOrders(ctx echo.Context, family station.Family) error {
	orgID, err := orgFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetStationOrdersQuery(orgID, family)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getStationOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]StationOrder, len(orders))
	for i, o := range orders {
		response[i] = StationOrder{
			ID:        o.ID.String(),
			BranchID:  o.BranchID.String(),
			Number:    o.Number,
			Table:     o.Table,
			Status:    o.Status.String(),
			Items:     itemResponses(o.Items),
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
