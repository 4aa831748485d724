package cmd

import (
	"log/slog"
	"os"

	"restaurant/internal/adapters/in/ws"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/eventbus"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	eventBus   *eventbus.Bus
	gateway    *ws.Gateway
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	bus := eventbus.NewBus(logger)

	gateway := ws.NewGateway(services.NewTicketRouter(), logger)
	gateway.Subscribe(bus)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		eventBus:   bus,
		gateway:    gateway,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) EventBus() *eventbus.Bus {
	return c.eventBus
}

func (c *CompositionRoot) Gateway() *ws.Gateway {
	return c.gateway
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stationUoWFactory() commands.StationUoWFactory {
	return FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecallOrderCommandHandler() commands.RecallOrderCommandHandler {
	return commands.NewRecallOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePurgeStaleOrdersCommandHandler() commands.PurgeStaleOrdersCommandHandler {
	return commands.NewPurgeStaleOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateStationCommandHandler() commands.CreateStationCommandHandler {
	return commands.NewCreateStationCommandHandler(c.stationUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStationOrdersQueryHandler() queries.GetStationOrdersQueryHandler {
	return queries.NewGetStationOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStationsQueryHandler() queries.GetStationsQueryHandler {
	return queries.NewGetStationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStationUoWFactory func() commands.StationUoW

func (f FuncStationUoWFactory) Create() commands.StationUoW {
	return f()
}
