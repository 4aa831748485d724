// Package ws pushes order lifecycle events to station displays and branch
// dashboards over websockets. Clients join rooms after connecting; frames
// are fanned out to room members only, with no replay for late joiners.
package ws

import (
	"context"
	"log/slog"
	"net/http"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/station"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/eventbus"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// stationRoom names the room of one station family, e.g. "station:kitchen".
func stationRoom(family station.Family) string {
	return "station:" + family.String()
}

// branchRoom names the room of one branch, e.g. "branch:<uuid>".
func branchRoom(branchID kernel.UUID) string {
	return "branch:" + branchID.String()
}

// Gateway bridges the event bus and connected websocket clients. It derives
// station tickets from dispatch events and addresses them to the matching
// station rooms, while branch rooms receive the full order payloads.
type Gateway struct {
	registry *registry
	router   services.TicketRouter
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewGateway creates a gateway. Call Subscribe to attach it to a bus and
// register Serve as the websocket endpoint.
func NewGateway(router services.TicketRouter, logger *slog.Logger) *Gateway {
	return &Gateway{
		registry: newRegistry(),
		router:   router,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_gateway"),
	}
}

// Subscribe attaches the gateway to the bus for all order lifecycle events.
func (g *Gateway) Subscribe(bus *eventbus.Bus) {
	bus.Subscribe(g,
		order.EventOrderCreated,
		order.EventOrderDispatched,
		order.EventOrderStatusUpdated,
	)
}

// Serve handles GET /api/v1/live - upgrades the connection and services it
// until the client disconnects. Disconnecting removes the client from every
// room it joined.
func (g *Gateway) Serve(ctx echo.Context) error {
	conn, err := g.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	c := newClient(conn, g.logger)
	go c.writePump()
	g.logger.Info("Client connected", "remote", conn.RemoteAddr().String())

	g.readLoop(c)

	g.registry.remove(c)
	c.close()
	g.logger.Info("Client disconnected", "remote", conn.RemoteAddr().String())
	return nil
}

// readLoop consumes join messages until the connection drops. Malformed
// messages are ignored; the connection stays open.
func (g *Gateway) readLoop(c *client) {
	for {
		var msg joinMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		room, err := g.roomFor(msg)
		if err != nil {
			g.logger.Warn("Rejected join message", "type", msg.Type, "error", err)
			continue
		}

		g.registry.join(room, c)
		c.enqueue(Frame{Event: eventJoined, Data: joinedData{Room: room}})
	}
}

// roomFor resolves a join message to a room name.
func (g *Gateway) roomFor(msg joinMessage) (string, error) {
	switch msg.Type {
	case messageJoinStation:
		family, err := station.FamilyFromString(msg.Station)
		if err != nil {
			return "", err
		}
		return stationRoom(family), nil
	case messageJoinBranch:
		branchID, err := kernel.UUIDFromString(msg.BranchID)
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("branchId", err)
		}
		return branchRoom(branchID), nil
	default:
		return "", errs.NewValueIsInvalidError("type")
	}
}

// Handle consumes one lifecycle event from the bus and fans it out to the
// interested rooms. Unknown event types are ignored.
func (g *Gateway) Handle(_ context.Context, event eventbus.Event) error {
	switch e := event.(type) {
	case order.CreatedEvent:
		g.handleCreated(e)
	case order.DispatchedEvent:
		g.handleDispatched(e)
	case order.StatusUpdatedEvent:
		g.handleStatusUpdated(e)
	}
	return nil
}

func (g *Gateway) handleCreated(event order.CreatedEvent) {
	g.registry.broadcast(branchRoom(event.BranchID), Frame{
		Event: eventNewOrder,
		Data: orderPayload{
			OrderID:  event.OrderID.String(),
			BranchID: event.BranchID.String(),
			Number:   event.Number,
			Table:    event.Table,
			Status:   event.Status.String(),
			Items:    itemPayloads(event.Items),
			Total:    event.Total,
		},
	})
}

func (g *Gateway) handleDispatched(event order.DispatchedEvent) {
	tickets := g.router.Route(event.OrderID.String(), event.Number, event.Table, event.Items)
	for _, ticket := range tickets {
		g.registry.broadcast(stationRoom(ticket.Station), Frame{
			Event: eventNewTicket,
			Data: ticketPayload{
				OrderID:  ticket.OrderID,
				BranchID: event.BranchID.String(),
				Number:   ticket.Number,
				Table:    ticket.Table,
				Items:    itemPayloads(ticket.Items),
			},
		})
	}

	g.registry.broadcast(branchRoom(event.BranchID), Frame{
		Event: eventOrderDispatched,
		Data: orderPayload{
			OrderID:  event.OrderID.String(),
			BranchID: event.BranchID.String(),
			Number:   event.Number,
			Table:    event.Table,
			Items:    itemPayloads(event.Items),
		},
	})
}

func (g *Gateway) handleStatusUpdated(event order.StatusUpdatedEvent) {
	g.registry.broadcast(branchRoom(event.BranchID), Frame{
		Event: eventOrderUpdated,
		Data: orderPayload{
			OrderID:  event.OrderID.String(),
			BranchID: event.BranchID.String(),
			Number:   event.Number,
			Status:   event.Status.String(),
			Items:    itemPayloads(event.Items),
		},
	})
}
