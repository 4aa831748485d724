package ws

import (
	"restaurant/internal/core/domain/model/order"
)

// Frame is the envelope of every message pushed to a connected client.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Client-to-server message types.
const (
	messageJoinStation = "join-station"
	messageJoinBranch  = "join-branch"
)

// Server-to-client event names.
const (
	eventJoined          = "joined"
	eventNewOrder        = "new-order"
	eventNewTicket       = "new-ticket"
	eventOrderDispatched = "order-dispatched"
	eventOrderUpdated    = "order-updated"
)

// joinMessage is what a client sends to enter a room.
type joinMessage struct {
	Type     string `json:"type"`
	Station  string `json:"station,omitempty"`
	BranchID string `json:"branchId,omitempty"`
}

// joinedData acknowledges a room subscription.
type joinedData struct {
	Room string `json:"room"`
}

// itemPayload is one order line in pushed frames.
type itemPayload struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	StationType string  `json:"stationType,omitempty"`
	StationName string  `json:"stationName,omitempty"`
}

// orderPayload describes an order in new-order, order-dispatched and
// order-updated frames.
type orderPayload struct {
	OrderID  string        `json:"orderId"`
	BranchID string        `json:"branchId"`
	Number   string        `json:"number,omitempty"`
	Table    string        `json:"table,omitempty"`
	Status   string        `json:"status,omitempty"`
	Items    []itemPayload `json:"items"`
	Total    float64       `json:"total,omitempty"`
}

// ticketPayload describes one station's share of a dispatched order.
type ticketPayload struct {
	OrderID  string        `json:"orderId"`
	BranchID string        `json:"branchId"`
	Number   string        `json:"number"`
	Table    string        `json:"table"`
	Items    []itemPayload `json:"items"`
}

func itemPayloads(items []order.Item) []itemPayload {
	payload := make([]itemPayload, len(items))
	for i, item := range items {
		payload[i] = itemPayload{
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
			StationType: item.StationType().String(),
			StationName: item.StationName(),
		}
	}
	return payload
}
