package http

import (
	"time"
)

// Error is the uniform error envelope returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest carries one requested order line.
type ItemRequest struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	StationType string  `json:"stationType,omitempty"`
	StationName string  `json:"stationName,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	BranchID  string        `json:"branchId"`
	Table     string        `json:"table"`
	Customer  string        `json:"customer,omitempty"`
	StaffID   string        `json:"staffId"`
	StaffName string        `json:"staffName"`
	Items     []ItemRequest `json:"items"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/orders/:orderID.
// Absent fields leave the order unchanged.
type UpdateOrderRequest struct {
	Items    []ItemRequest `json:"items,omitempty"`
	Table    *string       `json:"table,omitempty"`
	Customer *string       `json:"customer,omitempty"`
}

// DispatchTargetRequest names an item and the station type it should go to.
type DispatchTargetRequest struct {
	Item    string `json:"item"`
	Station string `json:"station"`
}

// DispatchOrderRequest is the body of POST /api/v1/orders/:orderID/dispatch.
// Targets are optional routing hints recorded alongside the dispatch.
type DispatchOrderRequest struct {
	Targets []DispatchTargetRequest `json:"targets,omitempty"`
}

// UpdateStatusRequest is the body of the status change endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ProcessPaymentRequest is the body of POST /api/v1/orders/:orderID/payment.
type ProcessPaymentRequest struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// CreateStationRequest is the body of POST /api/v1/stations.
type CreateStationRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CreateStationResponse returns the identifier assigned to a new station.
type CreateStationResponse struct {
	ID string `json:"id"`
}

// OrderSummary is one entry of an order listing.
type OrderSummary struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branchId"`
	Number    string    `json:"number"`
	Table     string    `json:"table"`
	Customer  string    `json:"customer,omitempty"`
	StaffName string    `json:"staffName"`
	Status    string    `json:"status"`
	ItemCount int       `json:"itemCount"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemResponse is one order line in detail views.
type ItemResponse struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	StationType string  `json:"stationType,omitempty"`
	StationName string  `json:"stationName,omitempty"`
}

// PaymentDetail describes a recorded payment.
type PaymentDetail struct {
	Method      string    `json:"method"`
	Amount      float64   `json:"amount"`
	ProcessedAt time.Time `json:"processedAt"`
}

// TimelineEntry is one audit trail entry of an order.
type TimelineEntry struct {
	Title       string    `json:"title"`
	Time        time.Time `json:"time"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
}

// OrderDetail is the full read model of one order.
type OrderDetail struct {
	ID        string          `json:"id"`
	BranchID  string          `json:"branchId"`
	Number    string          `json:"number"`
	Table     string          `json:"table"`
	Customer  string          `json:"customer,omitempty"`
	StaffID   string          `json:"staffId"`
	StaffName string          `json:"staffName"`
	Status    string          `json:"status"`
	Items     []ItemResponse  `json:"items"`
	Subtotal  float64         `json:"subtotal"`
	Tax       float64         `json:"tax"`
	Total     float64         `json:"total"`
	Payment   *PaymentDetail  `json:"payment,omitempty"`
	Timeline  []TimelineEntry `json:"timeline"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// StationOrder is one order on a station's preparation queue, with its
// items narrowed to the ones that station family prepares.
type StationOrder struct {
	ID        string         `json:"id"`
	BranchID  string         `json:"branchId"`
	Number    string         `json:"number"`
	Table     string         `json:"table"`
	Status    string         `json:"status"`
	Items     []ItemResponse `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Station is one entry of the station directory.
type Station struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}
