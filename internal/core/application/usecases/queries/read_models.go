package queries

import (
	"encoding/json"
	"time"
)

// OrderItemResponse represents a single order line in read model responses.
type OrderItemResponse struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	StationType string  `json:"stationType,omitempty"`
	StationName string  `json:"stationName,omitempty"`
}

// PaymentResponse represents payment details in read model responses.
type PaymentResponse struct {
	Method      string    `json:"method"`
	Amount      float64   `json:"amount"`
	ProcessedAt time.Time `json:"processedAt"`
}

// TimelineEntryResponse represents a single audit trail entry in read model responses.
// Outcome is stored under the "status" key in the persisted JSON document.
type TimelineEntryResponse struct {
	Title       string    `json:"title"`
	Time        time.Time `json:"time"`
	Description string    `json:"description,omitempty"`
	Outcome     string    `json:"status"`
}

// unmarshalItems decodes the jsonb items column. A NULL column yields an empty slice.
func unmarshalItems(raw []byte) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// unmarshalPayment decodes the jsonb payment column. A NULL column yields nil.
func unmarshalPayment(raw []byte) (*PaymentResponse, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var payment PaymentResponse
	if err := json.Unmarshal(raw, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// unmarshalTimeline decodes the jsonb timeline column. A NULL column yields an empty slice.
func unmarshalTimeline(raw []byte) ([]TimelineEntryResponse, error) {
	timeline := make([]TimelineEntryResponse, 0)
	if len(raw) == 0 {
		return timeline, nil
	}
	if err := json.Unmarshal(raw, &timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}
