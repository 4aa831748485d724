package commands

import (
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/station"
)

// ItemInput carries one requested line item across the application boundary.
// It is a plain data holder: validation happens when the input is converted
// into a domain item.
type ItemInput struct {
	Name        string
	Quantity    int
	Price       float64
	Description string
	StationType string
	StationName string
}

// buildItems converts raw item inputs into validated domain items.
// An input with an empty station type produces an unrouted item.
func buildItems(inputs []ItemInput) ([]order.Item, error) {
	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := order.NewItem(input.Name, input.Quantity, input.Price)
		if err != nil {
			return nil, err
		}
		if input.Description != "" {
			item = item.WithDescription(input.Description)
		}
		if input.StationType != "" {
			stationType, typeErr := station.TypeFromString(input.StationType)
			if typeErr != nil {
				return nil, typeErr
			}
			item, err = item.WithStation(stationType, input.StationName)
			if err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	return items, nil
}
