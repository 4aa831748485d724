package http

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// orgFromRequest extracts the caller's organization from the X-Org-ID header.
func orgFromRequest(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(orgHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(orgHeader)
	}

	orgID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(orgHeader, err)
	}
	return orgID, nil
}

// orderScope extracts the organization header and the orderID path parameter.
func orderScope(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orgID, err := orgFromRequest(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	return orgID, orderID, nil
}

// intParam reads an integer query parameter, falling back when absent or malformed.
func intParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// respondError maps application errors onto HTTP status codes. Validation
// failures become 400, missing objects 404, duplicates 409, anything
// unrecognized 500.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, commands.ErrStaffNameIsRequired),
		errors.Is(err, commands.ErrStationNameIsRequired),
		errors.Is(err, commands.ErrPaymentMethodIsRequired),
		errors.Is(err, commands.ErrUpdateOrderCommandIsEmpty):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// itemInputs converts wire item lines into application inputs.
func itemInputs(items []ItemRequest) []commands.ItemInput {
	inputs := make([]commands.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = commands.ItemInput{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Description: item.Description,
			StationType: item.StationType,
			StationName: item.StationName,
		}
	}
	return inputs
}

func itemResponses(items []queries.OrderItemResponse) []ItemResponse {
	response := make([]ItemResponse, len(items))
	for i, item := range items {
		response[i] = ItemResponse{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Description: item.Description,
			StationType: item.StationType,
			StationName: item.StationName,
		}
	}
	return response
}

func timelineEntries(timeline []queries.TimelineEntryResponse) []TimelineEntry {
	entries := make([]TimelineEntry, len(timeline))
	for i, entry := range timeline {
		entries[i] = TimelineEntry{
			Title:       entry.Title,
			Time:        entry.Time,
			Description: entry.Description,
			Status:      entry.Outcome,
		}
	}
	return entries
}

func orderDetail(detail queries.GetOrderQueryResponse) OrderDetail {
	var payment *PaymentDetail
	if detail.Payment != nil {
		payment = &PaymentDetail{
			Method:      detail.Payment.Method,
			Amount:      detail.Payment.Amount,
			ProcessedAt: detail.Payment.ProcessedAt,
		}
	}

	return OrderDetail{
		ID:        detail.ID.String(),
		BranchID:  detail.BranchID.String(),
		Number:    detail.Number,
		Table:     detail.Table,
		Customer:  detail.Customer,
		StaffID:   detail.StaffID.String(),
		StaffName: detail.StaffName,
		Status:    detail.Status.String(),
		Items:     itemResponses(detail.Items),
		Subtotal:  detail.Subtotal,
		Tax:       detail.Tax,
		Total:     detail.Total,
		Payment:   payment,
		Timeline:  timelineEntries(detail.Timeline),
		CreatedAt: detail.CreatedAt,
		UpdatedAt: detail.UpdatedAt,
	}
}
