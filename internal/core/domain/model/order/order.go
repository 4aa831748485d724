package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// taxRate is the flat tax applied to every order's subtotal.
const taxRate = 0.10

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order would end up with an
	// empty item list.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// UpdateSource identifies which surface requested a status change. It only
// affects how the change is recorded on the order's timeline.
type UpdateSource string

const (
	// SourceService marks status changes coming from the management surface.
	SourceService UpdateSource = "service"

	// SourceKitchen marks status changes coming from the kitchen display.
	SourceKitchen UpdateSource = "kitchen"

	// SourceBar marks status changes coming from the bar display.
	SourceBar UpdateSource = "bar"
)

// Staff identifies the staff member who opened an order.
type Staff struct {
	id   kernel.UUID
	name string
}

// NewStaff creates a staff reference. The name is required.
func NewStaff(id kernel.UUID, name string) (Staff, error) {
	if err := id.Validate(); err != nil {
		return Staff{}, err
	}
	if name == "" {
		return Staff{}, errs.NewValueIsRequiredError("name")
	}
	return Staff{id: id, name: name}, nil
}

// ID returns the staff member's identifier.
func (s Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the staff member's display name.
func (s Staff) Name() string {
	return s.name
}

// Order represents a restaurant order. It is the aggregate root that owns
// the order's lifecycle from creation through dispatch, service, and
// payment, along with its monetary totals and audit timeline.
//
// Order follows these invariants:
//   - Belongs to exactly one organization; the organization never changes
//   - Contains at least one validated item
//   - Total always equals subtotal plus tax; tax is a flat 10% of subtotal
//   - The timeline is append-only and records every lifecycle step
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orgID scopes the order to its owning organization
	orgID kernel.UUID

	// branchID identifies the branch (physical location) the order belongs to
	branchID kernel.UUID

	// number is the human-readable order number, e.g. "#ORD-0042".
	// It is unique per organization and assigned at creation.
	number string

	// table is the table label the order is served at
	table string

	// customer is the optional customer name
	customer string

	// staff identifies the staff member who opened the order
	staff Staff

	// status is the current lifecycle state
	status Status

	// items are the order's line items
	items []Item

	// subtotal, tax and total are derived from items and kept consistent
	// by recomputeTotals
	subtotal float64
	tax      float64
	total    float64

	// payment is set once the order has been paid (nil until then)
	payment *Payment

	// timeline is the append-only audit trail
	timeline []TimelineEntry

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with validation. This is the only way to
// open a fresh order, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id: Unique identifier for the order
//   - orgID: Owning organization
//   - branchID: Branch the order was taken at
//   - number: Organization-unique order number (e.g. "#ORD-0042")
//   - table: Table label (required)
//   - customer: Customer name (optional)
//   - staff: Staff member opening the order
//   - items: Line items (at least one)
//   - now: Creation timestamp
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The order starts in Pending status with monetary totals computed from its
// items and a single "Order Created" timeline entry.
func NewOrder(
	id, orgID, branchID kernel.UUID,
	number string,
	table string,
	customer string,
	staff Staff,
	items []Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrgID(orgID),
		o.setBranchID(branchID),
		o.setNumber(number),
		o.setTable(table),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.customer = customer
	o.staff = staff
	o.createdAt = now
	o.updatedAt = now

	entry, err := NewTimelineEntry(
		"Order Created",
		now,
		fmt.Sprintf("Order %s created with %d items", o.number, len(o.items)),
		OutcomeSuccess,
	)
	if err != nil {
		return nil, err
	}
	o.timeline = append(o.timeline, entry)

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order for
// reconstruction via RestoreOrder.
type RestoreOrderParams struct {
	ID        kernel.UUID
	OrgID     kernel.UUID
	BranchID  kernel.UUID
	Number    string
	Table     string
	Customer  string
	Staff     Staff
	Status    Status
	Items     []Item
	Payment   *Payment
	Timeline  []TimelineEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it restores the order to its previously persisted state,
// including status, payment, timeline, and timestamps. Totals are recomputed
// from the items so drifted stored values cannot survive a load.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setOrgID(params.OrgID),
		o.setBranchID(params.BranchID),
		o.setNumber(params.Number),
		o.setTable(params.Table),
		o.setItems(params.Items),
		o.setStatus(params.Status),
	); err != nil {
		return nil, err
	}

	o.customer = params.Customer
	o.staff = params.Staff
	o.payment = params.Payment
	o.timeline = append([]TimelineEntry(nil), params.Timeline...)
	o.createdAt = params.CreatedAt
	o.updatedAt = params.UpdatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrgID returns the owning organization's identifier.
func (o *Order) OrgID() kernel.UUID {
	return o.orgID
}

// BranchID returns the branch the order was taken at.
func (o *Order) BranchID() kernel.UUID {
	return o.branchID
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// Table returns the table label.
func (o *Order) Table() string {
	return o.table
}

// Customer returns the customer name, which may be empty.
func (o *Order) Customer() string {
	return o.customer
}

// Staff returns the staff member who opened the order.
func (o *Order) Staff() Staff {
	return o.staff
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Subtotal returns the sum of all line totals.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// Tax returns the tax charged on the order (10% of the subtotal).
func (o *Order) Tax() float64 {
	return o.tax
}

// Total returns the amount due: subtotal plus tax.
func (o *Order) Total() float64 {
	return o.total
}

// Payment returns the settled payment, or nil if the order is unpaid.
func (o *Order) Payment() *Payment {
	return o.payment
}

// Timeline returns a copy of the order's append-only audit trail.
func (o *Order) Timeline() []TimelineEntry {
	return append([]TimelineEntry(nil), o.timeline...)
}

// CreatedAt returns when the order was opened.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Dispatch sends the order to its preparation stations and moves it to
// InPrep. Dispatch is idempotent from the order's point of view: it always
// sets InPrep and records a timeline entry, so a re-dispatch simply
// refreshes the stations.
//
// Returns the recorded timeline entry.
func (o *Order) Dispatch(now time.Time) (TimelineEntry, error) {
	entry, err := NewTimelineEntry(
		"Order Dispatched",
		now,
		"Order sent to preparation stations",
		OutcomeSuccess,
	)
	if err != nil {
		return TimelineEntry{}, err
	}

	o.status = InPrep
	o.timeline = append(o.timeline, entry)
	o.touch(now)
	return entry, nil
}

// UpdateStatus moves the order to newStatus and records the change on the
// timeline. Any valid status value is accepted regardless of the current
// state; use Status.CanTransitionTo to detect out-of-flow changes.
//
// The source decides the timeline title: station displays record
// "Kitchen: <status>" or "Bar: <status>", the management surface records
// "Status changed to <status>". A change to Cancelled from the management
// surface is recorded with OutcomeError; station changes are always
// recorded as OutcomeSuccess.
func (o *Order) UpdateStatus(newStatus Status, source UpdateSource, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	var title string
	outcome := OutcomeSuccess
	switch source {
	case SourceKitchen:
		title = fmt.Sprintf("Kitchen: %s", newStatus)
	case SourceBar:
		title = fmt.Sprintf("Bar: %s", newStatus)
	default:
		title = fmt.Sprintf("Status changed to %s", newStatus)
		if newStatus == Cancelled {
			outcome = OutcomeError
		}
	}

	entry, err := NewTimelineEntry(title, now, fmt.Sprintf("Order is now %s", newStatus), outcome)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.timeline = append(o.timeline, entry)
	o.touch(now)
	return nil
}

// ProcessPayment settles the order. It records the payment, moves the order
// to Completed, and appends a "Payment Processed" timeline entry. An order
// that already holds a payment rejects a second one.
func (o *Order) ProcessPayment(method string, amount float64, now time.Time) error {
	if o.payment != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment",
			errors.New("order is already paid"),
		)
	}

	payment, err := NewPayment(method, amount, now)
	if err != nil {
		return err
	}

	entry, err := NewTimelineEntry(
		"Payment Processed",
		now,
		fmt.Sprintf("Payment of $%.2f via %s", amount, method),
		OutcomeSuccess,
	)
	if err != nil {
		return err
	}

	o.payment = &payment
	o.status = Completed
	o.timeline = append(o.timeline, entry)
	o.touch(now)
	return nil
}

// ReplaceItems swaps the order's line items and recomputes its totals.
// The new item list must contain at least one valid item.
func (o *Order) ReplaceItems(items []Item, now time.Time) error {
	if err := o.setItems(items); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// MoveToTable changes the table label.
func (o *Order) MoveToTable(table string, now time.Time) error {
	if err := o.setTable(table); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// SetCustomer changes the customer name. An empty name clears it.
func (o *Order) SetCustomer(customer string, now time.Time) {
	o.customer = customer
	o.touch(now)
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrgID validates and sets the owning organization.
func (o *Order) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	o.orgID = orgID
	return nil
}

// setBranchID validates and sets the branch.
func (o *Order) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	o.branchID = branchID
	return nil
}

// setNumber validates and sets the order number.
func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

// setTable validates and sets the table label.
func (o *Order) setTable(table string) error {
	if table == "" {
		return errs.NewValueIsRequiredError("table")
	}
	o.table = table
	return nil
}

// setStatus validates and sets the status. Used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems validates and sets the line items, then recomputes totals.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if item.Name() == "" {
			return errs.NewValueIsRequiredError("name")
		}
	}

	o.items = append([]Item(nil), items...)
	o.recomputeTotals()
	return nil
}

// recomputeTotals derives subtotal, tax, and total from the current items.
func (o *Order) recomputeTotals() {
	var subtotal float64
	for _, item := range o.items {
		subtotal += item.LineTotal()
	}
	o.subtotal = subtotal
	o.tax = subtotal * taxRate
	o.total = o.subtotal + o.tax
}

// touch updates the modification timestamp.
func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}
