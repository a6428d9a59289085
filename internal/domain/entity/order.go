package entity

import (
	"fmt"
	"time"

	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
)

// OrderDetail is a line item owned by the Order aggregate. Product name,
// SKU and unit price are snapshots captured at order time; later product
// changes never alter them.
type OrderDetail struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	ProductSku  string
	Quantity    int
	UnitPrice   Money
	LineTotal   Money
}

// Order is the order aggregate root. The total always equals the sum of
// line totals, recomputed on every detail change; structural mutation is
// rejected once the status is terminal.
type Order struct {
	eventRecorder

	id              uuid.UUID
	orderNumber     OrderNumber
	customerName    string
	customerEmail   Email
	shippingAddress Address
	status          OrderStatus
	totalAmount     Money
	notes           string
	details         []OrderDetail
	createdAt       time.Time
	updatedAt       time.Time
	createdBy       string
	modifiedBy      string
}

// NewOrder creates a pending order with a zero total in the given currency.
func NewOrder(orderNumber OrderNumber, customerName string, customerEmail Email, shippingAddress Address, notes, currency, actor string) (*Order, error) {
	if customerName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("customer name is required")
	}

	zero, err := ZeroMoney(currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Order{
		id:              uuid.New(),
		orderNumber:     orderNumber,
		customerName:    customerName,
		customerEmail:   customerEmail,
		shippingAddress: shippingAddress,
		status:          OrderStatusPending,
		totalAmount:     zero,
		notes:           notes,
		createdAt:       now,
		updatedAt:       now,
		createdBy:       actor,
		modifiedBy:      actor,
	}, nil
}

// RehydrateOrder rebuilds an order from persisted state without raising
// events. It is intended for the persistence layer only.
func RehydrateOrder(
	id uuid.UUID,
	orderNumber OrderNumber,
	customerName string,
	customerEmail Email,
	shippingAddress Address,
	status OrderStatus,
	totalAmount Money,
	notes string,
	details []OrderDetail,
	createdAt, updatedAt time.Time,
	createdBy, modifiedBy string,
) *Order {
	return &Order{
		id:              id,
		orderNumber:     orderNumber,
		customerName:    customerName,
		customerEmail:   customerEmail,
		shippingAddress: shippingAddress,
		status:          status,
		totalAmount:     totalAmount,
		notes:           notes,
		details:         details,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		createdBy:       createdBy,
		modifiedBy:      modifiedBy,
	}
}

// ID returns the aggregate identifier.
func (o *Order) ID() uuid.UUID { return o.id }

// OrderNumber returns the human-readable order identifier.
func (o *Order) OrderNumber() OrderNumber { return o.orderNumber }

// CustomerName returns the customer display name.
func (o *Order) CustomerName() string { return o.customerName }

// CustomerEmail returns the customer contact address.
func (o *Order) CustomerEmail() Email { return o.customerEmail }

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() Address { return o.shippingAddress }

// Status returns the current lifecycle state.
func (o *Order) Status() OrderStatus { return o.status }

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() Money { return o.totalAmount }

// Notes returns the optional free-form notes.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// CreatedBy returns the creating actor.
func (o *Order) CreatedBy() string { return o.createdBy }

// ModifiedBy returns the last modifying actor.
func (o *Order) ModifiedBy() string { return o.modifiedBy }

// Details returns a copy of the line items.
func (o *Order) Details() []OrderDetail {
	out := make([]OrderDetail, len(o.details))
	copy(out, o.details)

	return out
}

// AddDetail adds a line for the product, snapshotting its name, SKU and
// current price. A line for the same product merges by summing quantities,
// keeping the snapshot captured first. The total is recomputed afterwards.
func (o *Order) AddDetail(product *Product, quantity int, actor string) error {
	if err := o.assertMutable(); err != nil {
		return err
	}
	if quantity <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	for i := range o.details {
		if o.details[i].ProductID == product.ID() {
			o.details[i].Quantity += quantity
			lineTotal, err := o.details[i].UnitPrice.Multiply(o.details[i].Quantity)
			if err != nil {
				return err
			}
			o.details[i].LineTotal = lineTotal

			return o.recomputeTotal(actor)
		}
	}

	unitPrice := product.Price()
	lineTotal, err := unitPrice.Multiply(quantity)
	if err != nil {
		return err
	}

	o.details = append(o.details, OrderDetail{
		ID:          uuid.New(),
		ProductID:   product.ID(),
		ProductName: product.Name(),
		ProductSku:  product.Sku().Value(),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   lineTotal,
	})

	return o.recomputeTotal(actor)
}

// RemoveDetail deletes a line item and recomputes the total.
func (o *Order) RemoveDetail(detailID uuid.UUID, actor string) error {
	if err := o.assertMutable(); err != nil {
		return err
	}

	for i, detail := range o.details {
		if detail.ID == detailID {
			o.details = append(o.details[:i], o.details[i+1:]...)

			return o.recomputeTotal(actor)
		}
	}

	return domainerrors.ErrValidationFailed.WrapMessage(
		fmt.Sprintf("order detail %s does not exist", detailID))
}

// UpdateCustomerInfo changes the customer name and e-mail.
func (o *Order) UpdateCustomerInfo(name string, email Email, actor string) error {
	if err := o.assertMutable(); err != nil {
		return err
	}
	if name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("customer name is required")
	}

	o.customerName = name
	o.customerEmail = email
	o.touch(actor)

	return nil
}

// UpdateShippingAddress changes the delivery address.
func (o *Order) UpdateShippingAddress(address Address, actor string) error {
	if err := o.assertMutable(); err != nil {
		return err
	}

	o.shippingAddress = address
	o.touch(actor)

	return nil
}

// MarkPlaced records the OrderPlaced event with the final total. The
// placement handler calls it once all lines are added.
func (o *Order) MarkPlaced() {
	o.record(OrderPlaced{
		OrderID:     o.id,
		OrderNumber: o.orderNumber.Value(),
		TotalAmount: o.totalAmount,
		Timestamp:   o.updatedAt,
	})
}

// UpdateStatus moves the order along the lifecycle table, stamping audit
// fields and raising OrderStatusChanged on success.
func (o *Order) UpdateStatus(newStatus OrderStatus, actor string) error {
	if !newStatus.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("unknown order status %q", newStatus))
	}
	if !o.status.CanTransitionTo(newStatus) {
		return domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("order cannot move from %s to %s", o.status, newStatus))
	}

	old := o.status
	o.status = newStatus
	o.touch(actor)
	o.record(OrderStatusChanged{
		OrderID:   o.id,
		OldStatus: old,
		NewStatus: newStatus,
		ChangedBy: actor,
		Timestamp: o.updatedAt,
	})

	return nil
}

// Cancel moves the order to Cancelled from any non-terminal state, raising
// both a cancellation and a status-changed event.
func (o *Order) Cancel(reason, actor string) error {
	if o.status.IsTerminal() {
		return domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("order in terminal status %s cannot be cancelled", o.status))
	}

	old := o.status
	o.status = OrderStatusCancelled
	o.touch(actor)
	o.record(OrderCancelled{
		OrderID:     o.id,
		Reason:      reason,
		CancelledBy: actor,
		Timestamp:   o.updatedAt,
	})
	o.record(OrderStatusChanged{
		OrderID:   o.id,
		OldStatus: old,
		NewStatus: OrderStatusCancelled,
		ChangedBy: actor,
		Timestamp: o.updatedAt,
	})

	return nil
}

func (o *Order) assertMutable() error {
	if o.status.IsTerminal() {
		return domainerrors.ErrConflict.WrapMessage(
			fmt.Sprintf("order in terminal status %s cannot be modified", o.status))
	}

	return nil
}

func (o *Order) recomputeTotal(actor string) error {
	total, err := ZeroMoney(o.totalAmount.Currency())
	if err != nil {
		return err
	}

	for _, detail := range o.details {
		total, err = total.Add(detail.LineTotal)
		if err != nil {
			return err
		}
	}

	o.totalAmount = total
	o.touch(actor)

	return nil
}

func (o *Order) touch(actor string) {
	o.updatedAt = time.Now().UTC()
	o.modifiedBy = actor
}
