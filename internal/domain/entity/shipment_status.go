package entity

// ShipmentStatus enumerates the shipment lifecycle states.
type ShipmentStatus string

// Shipment lifecycle states. Delivered and Returned are terminal.
const (
	ShipmentStatusPending        ShipmentStatus = "pending"
	ShipmentStatusShipped        ShipmentStatus = "shipped"
	ShipmentStatusInTransit      ShipmentStatus = "in_transit"
	ShipmentStatusOutForDelivery ShipmentStatus = "out_for_delivery"
	ShipmentStatusDelayed        ShipmentStatus = "delayed"
	ShipmentStatusFailedDelivery ShipmentStatus = "failed_delivery"
	ShipmentStatusDelivered      ShipmentStatus = "delivered"
	ShipmentStatusReturned       ShipmentStatus = "returned"
)

var shipmentTransitions = map[ShipmentStatus][]ShipmentStatus{
	ShipmentStatusPending:        {ShipmentStatusShipped},
	ShipmentStatusShipped:        {ShipmentStatusInTransit, ShipmentStatusDelayed, ShipmentStatusFailedDelivery},
	ShipmentStatusInTransit:      {ShipmentStatusOutForDelivery, ShipmentStatusDelayed, ShipmentStatusFailedDelivery},
	ShipmentStatusOutForDelivery: {ShipmentStatusDelivered, ShipmentStatusFailedDelivery, ShipmentStatusDelayed},
	ShipmentStatusDelayed:        {ShipmentStatusInTransit, ShipmentStatusOutForDelivery, ShipmentStatusFailedDelivery},
	ShipmentStatusFailedDelivery: {ShipmentStatusReturned, ShipmentStatusInTransit},
	ShipmentStatusDelivered:      {},
	ShipmentStatusReturned:       {},
}

// IsValid reports whether the status is a known lifecycle state.
func (s ShipmentStatus) IsValid() bool {
	_, ok := shipmentTransitions[s]

	return ok
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s ShipmentStatus) IsTerminal() bool {
	targets, ok := shipmentTransitions[s]

	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the move to target is in the table.
func (s ShipmentStatus) CanTransitionTo(target ShipmentStatus) bool {
	for _, t := range shipmentTransitions[s] {
		if t == target {
			return true
		}
	}

	return false
}
