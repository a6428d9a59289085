// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	"shop/internal/domain/service"
)

// publishEvents fans out the domain events recorded by the given aggregates
// after a successful commit, then clears them. Publishing failures are
// logged and swallowed: the command already succeeded.
func publishEvents(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, carriers ...entity.EventCarrier) {
	if publisher == nil {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, carrier := range carriers {
		for _, event := range carrier.DomainEvents() {
			msg := &service.DomainEventMessage{
				RequestID:   requestID,
				EventType:   event.EventType(),
				AggregateID: event.AggregateID(),
				OccurredAt:  event.OccurredAt(),
				Payload:     eventPayload(event),
			}
			if err := publisher.PublishDomainEvent(ctx, msg); err != nil {
				logger.Error("failed to publish domain event",
					slog.String("event_type", event.EventType()),
					slog.String("aggregate_id", event.AggregateID()),
					slog.Any("error", err),
				)
			}
		}
		carrier.ClearEvents()
	}
}

func eventPayload(event entity.DomainEvent) map[string]any {
	switch e := event.(type) {
	case entity.ProductCreated:
		return map[string]any{
			"name":     e.Name,
			"sku":      e.Sku,
			"price":    e.Price.Amount().String(),
			"currency": e.Price.Currency(),
		}
	case entity.ProductStockChanged:
		return map[string]any{
			"old_stock": e.OldStock,
			"new_stock": e.NewStock,
			"low_stock": e.LowStock,
		}
	case entity.OrderPlaced:
		return map[string]any{
			"order_number": e.OrderNumber,
			"total":        e.TotalAmount.Amount().String(),
			"currency":     e.TotalAmount.Currency(),
		}
	case entity.OrderStatusChanged:
		return map[string]any{
			"old_status": string(e.OldStatus),
			"new_status": string(e.NewStatus),
			"changed_by": e.ChangedBy,
		}
	case entity.OrderCancelled:
		return map[string]any{
			"reason":       e.Reason,
			"cancelled_by": e.CancelledBy,
		}
	case entity.PaymentStatusChanged:
		return map[string]any{
			"order_id":   e.OrderID.String(),
			"old_status": string(e.OldStatus),
			"new_status": string(e.NewStatus),
		}
	case entity.ShipmentStatusChanged:
		return map[string]any{
			"order_id":   e.OrderID.String(),
			"old_status": string(e.OldStatus),
			"new_status": string(e.NewStatus),
			"location":   e.Location,
		}
	default:
		return nil
	}
}
