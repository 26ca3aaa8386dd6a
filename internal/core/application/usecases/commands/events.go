package commands

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// orderEventPayload is the JSON body relayed to the message broker for every
// order lifecycle event. Downstream collaborators (notification, reporting)
// consume it; this core only produces it.
type orderEventPayload struct {
	OrderID        string `json:"orderId"`
	OrderNumber    string `json:"orderNumber"`
	UserID         string `json:"userId"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previousStatus,omitempty"`
	Total          int64  `json:"total"`
}

func newOrderEvent(eventType string, o *order.Order, previous order.Status, now time.Time) (ports.OrderEvent, error) {
	payload := orderEventPayload{
		OrderID:     o.ID().String(),
		OrderNumber: o.Number(),
		UserID:      o.UserID().String(),
		Status:      o.Status().String(),
		Total:       o.Total().Amount(),
	}
	if previous != order.Unknown {
		payload.PreviousStatus = previous.String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ports.OrderEvent{}, err
	}

	return ports.OrderEvent{
		OrderID:    o.ID(),
		Type:       eventType,
		Payload:    body,
		OccurredAt: now,
	}, nil
}
