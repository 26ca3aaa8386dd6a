package commands

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// DeliveryPricing holds the configured delivery fee rule. The rule itself is
// fixed: the fee depends only on the delivery option and the order subtotal,
// never on the items. The amounts are configuration, loaded at startup.
type DeliveryPricing struct {
	// ExpressFee is the flat surcharge for express delivery.
	ExpressFee kernel.Money

	// StandardFee is the flat fee for standard delivery below the threshold.
	StandardFee kernel.Money

	// FreeDeliveryThreshold is the subtotal at or above which standard
	// delivery is free.
	FreeDeliveryThreshold kernel.Money
}

// FeeFor computes the delivery fee for the given option and subtotal.
func (p DeliveryPricing) FeeFor(option order.DeliveryOption, subtotal kernel.Money) kernel.Money {
	if option == order.DeliveryExpress {
		return p.ExpressFee
	}
	if subtotal.IsAtLeast(p.FreeDeliveryThreshold) {
		return kernel.Money{}
	}
	return p.StandardFee
}
