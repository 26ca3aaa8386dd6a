package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// DeliveryOption selects the shipping service level. The delivery fee depends
// only on the option and the order subtotal, never on the items themselves.
type DeliveryOption int

const (
	// DeliveryUnknown represents an invalid or undefined option.
	DeliveryUnknown DeliveryOption = iota

	// DeliveryStandard is free at or above a configured subtotal threshold,
	// otherwise a flat fee applies.
	DeliveryStandard

	// DeliveryExpress always carries a flat surcharge.
	DeliveryExpress
)

func getDeliveryOptionStrings() map[DeliveryOption]string {
	return map[DeliveryOption]string{
		DeliveryUnknown:  "unknown",
		DeliveryStandard: "standard",
		DeliveryExpress:  "express",
	}
}

// DeliveryOptionFromString parses an externally supplied option name.
func DeliveryOptionFromString(s string) (DeliveryOption, error) {
	switch s {
	case "standard":
		return DeliveryStandard, nil
	case "express":
		return DeliveryExpress, nil
	default:
		return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause("deliveryOption",
			fmt.Errorf("%q is not a valid delivery option", s))
	}
}

// Validate checks that the DeliveryOption is a member of the known set.
func (d DeliveryOption) Validate() error {
	if d != DeliveryStandard && d != DeliveryExpress {
		return errs.NewValueIsInvalidErrorWithCause("deliveryOption",
			fmt.Errorf("%d is not a valid delivery option", d))
	}
	return nil
}

// String returns the lowercase name of the option.
func (d DeliveryOption) String() string {
	if str, ok := getDeliveryOptionStrings()[d]; ok {
		return str
	}
	return "unknown"
}
