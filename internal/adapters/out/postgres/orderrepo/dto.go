// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are stored as one row per order with the frozen
// line snapshots serialized into a JSONB column: lines are immutable after
// checkout, so they are never queried relationally.
package orderrepo

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique constraint; duplicates are a defect, not
// a conflict to resolve. Version backs optimistic concurrency on updates.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number         string    `gorm:"uniqueIndex;not null"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Lines          []byte    `gorm:"type:jsonb;not null"`
	FullName       string
	Phone          string
	Street         string `gorm:"not null"`
	City           string `gorm:"not null"`
	PostalCode     string
	Country        string
	DeliveryOption string `gorm:"not null"`
	DeliveryFee    int64
	PaymentMethod  string `gorm:"not null"`
	PaymentStatus  string `gorm:"not null"`
	Subtotal       int64
	Total          int64
	Status         string `gorm:"index;not null"`
	Notes          string
	CreatedAt      time.Time `gorm:"index"`
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
	Version        int `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// lineDTO is the JSON shape of one frozen order line. The keys are shared
// with the query side; changing them is a persistence format change.
type lineDTO struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Color     *colorDTO `json:"color,omitempty"`
	Image     string    `json:"image,omitempty"`
}

type colorDTO struct {
	Name string `json:"name"`
	Hex  string `json:"hex,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	lines := make([]lineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		dto := lineDTO{
			ProductID: line.ProductID().String(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Amount(),
			Quantity:  line.Quantity(),
			Size:      line.Size(),
			Image:     line.Image(),
		}
		if color := line.Color(); color != nil {
			dto.Color = &colorDTO{Name: color.Name(), Hex: color.Hex()}
		}
		lines = append(lines, dto)
	}

	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return OrderDTO{}, err
	}

	address := aggregate.Address()
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Number:         aggregate.Number(),
		UserID:         aggregate.UserID().Bytes(),
		Lines:          linesJSON,
		FullName:       address.FullName(),
		Phone:          address.Phone(),
		Street:         address.Street(),
		City:           address.City(),
		PostalCode:     address.PostalCode(),
		Country:        address.Country(),
		DeliveryOption: aggregate.DeliveryOption().String(),
		DeliveryFee:    aggregate.DeliveryFee().Amount(),
		PaymentMethod:  string(aggregate.PaymentMethod()),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		Subtotal:       aggregate.Subtotal().Amount(),
		Total:          aggregate.Total().Amount(),
		Status:         aggregate.Status().String(),
		Notes:          aggregate.Notes(),
		CreatedAt:      aggregate.CreatedAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		CancelledAt:    aggregate.CancelledAt(),
		Version:        aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so the stored totals are carried over, never recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var lineDTOs []lineDTO
	if err = json.Unmarshal(dto.Lines, &lineDTOs); err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, raw := range lineDTOs {
		productID, lineErr := kernel.UUIDFromString(raw.ProductID)
		if lineErr != nil {
			return nil, lineErr
		}
		unitPrice, lineErr := kernel.NewMoney(raw.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		var color *kernel.Color
		if raw.Color != nil {
			c, colorErr := kernel.NewColor(raw.Color.Name, raw.Color.Hex)
			if colorErr != nil {
				return nil, colorErr
			}
			color = &c
		}

		line, lineErr := order.NewLine(productID, raw.Name, unitPrice, raw.Quantity, raw.Size, color, raw.Image)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	address, err := order.NewAddress(dto.FullName, dto.Phone, dto.Street, dto.City, dto.PostalCode, dto.Country)
	if err != nil {
		return nil, err
	}
	option, err := order.DeliveryOptionFromString(dto.DeliveryOption)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, dto.Number, userID, lines, address, option, deliveryFee,
		order.PaymentMethod(dto.PaymentMethod), paymentStatus,
		subtotal, total, status, dto.Notes,
		dto.CreatedAt, dto.DeliveredAt, dto.CancelledAt, dto.Version,
	)
}
