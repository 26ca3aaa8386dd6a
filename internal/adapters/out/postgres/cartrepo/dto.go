// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart is one row per user with its lines as child rows,
// ordered by position so the customer sees the cart in the order it was built.
package cartrepo

import (
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The user id carries a unique constraint: one cart per user, created lazily
// on the first add and kept (possibly empty) for the account's lifetime.
type CartDTO struct {
	ID     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID     `gorm:"type:uuid;uniqueIndex;not null"`
	Lines  []CartLineDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartLineDTO represents the database structure for persisting cart lines.
// Lines reference catalog products by id only; prices are resolved at read
// time, never stored here.
type CartLineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	Size      string    `gorm:"not null"`
	ColorName *string
	ColorHex  *string
	Position  int `gorm:"not null"`
}

// TableName specifies the database table name for cart line entities.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	cartID := aggregate.ID().Bytes()
	lines := make([]CartLineDTO, 0, len(aggregate.Lines()))

	for position, line := range aggregate.Lines() {
		dto := CartLineDTO{
			ID:        line.ID().Bytes(),
			CartID:    cartID,
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			Size:      line.Size(),
			Position:  position,
		}
		if color := line.Color(); color != nil {
			name, hex := color.Name(), color.Hex()
			dto.ColorName = &name
			dto.ColorHex = &hex
		}
		lines = append(lines, dto)
	}

	return CartDTO{
		ID:     cartID,
		UserID: aggregate.UserID().Bytes(),
		Lines:  lines,
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, raw := range dto.Lines {
		line, lineErr := lineToDomain(raw)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(id, userID, lines)
}

func lineToDomain(dto CartLineDTO) (cart.Line, error) {
	lineID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return cart.Line{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return cart.Line{}, err
	}

	var color *kernel.Color
	if dto.ColorName != nil {
		hex := ""
		if dto.ColorHex != nil {
			hex = *dto.ColorHex
		}
		c, colorErr := kernel.NewColor(*dto.ColorName, hex)
		if colorErr != nil {
			return cart.Line{}, colorErr
		}
		color = &c
	}

	return cart.NewLine(lineID, productID, dto.Quantity, dto.Size, color)
}
