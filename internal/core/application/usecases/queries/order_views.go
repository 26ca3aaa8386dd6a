// Package queries contains read-only operations for retrieving system state.
// Implements the query side of CQRS: handlers read the database directly and
// return view models, bypassing the domain aggregates.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrderLineView is one frozen order line as stored in the orders row.
// The JSON keys are the persistence contract shared with the order repository.
type OrderLineView struct {
	ProductID string     `json:"productId"`
	Name      string     `json:"name"`
	UnitPrice int64      `json:"unitPrice"`
	Quantity  int        `json:"quantity"`
	Size      string     `json:"size"`
	Color     *ColorView `json:"color,omitempty"`
	Image     string     `json:"image,omitempty"`
}

// ColorView is the optional color carried on a line.
type ColorView struct {
	Name string `json:"name"`
	Hex  string `json:"hex,omitempty"`
}

// AddressView is the frozen shipping destination of an order.
type AddressView struct {
	FullName   string
	Phone      string
	Street     string
	City       string
	PostalCode string
	Country    string
}

// OrderView is the full read model of one order.
type OrderView struct {
	ID             string
	Number         string
	UserID         string
	Lines          []OrderLineView
	Address        AddressView
	DeliveryOption string
	DeliveryFee    int64
	PaymentMethod  string
	PaymentStatus  string
	Subtotal       int64
	Total          int64
	Status         string
	Notes          string
	CreatedAt      time.Time
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
}

// OrderSummaryView is the condensed row used by list endpoints.
type OrderSummaryView struct {
	ID            string
	Number        string
	UserID        string
	Status        string
	PaymentStatus string
	Total         int64
	CreatedAt     time.Time
}

// orderColumns is the select list scanOrderView expects, in order.
const orderColumns = `
	id, number, user_id, lines,
	full_name, phone, street, city, postal_code, country,
	delivery_option, delivery_fee, payment_method, payment_status,
	subtotal, total, status, notes, created_at, delivered_at, cancelled_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (OrderView, error) {
	var (
		view        OrderView
		id, userID  uuid.UUID
		linesJSON   []byte
		deliveredAt sql.NullTime
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&id, &view.Number, &userID, &linesJSON,
		&view.Address.FullName, &view.Address.Phone, &view.Address.Street,
		&view.Address.City, &view.Address.PostalCode, &view.Address.Country,
		&view.DeliveryOption, &view.DeliveryFee, &view.PaymentMethod, &view.PaymentStatus,
		&view.Subtotal, &view.Total, &view.Status, &view.Notes,
		&view.CreatedAt, &deliveredAt, &cancelledAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if err = json.Unmarshal(linesJSON, &view.Lines); err != nil {
		return OrderView{}, err
	}

	view.ID = id.String()
	view.UserID = userID.String()
	if deliveredAt.Valid {
		t := deliveredAt.Time
		view.DeliveredAt = &t
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time
		view.CancelledAt = &t
	}

	return view, nil
}

func scanOrderSummaryView(row rowScanner) (OrderSummaryView, error) {
	var (
		view       OrderSummaryView
		id, userID uuid.UUID
	)

	err := row.Scan(&id, &view.Number, &userID, &view.Status, &view.PaymentStatus, &view.Total, &view.CreatedAt)
	if err != nil {
		return OrderSummaryView{}, err
	}

	view.ID = id.String()
	view.UserID = userID.String()
	return view, nil
}

// normalizePage clamps externally supplied pagination values.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
