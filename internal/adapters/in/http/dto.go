package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
)

// ErrorResponse is the JSON payload returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ColorDTO carries an optional product color in requests and responses.
type ColorDTO struct {
	Name string `json:"name"`
	Hex  string `json:"hex,omitempty"`
}

// AddCartLineRequest adds a product variant to the requester's cart.
type AddCartLineRequest struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Color     *ColorDTO `json:"color,omitempty"`
}

// UpdateCartLineRequest changes a cart line's quantity. A quantity of zero or
// less removes the line.
type UpdateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse is one cart line priced at the current catalog.
type CartLineResponse struct {
	LineID         string    `json:"lineId"`
	ProductID      string    `json:"productId"`
	Name           string    `json:"name"`
	UnitPrice      int64     `json:"unitPrice"`
	Quantity       int       `json:"quantity"`
	Size           string    `json:"size"`
	Color          *ColorDTO `json:"color,omitempty"`
	Image          string    `json:"image,omitempty"`
	Subtotal       int64     `json:"subtotal"`
	AvailableStock int       `json:"availableStock"`
}

// CartResponse is the requester's cart.
type CartResponse struct {
	Lines    []CartLineResponse `json:"lines"`
	Subtotal int64              `json:"subtotal"`
}

// AddressDTO is a shipping destination in requests and responses.
type AddressDTO struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CheckoutRequest turns the requester's cart into an order.
type CheckoutRequest struct {
	Address        AddressDTO `json:"address"`
	DeliveryOption string     `json:"deliveryOption"`
	PaymentMethod  string     `json:"paymentMethod"`
	Notes          string     `json:"notes,omitempty"`
}

// ChangeOrderStatusRequest moves an order to the given status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse is one frozen line of a placed order.
type OrderLineResponse struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Color     *ColorDTO `json:"color,omitempty"`
	Image     string    `json:"image,omitempty"`
}

// OrderResponse is the full representation of one order.
type OrderResponse struct {
	ID             string              `json:"id"`
	Number         string              `json:"number"`
	UserID         string              `json:"userId"`
	Lines          []OrderLineResponse `json:"lines"`
	Address        AddressDTO          `json:"address"`
	DeliveryOption string              `json:"deliveryOption"`
	DeliveryFee    int64               `json:"deliveryFee"`
	PaymentMethod  string              `json:"paymentMethod"`
	PaymentStatus  string              `json:"paymentStatus"`
	Subtotal       int64               `json:"subtotal"`
	Total          int64               `json:"total"`
	Status         string              `json:"status"`
	Notes          string              `json:"notes,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	DeliveredAt    *time.Time          `json:"deliveredAt,omitempty"`
	CancelledAt    *time.Time          `json:"cancelledAt,omitempty"`
}

// OrderSummaryResponse is the condensed row used by list endpoints.
type OrderSummaryResponse struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	UserID        string    `json:"userId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	Total         int64     `json:"total"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderPageResponse is one page of order summaries.
type OrderPageResponse struct {
	Items []OrderSummaryResponse `json:"items"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
	Total int64                  `json:"total"`
	Pages int                    `json:"pages"`
}

// ProductStockResponse is the advisory stock level of one product.
type ProductStockResponse struct {
	ProductID      string `json:"productId"`
	AvailableStock int    `json:"availableStock"`
}

func toCartResponse(view queries.CartView) CartResponse {
	lines := make([]CartLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, CartLineResponse{
			LineID:         line.LineID,
			ProductID:      line.ProductID,
			Name:           line.Name,
			UnitPrice:      line.UnitPrice,
			Quantity:       line.Quantity,
			Size:           line.Size,
			Color:          toColorDTO(line.Color),
			Image:          line.Image,
			Subtotal:       line.Subtotal,
			AvailableStock: line.AvailableStock,
		})
	}

	return CartResponse{Lines: lines, Subtotal: view.Subtotal}
}

func toColorDTO(view *queries.ColorView) *ColorDTO {
	if view == nil {
		return nil
	}
	return &ColorDTO{Name: view.Name, Hex: view.Hex}
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     toColorDTO(line.Color),
			Image:     line.Image,
		})
	}

	return OrderResponse{
		ID:     view.ID,
		Number: view.Number,
		UserID: view.UserID,
		Lines:  lines,
		Address: AddressDTO{
			FullName:   view.Address.FullName,
			Phone:      view.Address.Phone,
			Street:     view.Address.Street,
			City:       view.Address.City,
			PostalCode: view.Address.PostalCode,
			Country:    view.Address.Country,
		},
		DeliveryOption: view.DeliveryOption,
		DeliveryFee:    view.DeliveryFee,
		PaymentMethod:  view.PaymentMethod,
		PaymentStatus:  view.PaymentStatus,
		Subtotal:       view.Subtotal,
		Total:          view.Total,
		Status:         view.Status,
		Notes:          view.Notes,
		CreatedAt:      view.CreatedAt,
		DeliveredAt:    view.DeliveredAt,
		CancelledAt:    view.CancelledAt,
	}
}

// toPlacedOrderResponse maps the aggregate checkout returns, sparing the
// client an immediate read-back.
func toPlacedOrderResponse(placed *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(placed.Lines()))
	for _, line := range placed.Lines() {
		dto := OrderLineResponse{
			ProductID: line.ProductID().String(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Amount(),
			Quantity:  line.Quantity(),
			Size:      line.Size(),
			Image:     line.Image(),
		}
		if color := line.Color(); color != nil {
			dto.Color = &ColorDTO{Name: color.Name(), Hex: color.Hex()}
		}
		lines = append(lines, dto)
	}

	address := placed.Address()
	return OrderResponse{
		ID:     placed.ID().String(),
		Number: placed.Number(),
		UserID: placed.UserID().String(),
		Lines:  lines,
		Address: AddressDTO{
			FullName:   address.FullName(),
			Phone:      address.Phone(),
			Street:     address.Street(),
			City:       address.City(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		DeliveryOption: placed.DeliveryOption().String(),
		DeliveryFee:    placed.DeliveryFee().Amount(),
		PaymentMethod:  string(placed.PaymentMethod()),
		PaymentStatus:  placed.PaymentStatus().String(),
		Subtotal:       placed.Subtotal().Amount(),
		Total:          placed.Total().Amount(),
		Status:         placed.Status().String(),
		Notes:          placed.Notes(),
		CreatedAt:      placed.CreatedAt(),
	}
}

func toOrderPageResponse(page queries.OrderPageView) OrderPageResponse {
	items := make([]OrderSummaryResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, OrderSummaryResponse{
			ID:            item.ID,
			Number:        item.Number,
			UserID:        item.UserID,
			Status:        item.Status,
			PaymentStatus: item.PaymentStatus,
			Total:         item.Total,
			CreatedAt:     item.CreatedAt,
		})
	}

	return OrderPageResponse{
		Items: items,
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Pages: page.Pages,
	}
}
