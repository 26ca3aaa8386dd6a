// Package http is the inbound HTTP adapter: echo handlers that translate
// requests into commands and queries. No business logic lives here beyond
// identity extraction and error-to-status mapping.
package http

import (
	"net/http"
	"strconv"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartLineHandler    commands.AddCartLineCommandHandler
	updateCartLineHandler commands.UpdateCartLineCommandHandler
	removeCartLineHandler commands.RemoveCartLineCommandHandler
	clearCartHandler      commands.ClearCartCommandHandler
	checkoutHandler       *commands.CheckoutCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	changeStatusHandler   commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler

	// Query handlers
	getCartHandler         queries.GetCartQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	listUserOrdersHandler  queries.ListUserOrdersQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	getProductStockHandler queries.GetProductStockQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartLineHandler commands.AddCartLineCommandHandler,
	updateCartLineHandler commands.UpdateCartLineCommandHandler,
	removeCartLineHandler commands.RemoveCartLineCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	checkoutHandler *commands.CheckoutCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listUserOrdersHandler queries.ListUserOrdersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getProductStockHandler queries.GetProductStockQueryHandler,
) *Server {
	return &Server{
		addCartLineHandler:     addCartLineHandler,
		updateCartLineHandler:  updateCartLineHandler,
		removeCartLineHandler:  removeCartLineHandler,
		clearCartHandler:       clearCartHandler,
		checkoutHandler:        checkoutHandler,
		cancelOrderHandler:     cancelOrderHandler,
		changeStatusHandler:    changeStatusHandler,
		deleteOrderHandler:     deleteOrderHandler,
		getCartHandler:         getCartHandler,
		getOrderHandler:        getOrderHandler,
		listUserOrdersHandler:  listUserOrdersHandler,
		listOrdersHandler:      listOrdersHandler,
		getProductStockHandler: getProductStockHandler,
	}
}

// GetCart handles GET /api/v1/cart - returns the requester's cart priced at
// the current catalog.
func (s *Server) GetCart(ctx echo.Context) error {
	userID, err := requesterID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartResponse(view))
}

// AddCartLine handles POST /api/v1/cart/lines - adds a product variant to the
// requester's cart.
func (s *Server) AddCartLine(ctx echo.Context) error {
	userID, err := requesterID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request AddCartLineRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return respondError(ctx, err)
	}

	var color *kernel.Color
	if request.Color != nil {
		c, colorErr := kernel.NewColor(request.Color.Name, request.Color.Hex)
		if colorErr != nil {
			return respondError(ctx, colorErr)
		}
		color = &c
	}

	cmd, err := commands.NewAddCartLineCommand(userID, productID, request.Quantity, request.Size, color)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartLine handles PATCH /api/v1/cart/lines/:lineId - changes a line's
// quantity; zero or less removes the line.
func (s *Server) UpdateCartLine(ctx echo.Context) error {
	userID, err := requesterID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateCartLineRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewUpdateCartLineCommand(userID, lineID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartLine handles DELETE /api/v1/cart/lines/:lineId.
func (s *Server) RemoveCartLine(ctx echo.Context) error {
	userID, err := requesterID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartLineCommand(userID, lineID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - empties the requester's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	userID, err := requesterID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - turns the requester's cart into an
// order and returns it.
func (s *Server) Checkout(ctx echo.Context) error {
	userID, err := requesterID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CheckoutRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	address, err := order.NewAddress(
		request.Address.FullName,
		request.Address.Phone,
		request.Address.Street,
		request.Address.City,
		request.Address.PostalCode,
		request.Address.Country,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCheckoutCommand(userID, address, request.DeliveryOption, request.PaymentMethod, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPlacedOrderResponse(placed))
}

// GetOrder handles GET /api/v1/orders/:id - returns one order. Only the owner
// or an operator may view it; everyone else gets the same not-found shape as
// a missing order.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, err := requesterID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, userID, isOperator(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// ListMyOrders handles GET /api/v1/orders - pages through the requester's own
// orders, newest first.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	userID, err := requesterID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListUserOrdersQuery(userID, intQueryParam(ctx, "page"), intQueryParam(ctx, "limit"))
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.listUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPageResponse(page))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - customer cancellation
// of the requester's own order. Cancelling an already-cancelled order
// succeeds without effect.
func (s *Server) CancelOrder(ctx echo.Context) error {
	userID, err := requesterID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(userID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/admin/orders - operator listing with status
// filter, order number search and pagination.
func (s *Server) ListOrders(ctx echo.Context) error {
	if err := requireOperator(ctx); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("search"),
		intQueryParam(ctx, "page"),
		intQueryParam(ctx, "limit"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPageResponse(page))
}

// ChangeOrderStatus handles PATCH /api/v1/admin/orders/:id/status - operator
// status transition, including forced cancellation.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	if err := requireOperator(ctx); err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/admin/orders/:id - operator deletion.
// Reserved stock is not released.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	if err := requireOperator(ctx); err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProductStock handles GET /api/v1/products/:id/stock - the advisory stock
// level shown on product pages. Only checkout decides availability.
func (s *Server) GetProductStock(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProductStockQuery(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getProductStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProductStockResponse{
		ProductID:      view.ProductID,
		AvailableStock: view.AvailableStock,
	})
}

func intQueryParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}
