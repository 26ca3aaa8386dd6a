package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates application errors into HTTP status codes with a
// JSON body. The mapping is deliberately coarse: clients act on the status
// code and show the message.
func respondError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errMissingIdentity):
		return http.StatusUnauthorized
	case errors.Is(err, errOperatorRequired):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, commands.ErrEmptyCart),
		errors.Is(err, commands.ErrProductUnavailable),
		errors.Is(err, ports.ErrInsufficientStock),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
