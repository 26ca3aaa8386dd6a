package http

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the auth collaborator in front of this service.
// This core trusts them; authentication itself is out of scope.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

const roleOperator = "operator"

var (
	errMissingIdentity  = errors.New("missing or invalid user identity")
	errOperatorRequired = errors.New("operator role required")
)

// requesterID extracts the authenticated user id from the request headers.
func requesterID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(headerUserID)
	if raw == "" {
		return kernel.UUID{}, errMissingIdentity
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errMissingIdentity
	}
	return userID, nil
}

// isOperator reports whether the requester carries the operator role.
func isOperator(ctx echo.Context) bool {
	return ctx.Request().Header.Get(headerUserRole) == roleOperator
}

// requireOperator rejects requests without the operator role.
func requireOperator(ctx echo.Context) error {
	if !isOperator(ctx) {
		return errOperatorRequired
	}
	return nil
}
