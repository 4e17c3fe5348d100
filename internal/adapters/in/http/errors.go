package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors onto HTTP status codes. Anything not in
// the taxonomy is a 500 with a generic message; error internals never leak to
// clients for those.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		return respond(ctx, http.StatusForbidden, err)
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoAssignedOrdersFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrCredentialExpired):
		return respond(ctx, http.StatusGone, err)
	case errors.Is(err, errs.ErrCredentialAlreadyUsed),
		errors.Is(err, commands.ErrDispatchInFlight):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// badRequest reports a malformed request before any handler runs.
func badRequest(ctx echo.Context, err error) error {
	return respond(ctx, http.StatusBadRequest, err)
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
