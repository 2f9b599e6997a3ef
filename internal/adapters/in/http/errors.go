package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/pkg/errs"
)

// ErrorResponse is the structured error payload for every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors to status codes: validation 400, not found
// 404, state conflict 409, everything else 500. Internal details never reach
// the client on 500s.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrStateConflict):
		return respond(ctx, http.StatusConflict, err.Error())
	default:
		return respond(ctx, http.StatusInternalServerError, "internal error")
	}
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
