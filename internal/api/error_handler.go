package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/presensia/employee-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// status field always mirrors the HTTP status code.
type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking driver details to
//     the client.
//   - Renders a consistent JSON envelope: {"status": <code>, "message": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Status: code, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic codes and messages.
	switch {
	case errors.Is(err, domain.ErrNotAllowed):
		return http.StatusBadRequest, "Admin Access Only"
	case errors.Is(err, domain.ErrEmployeeExists):
		return http.StatusBadRequest, "Data Already Exist"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusBadRequest, "Data Not Exist"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, "Data Not Exist"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusBadRequest, "Password Incorrect"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User Already Exist!"
	case errors.Is(err, domain.ErrAdminReserved):
		return http.StatusBadRequest, "Cannot Register Admin User!"
	}

	// Store or other unexpected failure: log the real cause, return a
	// sanitized message. Raw driver errors never reach the response body.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong"
}
