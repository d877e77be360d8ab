// Package handler defines the HTTP handlers of both applications.
// Handlers are thin: they bind the request, build the matching
// view model and translate its errors into JSON responses. All
// business rules live in the view, cart and api packages.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/registry"
	"github.com/minhvo/retail-suite/internal/view"
)

// writeError maps the error taxonomy onto HTTP responses. An
// expired backend session always answers 401 with a login
// redirect so the browser can drop its local state.
func writeError(c echo.Context, err error) error {
	if errors.Is(err, api.ErrAuthExpired) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "phiên làm việc đã hết hạn", "redirect": "/login"})
	}
	if errors.Is(err, view.ErrPermissionDenied) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	}
	if errors.Is(err, view.ErrBusy) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": err.Error()})
	}
	if errors.Is(err, registry.ErrUnknownResource) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "không tìm thấy mục này"})
	}
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": ve.Error(), "fields": ve.Fields})
	}
	var se *api.StatusError
	if errors.As(err, &se) {
		return c.JSON(se.Code, echo.Map{"error": se.Error()})
	}
	// transport-level failures: the backend could not be reached
	return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
}

// nowUTC formats the current instant the way event payloads carry
// timestamps.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
