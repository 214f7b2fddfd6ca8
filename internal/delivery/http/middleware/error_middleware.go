// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"spotter/internal/delivery/http/response"
	domainerrors "spotter/internal/domain/errors"
)

// ErrorMiddleware is the single funnel through which every error leaves the
// HTTP layer.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Domain errors carry their own status and user-facing message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own errors: unmatched routes get the canonical message, the
	// rest keep echo's status and text.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		if httpErr.Code == http.StatusNotFound {
			message = fmt.Sprintf("Route %s %s not found", c.Request().Method, c.Request().URL.Path)
		}
		_ = response.Error(c, httpErr.Code, message)

		return
	}

	// Anything else is a bug or an infrastructure failure: log it and hide
	// the detail from the client.
	m.logError(err, c)
	_ = response.Error(c, http.StatusInternalServerError, "Internal server error")
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	)
}
