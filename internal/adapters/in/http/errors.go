package http

import (
	"errors"
	"log/slog"
	"net/http"

	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// statusCode maps domain and application errors onto HTTP status codes.
func statusCode(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an Error body. Server errors are logged and their
// details are not echoed to the client.
func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	code := statusCode(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = internalErrorMessage
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

// errorHandler replaces echo's default so that router-level failures such as
// unknown routes share the Error body.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		if writeErr := writeError(ctx, logger, err); writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
