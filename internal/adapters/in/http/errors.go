package http

import (
	"errors"
	"log/slog"
	"net/http"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"gopkg.in/go-playground/validator.v9"
)

// Error codes of the Error body.
const (
	CodeValidation  = "validation_error"
	CodeNotFound    = "not_found"
	CodeIntegrity   = "integrity_error"
	CodeRateLimited = "rate_limited"
	CodeInternal    = "internal_error"
)

const internalErrorMessage = "internal server error"

// Error is the body of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler maps handler errors to status codes. Messages of 5xx
// responses are never taken from the error.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := classify(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		} else {
			logger.DebugContext(c.Request().Context(), "Request rejected",
				"status", status,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Writing error response failed", "error", writeErr)
		}
	}
}

func classify(err error) (int, Error) {
	var (
		requestErr    *openapi3filter.RequestError
		validationErr validator.ValidationErrors
		echoErr       *echo.HTTPError
	)

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, Error{Code: CodeValidation, Message: err.Error()}
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, Error{Code: CodeValidation, Message: validationErr.Error()}
	case errors.As(err, &requestErr):
		return http.StatusBadRequest, Error{Code: CodeValidation, Message: requestErr.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, Error{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, services.ErrIntegrity):
		return http.StatusConflict, Error{Code: CodeIntegrity, Message: err.Error()}
	case errors.As(err, &echoErr):
		return echoErr.Code, Error{Code: codeForStatus(echoErr.Code), Message: echoMessage(echoErr)}
	default:
		return http.StatusInternalServerError, Error{Code: CodeInternal, Message: internalErrorMessage}
	}
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusTooManyRequests:
		return CodeRateLimited
	case status >= http.StatusInternalServerError:
		return CodeInternal
	default:
		return CodeValidation
	}
}

func echoMessage(e *echo.HTTPError) string {
	if e.Code >= http.StatusInternalServerError {
		return internalErrorMessage
	}
	if msg, ok := e.Message.(string); ok {
		return msg
	}
	return http.StatusText(e.Code)
}
