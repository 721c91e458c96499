package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// badRequest answers a request whose parameters or body could not be turned into a command.
func (s *Server) badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Kind:    string(errs.KindValidation),
		Message: err.Error(),
	})
}

// fail maps a use case error to a response by its kind. Domain rule violations are
// reported as 422; store and unexpected failures are logged and hidden from the caller.
func (s *Server) fail(ctx echo.Context, operation string, err error) error {
	kind := errs.KindOf(err)
	code := statusFor(kind)

	message := err.Error()
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("operation", operation),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		message = "Failed to " + operation
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Kind:    string(kind),
		Message: message,
	})
}

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusUnprocessableEntity
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindCancelled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders errors that escape the handlers, such as routing and
// parameter binding failures, in the same shape as use case errors.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.Error("unhandled error", zap.Error(err))
		}

		kind := errs.KindUnknown
		if code == http.StatusBadRequest {
			kind = errs.KindValidation
		} else if code == http.StatusNotFound {
			kind = errs.KindNotFound
		}

		if writeErr := ctx.JSON(code, servers.Error{Code: code, Kind: string(kind), Message: message}); writeErr != nil {
			logger.Error("write error response", zap.Error(writeErr))
		}
	}
}
