package middleware

import (
	"errors"
	"fmt"

	apperr "job-portal/internal/pkg/errors"
	"job-portal/internal/pkg/logger"
	"job-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// AppError is what handlers return for every non-success outcome. Message is
// shown to the client; Cause is the underlying failure.
type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

// FromDomain maps a usecase result error onto an HTTP status, keeping the
// domain message.
func FromDomain(err error) *AppError {
	var de *apperr.DomainError
	if !errors.As(err, &de) {
		return NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return NewAppError(StatusForDomain(de.Type), de.Message, de)
}

func StatusForDomain(t apperr.ErrorType) int {
	switch t {
	case apperr.ErrTypeInvalidInput:
		return fiber.StatusBadRequest
	case apperr.ErrTypeNotFound:
		return fiber.StatusNotFound
	case apperr.ErrTypeConflict:
		return fiber.StatusConflict
	case apperr.ErrTypeUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(l *zap.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger.OrNop(l)}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					zap.String("path", c.Path()),
					zap.String("panic", fmt.Sprint(r)),
					zap.Stack("stack"),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, "")
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, cause := normalizeError(err)
		if status >= fiber.StatusInternalServerError {
			m.logServerError(c, status, msg, err)
		}
		return response.Error(c, status, msg, cause)
	}
}

func (m *ErrorMiddleware) logServerError(c fiber.Ctx, status int, msg string, err error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("message", msg),
		zap.Error(err),
	}
	if rid, ok := c.Locals(CtxRequestIDKey).(string); ok && rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	var de *apperr.DomainError
	if errors.As(err, &de) && len(de.StackTrace()) > 0 {
		fields = append(fields, zap.ByteString("stack", de.StackTrace()))
	}
	m.logger.Error("request failed", fields...)
}

// normalizeError returns the status, the client message and the raw cause.
// The cause is only exposed for server errors.
func normalizeError(err error) (int, string, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		if status < fiber.StatusInternalServerError {
			return status, msg, ""
		}
		return status, msg, causeText(appErr.Cause)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= fiber.StatusInternalServerError {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, fiberErr.Message
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, msg, ""
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, err.Error()
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	var de *apperr.DomainError
	if errors.As(err, &de) {
		return de.Cause()
	}
	return err.Error()
}
