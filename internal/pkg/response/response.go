package response

import "github.com/gofiber/fiber/v3"

// Envelope keys. Payload keys such as "job" or "jobs" sit next to them.
const (
	KeyMessage = "message"
	KeySuccess = "success"
	KeyError   = "error"
)

const (
	MessageBadRequest          = "Bad request."
	MessageUnauthorized        = "Unauthorized."
	MessageForbidden           = "Forbidden."
	MessageNotFound            = "Not found."
	MessageConflict            = "Conflict."
	MessageUnprocessableEntity = "Unprocessable entity."
	MessageInternalServerError = "Internal server error."
	MessageError               = "Error."
	MessageInvalidPayload      = "Invalid request payload."
)

// Success writes {message?, <payload keys>, success: true}.
func Success(c fiber.Ctx, status int, message string, payload fiber.Map) error {
	body := fiber.Map{KeySuccess: true}
	if message != "" {
		body[KeyMessage] = message
	}
	for k, v := range payload {
		if k == KeySuccess {
			continue
		}
		body[k] = v
	}
	return c.Status(NormalizeStatus(status)).JSON(body)
}

// Error writes {message, success: false, error?}. cause is the raw failure
// text and is omitted when empty.
func Error(c fiber.Ctx, status int, message, cause string) error {
	st := NormalizeStatus(status)
	if message == "" {
		message = DefaultMessage(st)
	}
	body := fiber.Map{
		KeyMessage: message,
		KeySuccess: false,
	}
	if cause != "" {
		body[KeyError] = cause
	}
	return c.Status(st).JSON(body)
}

func NormalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessage(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
