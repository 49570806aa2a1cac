// Package common holds the response envelopes, error mapping and request
// binding shared by the HTTP handlers.
package common

import (
	"errors"
	"strconv"

	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/pkg/exchange"
	"github.com/amirasaad/globalremit/pkg/quote"
	"github.com/amirasaad/globalremit/pkg/service/wizard"
	"github.com/amirasaad/globalremit/pkg/session"
	"github.com/amirasaad/globalremit/pkg/validation"
	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/gofiber/fiber/v2"
)

// MIMEProblemJSON is the content type of problem responses.
const MIMEProblemJSON = "application/problem+json"

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. The status is
// derived from err unless an int is passed in opts; a string in opts replaces
// the detail. Field validation errors are reported under "errors".
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, opts ...any) error {
	status := fiber.StatusInternalServerError
	if err != nil {
		status = ErrorToStatusCode(err)
	}
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Instance: c.OriginalURL(),
	}

	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		pd.Detail = "One or more fields are invalid"
		pd.Errors = fieldErrs
	case err != nil && status < fiber.StatusInternalServerError:
		pd.Detail = err.Error()
	case err != nil:
		pd.Detail = "An unexpected error occurred"
	}

	for _, opt := range opts {
		switch v := opt.(type) {
		case int:
			status = v
		case string:
			pd.Detail = v
		}
	}
	pd.Status = status

	return c.Status(status).JSON(pd, MIMEProblemJSON)
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fiberErr *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, validation.ErrValidation),
		errors.Is(err, exchange.ErrInvalidRate):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, session.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, workflow.ErrStaleQuote),
		errors.Is(err, wizard.ErrNotFinalized):
		return fiber.StatusConflict
	case errors.Is(err, exchange.ErrRateNotFound),
		errors.Is(err, currency.ErrUnsupportedCurrency),
		errors.Is(err, quote.ErrInvalidAmount):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and applies its validate tags.
// On failure it writes the problem response and returns a nil input.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validation.Validate(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}

// ParseID reads a positive integer route parameter.
func ParseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}
