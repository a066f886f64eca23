package domain

import "net/http"

// Problem types carried in APIError.Type
const (
	ErrorTypeValidation  = "validation_error"
	ErrorTypeBadRequest  = "bad_request"
	ErrorTypeNotFound    = "not_found"
	ErrorTypeConflict    = "conflict"
	ErrorTypeSyncAborted = "sync_aborted"
	ErrorTypeRateLimited = "rate_limited"
	ErrorTypeUnavailable = "service_unavailable"
	ErrorTypeInternal    = "internal_error"
)

// APIError is the problem-details body of every non-2xx API response
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// NewAPIError builds an APIError whose type and title follow status
func NewAPIError(status int, detail string) APIError {
	return APIError{
		Type:   ErrorTypeForStatus(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

// ErrorTypeForStatus maps the statuses the API answers with onto a problem type
func ErrorTypeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrorTypeBadRequest
	case http.StatusNotFound:
		return ErrorTypeNotFound
	case http.StatusConflict:
		return ErrorTypeConflict
	case http.StatusUnprocessableEntity:
		return ErrorTypeSyncAborted
	case http.StatusTooManyRequests:
		return ErrorTypeRateLimited
	case http.StatusServiceUnavailable:
		return ErrorTypeUnavailable
	default:
		return ErrorTypeInternal
	}
}

// validationMessages covers the validator tags used on request DTOs
var validationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Must be a valid email address",
	"max":      "Exceeds maximum length",
	"min":      "Below minimum length",
	"gte":      "Must not be negative",
	"uuid":     "Must be a valid UUID",
	"oneof":    "Must be one of Essentials, MSP, Break-Fix",
}

// GetValidationMessage returns a human-readable message for a validation tag
func GetValidationMessage(tag string) string {
	if msg, ok := validationMessages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}
