package types

// Public error type discriminators returned to API consumers.
const (
	PublicHTTPErrorTypeGeneric = "generic"
)

// PublicHTTPError is the wire shape of every error response.
type PublicHTTPError struct {
	Code   *int64  `json:"status"`
	Type   *string `json:"type"`
	Title  *string `json:"title"`
	Detail string  `json:"detail,omitempty"`
}

// PublicHTTPValidationError extends PublicHTTPError with per-field details.
type PublicHTTPValidationError struct {
	PublicHTTPError
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// HTTPValidationErrorDetail names one offending field.
type HTTPValidationErrorDetail struct {
	Key   *string `json:"key"`
	In    *string `json:"in"`
	Error *string `json:"error"`
}
