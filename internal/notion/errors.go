package notion

import (
	"errors"
	"fmt"
)

// Sentinel errors for API operations.
var (
	ErrRequest     = errors.New("notion: request failed")
	ErrAPIResponse = errors.New("notion: unexpected API response")
	ErrDecode      = errors.New("notion: failed to decode response")
)

// APIError describes a non-2xx response. It matches ErrAPIResponse with
// errors.Is.
type APIError struct {
	Status  int    // HTTP status code
	Code    string // Notion error code, e.g. "object_not_found"
	Message string // Notion error message
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: status %d", ErrAPIResponse, e.Status)
	}
	return fmt.Sprintf("%s: status %d: %s: %s", ErrAPIResponse, e.Status, e.Code, e.Message)
}

// Is reports whether target is ErrAPIResponse.
func (e *APIError) Is(target error) bool {
	return target == ErrAPIResponse
}
