package port

import (
	"errors"
	"fmt"
)

// FallbackErrorMessage is shown when a failed response carries no readable
// detail. Matches the console's generic notification text.
const FallbackErrorMessage = "Ocorreu um erro. Tente novamente."

// ErrUnauthorized marks a 401 response after the global handler has already
// run. Callers may match it with errors.Is.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the backend. Detail carries the
// `detail` field of the error body when one was present.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api: %d", e.StatusCode)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == 401
}

// ErrorMessage extracts a user-facing message from err: the backend detail
// when present, the fallback otherwise.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return FallbackErrorMessage
}
