package assistant

import "errors"

var (
	// ErrEmptyMessage is returned when the request carries no message text.
	ErrEmptyMessage = errors.New("message is required")
)
