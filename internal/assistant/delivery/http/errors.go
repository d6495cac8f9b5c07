package http

import (
	"errors"

	"financial-assistant/internal/assistant"
)

// mapError translates domain/use-case errors into client-facing ones.
func (h *handler) mapError(err error) error {
	switch err {
	case assistant.ErrEmptyMessage:
		return errors.New("message must not be empty")
	default:
		return err
	}
}
