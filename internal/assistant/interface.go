package assistant

import "context"

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Handle routes a user message through the workflow and returns the
	// assistant's response. It never returns an error for failures that
	// have a defined fallback; only input validation errors surface.
	Handle(ctx context.Context, input HandleInput) (HandleOutput, error)
}
