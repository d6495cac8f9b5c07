package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned for unexpected internal errors.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error code for 500 responses.
	InternalServerErrorCode = 500
)
