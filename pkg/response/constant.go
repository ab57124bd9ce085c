package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned for unexpected internal failures.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error code for internal failures.
	InternalServerErrorCode = 500
)
