package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// Authentication
	ErrTokenRequired  ErrCode = "TOKEN_REQUIRED"
	ErrSessionInvalid ErrCode = "SESSION_INVALID"

	// Validation
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrContentFormat  ErrCode = "CONTENT_FORMAT_ERROR"

	// Submission
	ErrModuleRejected ErrCode = "MODULE_REJECTED"
	ErrBackendDown    ErrCode = "BACKEND_UNREACHABLE"

	// Server
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrTokenRequired:
		return "Sign in to use the dashboard."
	case ErrSessionInvalid:
		return "Your session has ended. Please sign in again."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrContentFormat:
		return "The module content is malformed."
	case ErrModuleRejected:
		return "The platform rejected the module."
	case ErrBackendDown:
		return "Network error: the platform could not be reached. Your draft is kept — try again."
	case ErrInternal:
		return "An internal error occurred."
	default:
		return "An unexpected error occurred."
	}
}
