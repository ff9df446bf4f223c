package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Dashboard
	RecentTicketsLimit = 5

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
)
