package response

// RequestIDKey Key under which middleware stores the request id in the
// gin context.
const RequestIDKey = "request_id"

// SessionIDKey Key under which middleware stores the storefront session
// id in the gin context.
const SessionIDKey = "session_id"

// Response Uniform response envelope.
type Response struct {
	Success   bool              `json:"success"`
	Data      interface{}       `json:"data,omitempty"`
	Error     string            `json:"error,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	RequestID string            `json:"request_id,omitempty"`
}
