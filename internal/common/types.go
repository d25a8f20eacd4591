package common

// APIResponse is the envelope returned by every HTTP endpoint. Callers of the
// legacy services only ever saw a success flag plus a free-text error, so the
// boundary keeps that exact shape.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse wraps data in a successful envelope.
func SuccessResponse(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// ErrorResponse builds a failed envelope with a message.
func ErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Error: message}
}
