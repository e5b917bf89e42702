package response

type ErrorResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Code    *string `json:"code,omitempty"`
}

func Error(msg any) *ErrorResponse {
	if message, ok := msg.(string); ok {
		return &ErrorResponse{
			Success: false,
			Message: &message,
		}
	}
	unknown := "Unknown Error"
	return &ErrorResponse{
		Success: false,
		Message: &unknown,
	}
}

// ErrorWithCode attaches a machine-readable reason to the message.
func ErrorWithCode(msg string, code string) *ErrorResponse {
	resp := Error(msg)
	if code != "" {
		resp.Code = &code
	}
	return resp
}
