package response

type SuccessResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Data    any     `json:"data,omitempty"`
}

// Success builds a success body. A string first argument is the message and
// the optional second is the data; anything else is treated as the data.
func Success(msg any, data ...any) *SuccessResponse {
	message, ok := msg.(string)
	if !ok {
		return &SuccessResponse{
			Success: true,
			Data:    msg,
		}
	}

	resp := &SuccessResponse{
		Success: true,
		Message: &message,
	}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	return resp
}
