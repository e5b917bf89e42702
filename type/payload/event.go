package payload

// CreateEventPayload is sent as multipart form data alongside the template
// file.
type CreateEventPayload struct {
	EventName  string  `form:"event_name" validate:"required,max=200"`
	CertPrefix string  `form:"cert_prefix" validate:"required,max=100"`
	ExpiryDate string  `form:"expiry_date"`
	NameX      float64 `form:"name_x"`
	NameY      float64 `form:"name_y"`
	CertX      float64 `form:"cert_x"`
	CertY      float64 `form:"cert_y"`
	IsActive   *bool   `form:"is_active"`
}

// UpdateEventPayload carries optional changes. Nil fields are left alone.
type UpdateEventPayload struct {
	EventName  *string  `json:"event_name" form:"event_name" validate:"omitempty,max=200"`
	CertPrefix *string  `json:"cert_prefix" form:"cert_prefix" validate:"omitempty,max=100"`
	ExpiryDate *string  `json:"expiry_date" form:"expiry_date"`
	NameX      *float64 `json:"name_x" form:"name_x"`
	NameY      *float64 `json:"name_y" form:"name_y"`
	CertX      *float64 `json:"cert_x" form:"cert_x"`
	CertY      *float64 `json:"cert_y" form:"cert_y"`
	IsActive   *bool    `json:"is_active" form:"is_active"`
}
