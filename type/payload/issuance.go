package payload

type IssueCertificatePayload struct {
	EventId uint   `json:"event_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=200"`
}
