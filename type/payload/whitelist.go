package payload

type AddWhitelistPayload struct {
	Name string `json:"name" validate:"required,max=200"`
}

type BulkWhitelistPayload struct {
	Names []string `json:"names" validate:"required,min=1,dive,max=200"`
}
