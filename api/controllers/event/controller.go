package event_controller

import (
	"context"

	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
)

// TemplateStorage keeps uploaded certificate templates.
type TemplateStorage interface {
	Upload(ctx context.Context, objectName string, data []byte) (string, error)
	Remove(ctx context.Context, location string) error
}

// EventController handles event administration requests
type EventController struct {
	eventRepo eventmodel.IEventRepository
	templates TemplateStorage
}

// NewEventController creates a new event controller with injected dependencies
func NewEventController(eventRepo eventmodel.IEventRepository, templates TemplateStorage) *EventController {
	return &EventController{
		eventRepo: eventRepo,
		templates: templates,
	}
}
