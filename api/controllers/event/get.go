package event_controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-claim/api/controllers"
	"github.com/sunthewhat/easy-cert-claim/type/response"
)

// PublicEvent is the subset of an event shown to claimants.
type PublicEvent struct {
	ID         uint       `json:"id"`
	EventName  string     `json:"event_name"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

func (ctrl *EventController) GetAll(c *fiber.Ctx) error {
	events, err := ctrl.eventRepo.GetAll()
	if err != nil {
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Event fetched", events)
}

func (ctrl *EventController) GetPublic(c *fiber.Ctx) error {
	events, err := ctrl.eventRepo.GetActive()
	if err != nil {
		return response.SendInternalError(c, err)
	}

	public := make([]PublicEvent, 0, len(events))
	for _, event := range events {
		public = append(public, PublicEvent{
			ID:         event.ID,
			EventName:  event.EventName,
			ExpiryDate: event.ExpiryDate,
		})
	}

	return response.SendSuccess(c, "Event fetched", public)
}

func (ctrl *EventController) GetById(c *fiber.Ctx) error {
	id, ok := controllers.ParamID(c, "id")
	if !ok {
		return response.SendFailed(c, "Invalid event ID")
	}

	detail, err := ctrl.eventRepo.GetDetail(id)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if detail == nil {
		return response.SendNotFound(c, "Event not found")
	}

	return response.SendSuccess(c, "Event fetched", detail)
}
