package event_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-claim/api/controllers"
	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
	"github.com/sunthewhat/easy-cert-claim/type/response"
)

func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, ok := controllers.ParamID(c, "id")
	if !ok {
		return response.SendFailed(c, "Invalid event ID")
	}

	deleted, err := ctrl.eventRepo.Delete(id)
	if err != nil {
		if errors.Is(err, eventmodel.ErrEventNotFound) {
			return response.SendNotFound(c, "Event not found")
		}
		return response.SendInternalError(c, err)
	}

	ctrl.discardTemplate(c.UserContext(), deleted.TemplateURL)

	slog.Info("Event Delete successful", "event_id", id, "event_name", deleted.EventName)

	return response.SendSuccess(c, "Event deleted", deleted)
}
