package whitelist_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-claim/api/controllers"
	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
	whitelistmodel "github.com/sunthewhat/easy-cert-claim/api/model/whitelistModel"
	"github.com/sunthewhat/easy-cert-claim/type/response"
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

// WhitelistController manages the names allowed to claim for an event
type WhitelistController struct {
	whitelistRepo whitelistmodel.IWhitelistRepository
	eventRepo     eventmodel.IEventRepository
}

// NewWhitelistController creates a new whitelist controller with injected dependencies
func NewWhitelistController(whitelistRepo whitelistmodel.IWhitelistRepository, eventRepo eventmodel.IEventRepository) *WhitelistController {
	return &WhitelistController{
		whitelistRepo: whitelistRepo,
		eventRepo:     eventRepo,
	}
}

// loadEvent resolves the :id route parameter. When it returns nil the
// response has already been written.
func (ctrl *WhitelistController) loadEvent(c *fiber.Ctx) (*model.Event, error) {
	id, ok := controllers.ParamID(c, "id")
	if !ok {
		return nil, response.SendFailed(c, "Invalid event ID")
	}

	event, err := ctrl.eventRepo.GetById(id)
	if err != nil {
		return nil, response.SendInternalError(c, err)
	}
	if event == nil {
		return nil, response.SendNotFound(c, "Event not found")
	}

	return event, nil
}
