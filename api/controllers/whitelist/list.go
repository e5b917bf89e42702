package whitelist_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-claim/type/response"
)

func (ctrl *WhitelistController) List(c *fiber.Ctx) error {
	event, err := ctrl.loadEvent(c)
	if event == nil {
		return err
	}

	entries, err := ctrl.whitelistRepo.ListByEvent(event.ID)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Whitelist fetched", entries)
}
