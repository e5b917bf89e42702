package whitelist_controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-claim/api/controllers"
	whitelistmodel "github.com/sunthewhat/easy-cert-claim/api/model/whitelistModel"
	"github.com/sunthewhat/easy-cert-claim/type/response"
)

func (ctrl *WhitelistController) Delete(c *fiber.Ctx) error {
	event, err := ctrl.loadEvent(c)
	if event == nil {
		return err
	}

	entryId, ok := controllers.ParamID(c, "entryId")
	if !ok {
		return response.SendFailed(c, "Invalid whitelist entry ID")
	}

	if err := ctrl.whitelistRepo.Delete(event.ID, entryId); err != nil {
		if errors.Is(err, whitelistmodel.ErrEntryNotFound) {
			return response.SendNotFound(c, "Whitelist entry not found")
		}
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Whitelist entry deleted")
}
