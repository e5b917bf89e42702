package whitelist_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	whitelistmodel "github.com/sunthewhat/easy-cert-claim/api/model/whitelistModel"
	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/type/payload"
	"github.com/sunthewhat/easy-cert-claim/type/response"
)

func (ctrl *WhitelistController) Add(c *fiber.Ctx) error {
	event, err := ctrl.loadEvent(c)
	if event == nil {
		return err
	}

	body := new(payload.AddWhitelistPayload)
	if err := c.BodyParser(body); err != nil {
		slog.Warn("Whitelist Add body parsing failed", "error", err, "event_id", event.ID)
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	entry, err := ctrl.whitelistRepo.Add(event.ID, body.Name)
	if err != nil {
		switch {
		case errors.Is(err, whitelistmodel.ErrDuplicateName):
			return response.SendFailed(c, "Name already registered for this event")
		case errors.Is(err, whitelistmodel.ErrEmptyName):
			return response.SendFailed(c, "Name is required")
		}
		return response.SendInternalError(c, err)
	}

	slog.Info("Whitelist Add successful", "event_id", event.ID, "entry_id", entry.ID)

	return response.SendCreated(c, "Whitelist entry added", entry)
}

func (ctrl *WhitelistController) AddBulk(c *fiber.Ctx) error {
	event, err := ctrl.loadEvent(c)
	if event == nil {
		return err
	}

	body := new(payload.BulkWhitelistPayload)
	if err := c.BodyParser(body); err != nil {
		slog.Warn("Whitelist AddBulk body parsing failed", "error", err, "event_id", event.ID)
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	result, err := ctrl.whitelistRepo.AddMany(event.ID, body.Names)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	return response.SendCreated(c, "Whitelist entries added", result)
}
