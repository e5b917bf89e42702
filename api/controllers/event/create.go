package event_controller

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/type/payload"
	"github.com/sunthewhat/easy-cert-claim/type/response"
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	body := new(payload.CreateEventPayload)

	if err := c.BodyParser(body); err != nil {
		slog.Warn("Event Create body parsing failed", "error", err)
		return response.SendFailed(c, "Failed to parse body")
	}

	body.EventName = util.CleanName(body.EventName)
	body.CertPrefix = strings.ToUpper(strings.TrimSpace(body.CertPrefix))

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		slog.Warn("Event Create validation failed", "error", errors[0])
		return response.SendFailed(c, errors[0])
	}

	expiryDate, err := parseExpiry(body.ExpiryDate)
	if err != nil {
		return response.SendFailed(c, err.Error())
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.SendFailed(c, "Template file is required")
	}

	templateURL, err := ctrl.uploadTemplate(c.UserContext(), file)
	if err != nil {
		slog.Warn("Event Create template rejected", "error", err, "filename", file.Filename)
		return response.SendFailed(c, err.Error())
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	event, err := ctrl.eventRepo.Create(&model.Event{
		EventName:   body.EventName,
		CertPrefix:  body.CertPrefix,
		ExpiryDate:  expiryDate,
		IsActive:    isActive,
		TemplateURL: templateURL,
		NameX:       body.NameX,
		NameY:       body.NameY,
		CertX:       body.CertX,
		CertY:       body.CertY,
	})
	if err != nil {
		ctrl.discardTemplate(c.UserContext(), templateURL)
		if errors.Is(err, eventmodel.ErrDuplicateEventName) {
			return response.SendFailed(c, "Event name already exists")
		}
		return response.SendInternalError(c, err)
	}

	slog.Info("Event Create successful", "event_id", event.ID, "event_name", event.EventName)

	return response.SendSuccess(c, "Event created", event)
}
