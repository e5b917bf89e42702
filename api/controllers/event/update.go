package event_controller

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-claim/api/controllers"
	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/type/payload"
	"github.com/sunthewhat/easy-cert-claim/type/response"
)

// Update edits an event. Multipart requests may carry a replacement
// template, and a multipart form without an expiry clears it. JSON requests
// only touch the fields they contain.
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, ok := controllers.ParamID(c, "id")
	if !ok {
		return response.SendFailed(c, "Invalid event ID")
	}

	existing, err := ctrl.eventRepo.GetById(id)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if existing == nil {
		return response.SendNotFound(c, "Event not found")
	}

	body := new(payload.UpdateEventPayload)
	if err := c.BodyParser(body); err != nil {
		slog.Warn("Event Update body parsing failed", "error", err, "event_id", id)
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	isMultipart := strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)

	updates, err := buildUpdates(body, isMultipart)
	if err != nil {
		return response.SendFailed(c, err.Error())
	}

	newTemplateURL := ""
	if isMultipart {
		if file, fileErr := c.FormFile("file"); fileErr == nil && file.Size > 0 {
			newTemplateURL, err = ctrl.uploadTemplate(c.UserContext(), file)
			if err != nil {
				slog.Warn("Event Update template rejected", "error", err, "event_id", id)
				return response.SendFailed(c, err.Error())
			}
			updates["template_url"] = newTemplateURL
		}
	}

	updated, err := ctrl.eventRepo.Update(id, updates)
	if err != nil {
		ctrl.discardTemplate(c.UserContext(), newTemplateURL)
		switch {
		case errors.Is(err, eventmodel.ErrDuplicateEventName):
			return response.SendFailed(c, "Event name already exists")
		case errors.Is(err, eventmodel.ErrEventNotFound):
			return response.SendNotFound(c, "Event not found")
		}
		return response.SendInternalError(c, err)
	}

	if newTemplateURL != "" && existing.TemplateURL != newTemplateURL {
		ctrl.discardTemplate(c.UserContext(), existing.TemplateURL)
	}

	slog.Info("Event Update successful", "event_id", id, "fields", len(updates))

	return response.SendSuccess(c, "Event updated", updated)
}

// buildUpdates turns the optional payload fields into column updates.
func buildUpdates(body *payload.UpdateEventPayload, clearMissingExpiry bool) (map[string]any, error) {
	updates := make(map[string]any)

	if body.EventName != nil {
		if name := util.CleanName(*body.EventName); name != "" {
			updates["event_name"] = name
		}
	}
	if body.CertPrefix != nil {
		if prefix := strings.ToUpper(strings.TrimSpace(*body.CertPrefix)); prefix != "" {
			updates["cert_prefix"] = prefix
		}
	}

	if body.ExpiryDate != nil {
		expiry, err := parseExpiry(*body.ExpiryDate)
		if err != nil {
			return nil, err
		}
		updates["expiry_date"] = expiry
	} else if clearMissingExpiry {
		updates["expiry_date"] = nil
	}

	if body.NameX != nil {
		updates["name_x"] = *body.NameX
	}
	if body.NameY != nil {
		updates["name_y"] = *body.NameY
	}
	if body.CertX != nil {
		updates["cert_x"] = *body.CertX
	}
	if body.CertY != nil {
		updates["cert_y"] = *body.CertY
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}

	return updates, nil
}
