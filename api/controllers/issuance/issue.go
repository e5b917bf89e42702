package issuance_controller

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/internal/issuance"
	"github.com/sunthewhat/easy-cert-claim/type/payload"
	"github.com/sunthewhat/easy-cert-claim/type/response"
)

const HeaderCertificateNumber = "X-Certificate-Number"

func (ctrl *IssuanceController) Issue(c *fiber.Ctx) error {
	body := new(payload.IssueCertificatePayload)

	if err := c.BodyParser(body); err != nil {
		slog.Warn("Issuance body parsing failed", "error", err)
		return response.SendCoded(c, fiber.StatusBadRequest, "Failed to parse body", "validation")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendCoded(c, fiber.StatusBadRequest, errors[0], "validation")
	}

	result, err := ctrl.issuer.Issue(c.UserContext(), body.EventId, body.Name)
	if err != nil {
		return sendIssuanceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="Certificate-%s.pdf"`, util.SanitizeFilename(result.ParticipantName)))
	c.Set(HeaderCertificateNumber, result.CertificateNumber)

	return c.Status(fiber.StatusOK).Send(result.Document)
}

func sendIssuanceError(c *fiber.Ctx, err error) error {
	var expired *issuance.ExpiredError

	switch {
	case errors.Is(err, issuance.ErrValidation):
		return response.SendCoded(c, fiber.StatusBadRequest, "Name and event are required", "validation")
	case errors.Is(err, issuance.ErrEventNotFound):
		return response.SendCoded(c, fiber.StatusNotFound, "Event not found", "event_not_found")
	case errors.Is(err, issuance.ErrEventInactive):
		return response.SendCoded(c, fiber.StatusForbidden, "This event is no longer active", "event_inactive")
	case errors.As(err, &expired):
		return response.SendCoded(c, fiber.StatusForbidden,
			fmt.Sprintf("The claim period ended at %s", expired.Deadline.Format(time.RFC3339)), "event_expired")
	case errors.Is(err, issuance.ErrUnauthorized):
		return response.SendCoded(c, fiber.StatusForbidden, "Your name is not registered for this event. Please contact the organizer", "unauthorized")
	case errors.Is(err, util.ErrTemplateNotFound):
		return response.SendCoded(c, fiber.StatusNotFound, "Certificate template not found", "template_not_found")
	case errors.Is(err, issuance.ErrTemplateUnavailable):
		return response.SendCoded(c, fiber.StatusInternalServerError, "Certificate template is unavailable. Please try again later", "template_unavailable")
	case errors.Is(err, issuance.ErrRender):
		return response.SendCoded(c, fiber.StatusInternalServerError, "Failed to render the certificate template", "render_failed")
	case errors.Is(err, issuance.ErrStorage):
		return response.SendCoded(c, fiber.StatusInternalServerError, "Failed to store the certificate record", "storage_failed")
	default:
		slog.Error("Issuance unexpected error", "error", err)
		return response.SendCoded(c, fiber.StatusInternalServerError, "Failed to process certificate", "internal")
	}
}
