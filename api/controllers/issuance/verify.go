package issuance_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-claim/api/controllers"
	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/type/response"
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

// VerificationData is what the public verification page shows.
type VerificationData struct {
	CertificateId     uint   `json:"certificate_id"`
	CertificateNumber string `json:"certificate_number"`
	Name              string `json:"name"`
	EventName         string `json:"event_name"`
	IssuedAt          string `json:"issued_at"`
}

func (ctrl *IssuanceController) Verify(c *fiber.Ctx) error {
	cert, ok, err := ctrl.completedCertificate(c)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if !ok {
		return response.SendNotFound(c, "Certificate not found")
	}

	event, err := ctrl.eventRepo.GetById(cert.EventID)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	data := VerificationData{
		CertificateId:     cert.ID,
		CertificateNumber: *cert.CertNo,
		Name:              cert.Name,
		IssuedAt:          cert.IssuedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if event != nil {
		data.EventName = event.EventName
	}

	return response.SendSuccess(c, "Certificate verified", data)
}

func (ctrl *IssuanceController) QRCode(c *fiber.Ctx) error {
	cert, ok, err := ctrl.completedCertificate(c)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if !ok {
		return response.SendNotFound(c, "Certificate not found")
	}

	png, err := util.VerificationQR(ctrl.verifyHost, cert.ID)
	if err != nil {
		slog.Error("Certificate QR generation failed", "error", err, "certificate_id", cert.ID)
		return response.SendInternalError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}

// completedCertificate loads the certificate in the route and hides
// reservations that never received a number.
func (ctrl *IssuanceController) completedCertificate(c *fiber.Ctx) (*model.Certificate, bool, error) {
	certId, ok := controllers.ParamID(c, "certId")
	if !ok {
		return nil, false, nil
	}

	cert, err := ctrl.certificateRepo.GetById(certId)
	if err != nil {
		return nil, false, err
	}
	if cert == nil || !cert.IsCompleted() {
		return nil, false, nil
	}

	return cert, true, nil
}
