package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	issuance_controller "github.com/sunthewhat/easy-cert-claim/api/controllers/issuance"
	certificatemodel "github.com/sunthewhat/easy-cert-claim/api/model/certificateModel"
	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
	whitelistmodel "github.com/sunthewhat/easy-cert-claim/api/model/whitelistModel"
	"github.com/sunthewhat/easy-cert-claim/common"
	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/internal/issuance"
	"github.com/sunthewhat/easy-cert-claim/internal/renderer"
)

func SetupIssuanceRoutes(public fiber.Router, templates *util.TemplateStore) {
	eventRepo := eventmodel.NewEventRepository(common.Gorm)
	whitelistRepo := whitelistmodel.NewWhitelistRepository(common.Gorm)
	certificateRepo := certificatemodel.NewCertificateRepository(common.Gorm)

	orchestrator := issuance.NewOrchestrator(
		eventRepo,
		whitelistRepo,
		certificateRepo,
		templates,
		renderer.NewOverlayEngine(),
		issuance.WithSigner(newSigner()),
	)

	ctrl := issuance_controller.NewIssuanceController(orchestrator, certificateRepo, eventRepo, *common.Config.VerifyHost)

	public.Post("issuance", ctrl.Issue)

	certificateGroup := public.Group("certificate")
	certificateGroup.Get("verify/:certId", ctrl.Verify)
	certificateGroup.Get("qr/:certId", ctrl.QRCode)
}

// newSigner falls back to unsigned output when the signing material cannot
// be loaded.
func newSigner() *renderer.CertificateSigner {
	cfg := renderer.SignerConfig{}
	if common.Config.SigningEnabled != nil {
		cfg.Enabled = *common.Config.SigningEnabled
	}
	if common.Config.SigningCertPath != nil {
		cfg.CertPath = *common.Config.SigningCertPath
	}
	if common.Config.SigningKeyPath != nil {
		cfg.KeyPath = *common.Config.SigningKeyPath
	}

	signer, err := renderer.NewCertificateSigner(cfg)
	if err != nil {
		slog.Warn("PDF signer unavailable, certificates will be unsigned", "error", err)
		signer, _ = renderer.NewCertificateSigner(renderer.SignerConfig{})
	}
	return signer
}
