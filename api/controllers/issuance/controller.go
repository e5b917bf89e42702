package issuance_controller

import (
	"context"

	certificatemodel "github.com/sunthewhat/easy-cert-claim/api/model/certificateModel"
	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
	"github.com/sunthewhat/easy-cert-claim/internal/issuance"
)

type Issuer interface {
	Issue(ctx context.Context, eventId uint, participantName string) (*issuance.Result, error)
}

// IssuanceController handles public certificate claims and verification
type IssuanceController struct {
	issuer          Issuer
	certificateRepo certificatemodel.ICertificateRepository
	eventRepo       eventmodel.IEventRepository
	verifyHost      string
}

// NewIssuanceController creates a new issuance controller with injected dependencies
func NewIssuanceController(
	issuer Issuer,
	certificateRepo certificatemodel.ICertificateRepository,
	eventRepo eventmodel.IEventRepository,
	verifyHost string,
) *IssuanceController {
	return &IssuanceController{
		issuer:          issuer,
		certificateRepo: certificateRepo,
		eventRepo:       eventRepo,
		verifyHost:      verifyHost,
	}
}
