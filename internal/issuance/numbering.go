package issuance

import (
	"fmt"
	"strings"

	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

// FormatCertificateNumber pads the record id to at least three digits and
// appends the prefix. Deleted reservations leave permanent gaps.
func FormatCertificateNumber(id uint, prefix string) string {
	return fmt.Sprintf("%03d/%s", id, prefix)
}

// EventPrefix returns the configured prefix, or the event name squeezed and
// upper-cased when none was set.
func EventPrefix(event *model.Event) string {
	if prefix := strings.TrimSpace(event.CertPrefix); prefix != "" {
		return prefix
	}
	return strings.ToUpper(strings.Join(strings.Fields(event.EventName), ""))
}

type NumberAllocator struct {
	certificates CertificateStore
}

func NewNumberAllocator(certificates CertificateStore) *NumberAllocator {
	return &NumberAllocator{certificates: certificates}
}

// Allocate formats the number for a reserved certificate and persists it
// before returning.
func (a *NumberAllocator) Allocate(reservedId uint, prefix string) (string, error) {
	certNo := FormatCertificateNumber(reservedId, prefix)

	if err := a.certificates.SetCertificateNumber(reservedId, certNo); err != nil {
		return "", err
	}

	return certNo, nil
}
