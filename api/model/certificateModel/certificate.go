package certificatemodel

import (
	"errors"
	"log/slog"

	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
	"gorm.io/gorm"
)

var ErrCertificateNotFound = errors.New("certificate not found")

// CertificateRepository stores issuance records. Ids come from the table's
// serial key, which is what certificate numbers are derived from.
type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Reserve inserts a record without a number and returns it with its new id.
func (r *CertificateRepository) Reserve(eventId uint, name string) (*model.Certificate, error) {
	cert := &model.Certificate{
		EventID: eventId,
		Name:    name,
	}

	if createErr := r.db.Create(cert).Error; createErr != nil {
		slog.Error("Certificate Reserve", "error", createErr, "event_id", eventId)
		return nil, createErr
	}

	return cert, nil
}

func (r *CertificateRepository) SetCertificateNumber(id uint, certNo string) error {
	result := r.db.Model(&model.Certificate{}).Where("id = ?", id).Update("cert_no", certNo)
	if result.Error != nil {
		slog.Error("Certificate SetCertificateNumber", "error", result.Error, "id", id)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCertificateNotFound
	}
	return nil
}

func (r *CertificateRepository) Delete(id uint) error {
	if deleteErr := r.db.Delete(&model.Certificate{}, id).Error; deleteErr != nil {
		slog.Error("Certificate Delete", "error", deleteErr, "id", id)
		return deleteErr
	}
	return nil
}

func (r *CertificateRepository) GetById(id uint) (*model.Certificate, error) {
	var cert model.Certificate
	queryErr := r.db.Where("id = ?", id).First(&cert).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Certificate GetById", "error", queryErr, "id", id)
		return nil, queryErr
	}

	return &cert, nil
}

func (r *CertificateRepository) ListByEvent(eventId uint) ([]*model.Certificate, error) {
	var certs []*model.Certificate
	queryErr := r.db.Where("event_id = ?", eventId).Order("issued_at DESC").Find(&certs).Error

	if queryErr != nil {
		slog.Error("Certificate ListByEvent", "error", queryErr, "event_id", eventId)
		return nil, queryErr
	}

	return certs, nil
}
