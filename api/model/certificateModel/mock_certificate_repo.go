package certificatemodel

import (
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

// ICertificateRepository defines the interface for certificate repository operations
type ICertificateRepository interface {
	Reserve(eventId uint, name string) (*model.Certificate, error)
	SetCertificateNumber(id uint, certNo string) error
	Delete(id uint) error
	GetById(id uint) (*model.Certificate, error)
	ListByEvent(eventId uint) ([]*model.Certificate, error)
}

var _ ICertificateRepository = (*CertificateRepository)(nil)

// MockCertificateRepository is a mock implementation for testing
type MockCertificateRepository struct {
	ReserveFunc              func(eventId uint, name string) (*model.Certificate, error)
	SetCertificateNumberFunc func(id uint, certNo string) error
	DeleteFunc               func(id uint) error
	GetByIdFunc              func(id uint) (*model.Certificate, error)
	ListByEventFunc          func(eventId uint) ([]*model.Certificate, error)
}

var _ ICertificateRepository = (*MockCertificateRepository)(nil)

func NewMockCertificateRepository() *MockCertificateRepository {
	return &MockCertificateRepository{}
}

func (m *MockCertificateRepository) Reserve(eventId uint, name string) (*model.Certificate, error) {
	if m.ReserveFunc != nil {
		return m.ReserveFunc(eventId, name)
	}
	return nil, nil
}

func (m *MockCertificateRepository) SetCertificateNumber(id uint, certNo string) error {
	if m.SetCertificateNumberFunc != nil {
		return m.SetCertificateNumberFunc(id, certNo)
	}
	return nil
}

func (m *MockCertificateRepository) Delete(id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

func (m *MockCertificateRepository) GetById(id uint) (*model.Certificate, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockCertificateRepository) ListByEvent(eventId uint) ([]*model.Certificate, error) {
	if m.ListByEventFunc != nil {
		return m.ListByEventFunc(eventId)
	}
	return nil, nil
}
