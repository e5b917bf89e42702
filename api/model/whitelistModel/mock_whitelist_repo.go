package whitelistmodel

import (
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

// IWhitelistRepository defines the interface for whitelist repository operations
type IWhitelistRepository interface {
	ListByEvent(eventId uint) ([]*model.Whitelist, error)
	Add(eventId uint, name string) (*model.Whitelist, error)
	AddMany(eventId uint, names []string) (*BulkAddResult, error)
	Delete(eventId uint, entryId uint) error
}

var _ IWhitelistRepository = (*WhitelistRepository)(nil)

// MockWhitelistRepository is a mock implementation for testing
type MockWhitelistRepository struct {
	ListByEventFunc func(eventId uint) ([]*model.Whitelist, error)
	AddFunc         func(eventId uint, name string) (*model.Whitelist, error)
	AddManyFunc     func(eventId uint, names []string) (*BulkAddResult, error)
	DeleteFunc      func(eventId uint, entryId uint) error
}

var _ IWhitelistRepository = (*MockWhitelistRepository)(nil)

func NewMockWhitelistRepository() *MockWhitelistRepository {
	return &MockWhitelistRepository{}
}

func (m *MockWhitelistRepository) ListByEvent(eventId uint) ([]*model.Whitelist, error) {
	if m.ListByEventFunc != nil {
		return m.ListByEventFunc(eventId)
	}
	return nil, nil
}

func (m *MockWhitelistRepository) Add(eventId uint, name string) (*model.Whitelist, error) {
	if m.AddFunc != nil {
		return m.AddFunc(eventId, name)
	}
	return nil, nil
}

func (m *MockWhitelistRepository) AddMany(eventId uint, names []string) (*BulkAddResult, error) {
	if m.AddManyFunc != nil {
		return m.AddManyFunc(eventId, names)
	}
	return nil, nil
}

func (m *MockWhitelistRepository) Delete(eventId uint, entryId uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(eventId, entryId)
	}
	return nil
}
