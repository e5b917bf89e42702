package eventmodel

import (
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

// IEventRepository defines the interface for event repository operations
type IEventRepository interface {
	Create(event *model.Event) (*model.Event, error)
	GetAll() ([]*model.Event, error)
	GetActive() ([]*model.Event, error)
	GetById(id uint) (*model.Event, error)
	GetDetail(id uint) (*EventDetail, error)
	Update(id uint, updates map[string]any) (*model.Event, error)
	Delete(id uint) (*model.Event, error)
}

var _ IEventRepository = (*EventRepository)(nil)

// MockEventRepository is a mock implementation for testing
type MockEventRepository struct {
	CreateFunc    func(event *model.Event) (*model.Event, error)
	GetAllFunc    func() ([]*model.Event, error)
	GetActiveFunc func() ([]*model.Event, error)
	GetByIdFunc   func(id uint) (*model.Event, error)
	GetDetailFunc func(id uint) (*EventDetail, error)
	UpdateFunc    func(id uint, updates map[string]any) (*model.Event, error)
	DeleteFunc    func(id uint) (*model.Event, error)
}

var _ IEventRepository = (*MockEventRepository)(nil)

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) Create(event *model.Event) (*model.Event, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(event)
	}
	return event, nil
}

func (m *MockEventRepository) GetAll() ([]*model.Event, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockEventRepository) GetActive() ([]*model.Event, error) {
	if m.GetActiveFunc != nil {
		return m.GetActiveFunc()
	}
	return nil, nil
}

func (m *MockEventRepository) GetById(id uint) (*model.Event, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockEventRepository) GetDetail(id uint) (*EventDetail, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(id)
	}
	return nil, nil
}

func (m *MockEventRepository) Update(id uint, updates map[string]any) (*model.Event, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, updates)
	}
	return nil, nil
}

func (m *MockEventRepository) Delete(id uint) (*model.Event, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil, nil
}
