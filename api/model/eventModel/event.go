package eventmodel

import (
	"errors"
	"log/slog"

	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEventName = errors.New("event name already exists")
	ErrEventNotFound      = errors.New("event not found")
)

type EventRepository struct {
	db *gorm.DB
}

// EventDetail is an event with its whitelist and issued certificates.
type EventDetail struct {
	*model.Event
	WhitelistCount   int64 `json:"whitelist_count"`
	CertificateCount int64 `json:"certificate_count"`
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *model.Event) (*model.Event, error) {
	createErr := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(event).Error
	})

	if createErr != nil {
		if util.IsDuplicateKey(createErr) {
			return nil, ErrDuplicateEventName
		}
		slog.Error("Event Create", "error", createErr, "event_name", event.EventName)
		return nil, createErr
	}

	return event, nil
}

func (r *EventRepository) GetAll() ([]*model.Event, error) {
	var events []*model.Event
	if queryErr := r.db.Order("id DESC").Find(&events).Error; queryErr != nil {
		slog.Error("Event GetAll", "error", queryErr)
		return nil, queryErr
	}
	return events, nil
}

func (r *EventRepository) GetActive() ([]*model.Event, error) {
	var events []*model.Event
	if queryErr := r.db.Where("is_active = ?", true).Order("id DESC").Find(&events).Error; queryErr != nil {
		slog.Error("Event GetActive", "error", queryErr)
		return nil, queryErr
	}
	return events, nil
}

func (r *EventRepository) GetById(id uint) (*model.Event, error) {
	var event model.Event
	queryErr := r.db.Where("id = ?", id).First(&event).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Event GetById", "error", queryErr, "id", id)
		return nil, queryErr
	}

	return &event, nil
}

func (r *EventRepository) GetDetail(id uint) (*EventDetail, error) {
	var event model.Event
	queryErr := r.db.
		Preload("Whitelists", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Certificates", func(db *gorm.DB) *gorm.DB {
			return db.Order("issued_at DESC")
		}).
		Where("id = ?", id).
		First(&event).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Event GetDetail", "error", queryErr, "id", id)
		return nil, queryErr
	}

	if event.Whitelists == nil {
		event.Whitelists = []model.Whitelist{}
	}
	if event.Certificates == nil {
		event.Certificates = []model.Certificate{}
	}

	return &EventDetail{
		Event:            &event,
		WhitelistCount:   int64(len(event.Whitelists)),
		CertificateCount: int64(len(event.Certificates)),
	}, nil
}

// Update applies column updates and returns the fresh row.
func (r *EventRepository) Update(id uint, updates map[string]any) (*model.Event, error) {
	if len(updates) > 0 {
		updateErr := r.db.Transaction(func(tx *gorm.DB) error {
			return tx.Model(&model.Event{}).Where("id = ?", id).Updates(updates).Error
		})
		if updateErr != nil {
			if util.IsDuplicateKey(updateErr) {
				return nil, ErrDuplicateEventName
			}
			slog.Error("Event Update", "error", updateErr, "id", id)
			return nil, updateErr
		}
	}

	updated, fetchErr := r.GetById(id)
	if fetchErr != nil {
		return nil, fetchErr
	}
	if updated == nil {
		return nil, ErrEventNotFound
	}

	return updated, nil
}

// Delete removes the event together with its whitelist and certificates.
func (r *EventRepository) Delete(id uint) (*model.Event, error) {
	event, queryErr := r.GetById(id)
	if queryErr != nil {
		return nil, queryErr
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	deleteErr := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&model.Certificate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.Whitelist{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Event{}, id).Error
	})

	if deleteErr != nil {
		slog.Error("Event Delete", "error", deleteErr, "id", id)
		return nil, deleteErr
	}

	return event, nil
}
