package whitelistmodel

import (
	"errors"
	"log/slog"

	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
	"gorm.io/gorm"
)

var (
	ErrDuplicateName = errors.New("name already registered for this event")
	ErrEmptyName     = errors.New("name must not be empty")
	ErrEntryNotFound = errors.New("whitelist entry not found")
)

type WhitelistRepository struct {
	db *gorm.DB
}

// BulkAddResult reports which names were stored and which were already
// present for the event.
type BulkAddResult struct {
	Created    []*model.Whitelist `json:"created"`
	Duplicates []string           `json:"duplicates"`
	Skipped    int                `json:"skipped"`
}

func NewWhitelistRepository(db *gorm.DB) *WhitelistRepository {
	return &WhitelistRepository{db: db}
}

func (r *WhitelistRepository) ListByEvent(eventId uint) ([]*model.Whitelist, error) {
	var entries []*model.Whitelist
	queryErr := r.db.Where("event_id = ?", eventId).Order("created_at DESC").Find(&entries).Error

	if queryErr != nil {
		slog.Error("Whitelist ListByEvent", "error", queryErr, "event_id", eventId)
		return nil, queryErr
	}

	return entries, nil
}

// Add stores one name. A name whose normalized form already exists for the
// event returns ErrDuplicateName.
func (r *WhitelistRepository) Add(eventId uint, name string) (*model.Whitelist, error) {
	entry := &model.Whitelist{
		EventID: eventId,
		Name:    util.CleanName(name),
		NameKey: util.NormalizeName(name),
	}
	if entry.NameKey == "" {
		return nil, ErrEmptyName
	}

	// Nested in a savepoint so a constraint violation does not poison an
	// enclosing transaction.
	createErr := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})

	if createErr != nil {
		if util.IsDuplicateKey(createErr) {
			return nil, ErrDuplicateName
		}
		slog.Error("Whitelist Add", "error", createErr, "event_id", eventId)
		return nil, createErr
	}

	return entry, nil
}

// AddMany stores every new name and reports duplicates instead of failing.
func (r *WhitelistRepository) AddMany(eventId uint, names []string) (*BulkAddResult, error) {
	result := &BulkAddResult{
		Created:    []*model.Whitelist{},
		Duplicates: []string{},
	}
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		key := util.NormalizeName(name)
		if key == "" {
			result.Skipped++
			continue
		}
		if seen[key] {
			result.Duplicates = append(result.Duplicates, util.CleanName(name))
			continue
		}
		seen[key] = true

		entry, err := r.Add(eventId, name)
		if err != nil {
			if errors.Is(err, ErrDuplicateName) {
				result.Duplicates = append(result.Duplicates, util.CleanName(name))
				continue
			}
			return nil, err
		}
		result.Created = append(result.Created, entry)
	}

	slog.Info("Whitelist AddMany completed",
		"event_id", eventId,
		"requested", len(names),
		"created", len(result.Created),
		"duplicates", len(result.Duplicates),
		"skipped", result.Skipped)

	return result, nil
}

func (r *WhitelistRepository) Delete(eventId uint, entryId uint) error {
	result := r.db.Where("event_id = ? AND id = ?", eventId, entryId).Delete(&model.Whitelist{})
	if result.Error != nil {
		slog.Error("Whitelist Delete", "error", result.Error, "event_id", eventId, "id", entryId)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
