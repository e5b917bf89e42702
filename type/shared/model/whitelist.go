package model

import "time"

const TableNameWhitelist = "whitelists"

// Whitelist is one authorized participant name. NameKey holds the normalized
// form and is unique per event.
type Whitelist struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID   uint      `gorm:"column:event_id;not null;uniqueIndex:idx_whitelist_event_name_key,priority:1" json:"event_id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	NameKey   string    `gorm:"column:name_key;not null;uniqueIndex:idx_whitelist_event_name_key,priority:2" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (*Whitelist) TableName() string {
	return TableNameWhitelist
}
