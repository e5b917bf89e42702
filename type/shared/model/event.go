package model

import "time"

const TableNameEvent = "events"

// Event is one certificate-issuing campaign. The four coordinates are
// percentages of the template's first page, measured from its top-left corner.
type Event struct {
	ID           uint          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventName    string        `gorm:"column:event_name;not null;uniqueIndex" json:"event_name"`
	CertPrefix   string        `gorm:"column:cert_prefix;not null" json:"cert_prefix"`
	ExpiryDate   *time.Time    `gorm:"column:expiry_date" json:"expiry_date"`
	IsActive     bool          `gorm:"column:is_active;not null" json:"is_active"`
	TemplateURL  string        `gorm:"column:template_url;not null" json:"template_url"`
	NameX        float64       `gorm:"column:name_x;not null" json:"name_x"`
	NameY        float64       `gorm:"column:name_y;not null" json:"name_y"`
	CertX        float64       `gorm:"column:cert_x;not null" json:"cert_x"`
	CertY        float64       `gorm:"column:cert_y;not null" json:"cert_y"`
	CreatedAt    time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"column:updated_at" json:"updated_at"`
	Whitelists   []Whitelist   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"whitelists,omitempty"`
	Certificates []Certificate `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"certificates,omitempty"`
}

func (*Event) TableName() string {
	return TableNameEvent
}
