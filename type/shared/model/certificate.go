package model

import "time"

const TableNameCertificate = "certificates"

// Certificate is one issuance record. CertNo stays nil while the record is
// only a reservation.
type Certificate struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID  uint      `gorm:"column:event_id;not null;index" json:"event_id"`
	Name     string    `gorm:"column:name;not null" json:"name"`
	CertNo   *string   `gorm:"column:cert_no;uniqueIndex" json:"cert_no"`
	IssuedAt time.Time `gorm:"column:issued_at;autoCreateTime" json:"issued_at"`
}

func (*Certificate) TableName() string {
	return TableNameCertificate
}

func (c *Certificate) IsCompleted() bool {
	return c.CertNo != nil && *c.CertNo != ""
}
