package models

import "time"

// DiningGroup is one party of diners tracked as a single order unit.
// Lifecycle: open (submitted=false) -> submitted -> paid. Paid requires
// submitted; items and seat reservations only change while open.
type DiningGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroupName string    `gorm:"type:varchar(255);not null" json:"group_name"`
	Submitted bool      `gorm:"not null;default:false" json:"submitted"`
	Paid      bool      `gorm:"not null;default:false" json:"paid"`
	TableID   uint      `gorm:"not null;index" json:"table_id"`
	Table     Table     `gorm:"foreignKey:TableID" json:"table,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
