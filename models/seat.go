package models

import "time"

type Seat struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SeatNumber string    `gorm:"type:varchar(50);not null" json:"seat_number"`
	TableID    uint      `gorm:"not null;index" json:"table_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
