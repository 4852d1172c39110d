package models

import "time"

// GroupSeat reserves one seat for one dining group. A seat counts as
// occupied while its reserving group is still unsubmitted.
type GroupSeat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroupID   uint      `gorm:"not null;index" json:"group_id"`
	SeatID    uint      `gorm:"not null;index" json:"seat_id"`
	Seat      Seat      `gorm:"foreignKey:SeatID" json:"seat,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
