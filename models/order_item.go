package models

import "time"

// OrderItem is unique per (group, food); adding the same food again
// merges into the existing row instead of inserting a duplicate.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroupID   uint      `gorm:"not null;uniqueIndex:idx_group_food" json:"group_id"`
	FoodID    uint      `gorm:"not null;uniqueIndex:idx_group_food" json:"food_id"`
	Food      Food      `gorm:"foreignKey:FoodID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"food,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
