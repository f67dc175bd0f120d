package models

import "gorm.io/gorm"

// Service is an offering a provider can be booked for.
type Service struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string  `json:"ownerId" gorm:"index;type:varchar(36)"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
