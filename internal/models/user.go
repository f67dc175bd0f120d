package models

import "gorm.io/gorm"

// User is an account that owns services and appointments.
type User struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string  `json:"email" gorm:"uniqueIndex;type:varchar(255)"` // stored lower-cased
	Password     string  `json:"-" gorm:"type:varchar(255)"`                 // bcrypt hash
	PaypalHandle *string `json:"paypal_handle" gorm:"type:varchar(255)"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// PublicUser is the shape the API returns; the password hash never leaves
// the service layer.
type PublicUser struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	PaypalHandle *string `json:"paypal_handle"`
}

// Public projects the user into its API representation.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		PaypalHandle: u.PaypalHandle,
	}
}
