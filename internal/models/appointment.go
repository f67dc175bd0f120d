package models

import "gorm.io/gorm"

// Appointment lifecycle and payment states.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	PaymentPending = "pending"
	PaymentPaid    = "paid"

	PaymentMethodCash   = "cash"
	PaymentMethodPaypal = "paypal"
)

// Appointment is a booking of a service, owned by the provider (not the
// customer). Date and time are free-text strings, as supplied by the caller.
type Appointment struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string `json:"userId" gorm:"index;type:varchar(36)"`
	ServiceID     string `json:"serviceId" gorm:"index;type:varchar(36)"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Notes         string `json:"notes"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// AppointmentDetail is an appointment joined with the owning user's PayPal
// handle, returned by the get-by-id endpoint so customers can pay.
type AppointmentDetail struct {
	Appointment
	PaypalHandle *string `json:"paypal_handle"`
}
