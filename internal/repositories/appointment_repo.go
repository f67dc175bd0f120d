package repositories

import "janji/internal/models"

// AppointmentRepository defines the interface for appointment data access.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	GetByUserID(userID string) ([]models.Appointment, error)
	Update(appointment *models.Appointment) error
	Delete(id string) error
}
