package repositories

import (
	"errors"
	"fmt"

	"janji/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAppointmentRepository is a GORM implementation of AppointmentRepository.
type GORMAppointmentRepository struct {
	db *gorm.DB
}

// NewGORMAppointmentRepository creates a new instance of GORMAppointmentRepository.
func NewGORMAppointmentRepository(db *gorm.DB) *GORMAppointmentRepository {
	return &GORMAppointmentRepository{
		db: db,
	}
}

// Create creates a new appointment in the database.
func (r *GORMAppointmentRepository) Create(appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if err := r.db.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves a single appointment by its ID from the database.
func (r *GORMAppointmentRepository) GetByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment by ID %s: %w", id, err)
	}
	return &appointment, nil
}

// GetByUserID retrieves all appointments owned by the given provider.
func (r *GORMAppointmentRepository) GetByUserID(userID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Find(&appointments, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get appointments for user %s: %w", userID, err)
	}
	return appointments, nil
}

// Update saves the full appointment row.
func (r *GORMAppointmentRepository) Update(appointment *models.Appointment) error {
	if err := r.db.Save(appointment).Error; err != nil {
		return fmt.Errorf("failed to update appointment %s: %w", appointment.ID, err)
	}
	return nil
}

// Delete removes an appointment by its ID. Deleting an absent id is a no-op.
func (r *GORMAppointmentRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	return nil
}
