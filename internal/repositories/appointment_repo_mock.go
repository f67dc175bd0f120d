package repositories

import (
	"sync"

	"janji/internal/models"

	"github.com/google/uuid"
)

// MemoryAppointmentRepository is an in-memory implementation of AppointmentRepository.
type MemoryAppointmentRepository struct {
	appointments map[string]models.Appointment
	mu           sync.RWMutex
}

// NewMemoryAppointmentRepository creates a new instance of MemoryAppointmentRepository.
func NewMemoryAppointmentRepository() *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{
		appointments: make(map[string]models.Appointment),
	}
}

// Create adds a new appointment, generating an id if none is set.
func (r *MemoryAppointmentRepository) Create(appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

// GetByID returns the appointment with the given id.
func (r *MemoryAppointmentRepository) GetByID(id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &appointment, nil
}

// GetByUserID returns all appointments owned by the given provider.
func (r *MemoryAppointmentRepository) GetByUserID(userID string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]models.Appointment, 0)
	for _, a := range r.appointments {
		if a.UserID == userID {
			appointments = append(appointments, a)
		}
	}
	return appointments, nil
}

// Update replaces the stored appointment.
func (r *MemoryAppointmentRepository) Update(appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[appointment.ID]; !ok {
		return ErrNotFound
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

// Delete removes an appointment by its ID. Absent ids are a no-op.
func (r *MemoryAppointmentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.appointments, id)
	return nil
}
