package services

import (
	"errors"
	"fmt"
	"log"

	"janji/internal/models"
	"janji/internal/repositories"
	"janji/pkg/events"

	"github.com/go-playground/validator/v10"
)

// AppointmentInput is the create request for an appointment. The provider
// is resolved from the session, never from the body.
type AppointmentInput struct {
	ServiceID     string `json:"serviceId" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	Notes         string `json:"notes"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
}

// AppointmentUpdate is the update request. Unlike create, serviceId is
// optional (the stored value is kept), but date and time stay required:
// an update is a full replace, and the optional fields fall back to the
// same defaults as create when absent.
type AppointmentUpdate struct {
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	Notes         string `json:"notes"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
}

// AppointmentService handles business logic for appointments, including
// the one cross-entity derivation of the system: attaching the owning
// user's PayPal handle to appointment detail reads.
type AppointmentService struct {
	apptRepo         repositories.AppointmentRepository
	userRepo         repositories.UserRepository
	mqClient         *events.Client
	validate         *validator.Validate
	enforceOwnership bool
}

// NewAppointmentService creates a new AppointmentService. mqClient may be
// nil, in which case booking events are skipped.
func NewAppointmentService(apptRepo repositories.AppointmentRepository, userRepo repositories.UserRepository, mqClient *events.Client, enforceOwnership bool) *AppointmentService {
	return &AppointmentService{
		apptRepo:         apptRepo,
		userRepo:         userRepo,
		mqClient:         mqClient,
		validate:         newValidator(),
		enforceOwnership: enforceOwnership,
	}
}

// Create validates the input and persists a new appointment for the given
// provider. The serviceId is stored as supplied; existence of the service
// is deliberately not checked (bookings survive catalog deletions).
func (s *AppointmentService) Create(userID string, input AppointmentInput) (*models.Appointment, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if err := checkRequired(s.validate, input); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		UserID:        userID,
		ServiceID:     input.ServiceID,
		Date:          input.Date,
		Time:          input.Time,
		Notes:         input.Notes,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Status:        defaultString(input.Status, models.StatusScheduled),
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: defaultString(input.PaymentStatus, models.PaymentPending),
	}
	if err := s.apptRepo.Create(appointment); err != nil {
		return nil, err
	}

	s.publish(events.BookingCreated, appointment)
	return appointment, nil
}

// GetByID retrieves an appointment together with the owning user's PayPal
// handle (null when the user has none set, or no longer exists).
func (s *AppointmentService) GetByID(id string) (*models.AppointmentDetail, error) {
	appointment, err := s.apptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	detail := &models.AppointmentDetail{Appointment: *appointment}
	owner, err := s.userRepo.GetByID(appointment.UserID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve appointment owner: %w", err)
		}
	} else {
		detail.PaypalHandle = owner.PaypalHandle
	}
	return detail, nil
}

// ListByOwner retrieves all appointments owned by the given provider.
func (s *AppointmentService) ListByOwner(userID string) ([]models.Appointment, error) {
	return s.apptRepo.GetByUserID(userID)
}

// Update replaces an existing appointment. Date and time are required;
// the remaining fields take the create defaults when absent, and an empty
// serviceId keeps the stored one.
func (s *AppointmentService) Update(id, callerID string, update AppointmentUpdate) (*models.Appointment, error) {
	appointment, err := s.apptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s.enforceOwnership && callerID != appointment.UserID {
		return nil, ErrUnauthorized
	}
	if err := checkRequired(s.validate, update); err != nil {
		return nil, err
	}

	appointment.ServiceID = defaultString(update.ServiceID, appointment.ServiceID)
	appointment.Date = update.Date
	appointment.Time = update.Time
	appointment.Notes = update.Notes
	appointment.CustomerName = update.CustomerName
	appointment.CustomerPhone = update.CustomerPhone
	appointment.CustomerEmail = update.CustomerEmail
	appointment.Status = defaultString(update.Status, models.StatusScheduled)
	appointment.PaymentMethod = update.PaymentMethod
	appointment.PaymentStatus = defaultString(update.PaymentStatus, models.PaymentPending)

	if err := s.apptRepo.Update(appointment); err != nil {
		return nil, err
	}

	s.publish(events.BookingUpdated, appointment)
	return appointment, nil
}

// Delete removes an appointment. Absent ids succeed silently.
func (s *AppointmentService) Delete(id, callerID string) error {
	if s.enforceOwnership {
		appointment, err := s.apptRepo.GetByID(id)
		if err != nil {
			return nil
		}
		if callerID != appointment.UserID {
			return ErrUnauthorized
		}
	}
	return s.apptRepo.Delete(id)
}

// publish emits a booking event. Failures are logged, never surfaced: the
// booking itself has already committed.
func (s *AppointmentService) publish(event string, appointment *models.Appointment) {
	if s.mqClient == nil {
		return
	}
	err := s.mqClient.PublishBookingEvent(events.BookingEvent{
		Event:         event,
		AppointmentID: appointment.ID,
		UserID:        appointment.UserID,
		ServiceID:     appointment.ServiceID,
		Status:        appointment.Status,
		PaymentStatus: appointment.PaymentStatus,
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s event for appointment %s: %v", event, appointment.ID, err)
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
