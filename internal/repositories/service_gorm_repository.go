package repositories

import (
	"errors"
	"fmt"

	"janji/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMServiceRepository is a GORM implementation of ServiceRepository.
type GORMServiceRepository struct {
	db *gorm.DB
}

// NewGORMServiceRepository creates a new instance of GORMServiceRepository.
func NewGORMServiceRepository(db *gorm.DB) *GORMServiceRepository {
	return &GORMServiceRepository{
		db: db,
	}
}

// Create creates a new service in the database.
func (r *GORMServiceRepository) Create(service *models.Service) error {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	if err := r.db.Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// GetByID retrieves a single service by its ID from the database.
func (r *GORMServiceRepository) GetByID(id string) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service by ID %s: %w", id, err)
	}
	return &service, nil
}

// GetByUserID retrieves all services owned by the given user.
func (r *GORMServiceRepository) GetByUserID(userID string) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.Find(&services, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get services for user %s: %w", userID, err)
	}
	return services, nil
}

// Update saves the full service row.
func (r *GORMServiceRepository) Update(service *models.Service) error {
	if err := r.db.Save(service).Error; err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ID, err)
	}
	return nil
}

// Delete removes a service by its ID. Deleting an absent id is a no-op.
func (r *GORMServiceRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Service{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	return nil
}
