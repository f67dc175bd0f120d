package repositories

import "janji/internal/models"

// ServiceRepository defines the interface for service-offering data access.
type ServiceRepository interface {
	Create(service *models.Service) error
	GetByID(id string) (*models.Service, error)
	GetByUserID(userID string) ([]models.Service, error)
	Update(service *models.Service) error
	Delete(id string) error
}
