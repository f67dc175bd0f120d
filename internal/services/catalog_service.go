package services

import (
	"janji/internal/models"
	"janji/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ServiceInput is the create request for a service offering. Field order
// fixes which missing field a ValidationError reports first.
type ServiceInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	OwnerID     string  `json:"ownerId" validate:"required"`
}

// ServiceUpdate is a partial update; nil fields keep their stored value.
type ServiceUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// CatalogService handles business logic for the catalog of bookable
// service offerings.
type CatalogService struct {
	repo             repositories.ServiceRepository
	validate         *validator.Validate
	enforceOwnership bool
}

// NewCatalogService creates a new CatalogService. With enforceOwnership
// set, Update and Delete refuse callers who do not own the service; the
// historical behavior (any caller who knows an id may mutate it) is kept
// when it is off.
func NewCatalogService(repo repositories.ServiceRepository, enforceOwnership bool) *CatalogService {
	return &CatalogService{
		repo:             repo,
		validate:         newValidator(),
		enforceOwnership: enforceOwnership,
	}
}

// Create validates the input and persists a new service.
func (s *CatalogService) Create(input ServiceInput) (*models.Service, error) {
	if err := checkRequired(s.validate, input); err != nil {
		return nil, err
	}
	service := &models.Service{
		UserID:      input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	}
	if err := s.repo.Create(service); err != nil {
		return nil, err
	}
	return service, nil
}

// GetByID retrieves a single service by its ID.
func (s *CatalogService) GetByID(id string) (*models.Service, error) {
	return s.repo.GetByID(id)
}

// ListByOwner retrieves all services owned by the given user.
func (s *CatalogService) ListByOwner(userID string) ([]models.Service, error) {
	return s.repo.GetByUserID(userID)
}

// Update replaces only the supplied fields of an existing service.
// callerID is the session user ("" when unauthenticated) and only matters
// with ownership enforcement on.
func (s *CatalogService) Update(id, callerID string, update ServiceUpdate) (*models.Service, error) {
	service, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwner(service.UserID, callerID); err != nil {
		return nil, err
	}

	if update.Title != nil {
		service.Title = *update.Title
	}
	if update.Description != nil {
		service.Description = *update.Description
	}
	if update.Price != nil {
		service.Price = *update.Price
	}

	if err := s.repo.Update(service); err != nil {
		return nil, err
	}
	return service, nil
}

// Delete removes a service. Absent ids succeed silently.
func (s *CatalogService) Delete(id, callerID string) error {
	if s.enforceOwnership {
		service, err := s.repo.GetByID(id)
		if err != nil {
			// Idempotent delete: an absent id is still a success.
			return nil
		}
		if err := s.checkOwner(service.UserID, callerID); err != nil {
			return err
		}
	}
	return s.repo.Delete(id)
}

func (s *CatalogService) checkOwner(ownerID, callerID string) error {
	if s.enforceOwnership && callerID != ownerID {
		return ErrUnauthorized
	}
	return nil
}
