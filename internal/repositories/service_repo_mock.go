package repositories

import (
	"sync"

	"janji/internal/models"

	"github.com/google/uuid"
)

// MemoryServiceRepository is an in-memory implementation of ServiceRepository.
type MemoryServiceRepository struct {
	services map[string]models.Service
	mu       sync.RWMutex
}

// NewMemoryServiceRepository creates a new instance of MemoryServiceRepository.
func NewMemoryServiceRepository() *MemoryServiceRepository {
	return &MemoryServiceRepository{
		services: make(map[string]models.Service),
	}
}

// Create adds a new service, generating an id if none is set.
func (r *MemoryServiceRepository) Create(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	r.services[service.ID] = *service
	return nil
}

// GetByID returns the service with the given id.
func (r *MemoryServiceRepository) GetByID(id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &service, nil
}

// GetByUserID returns all services owned by the given user.
func (r *MemoryServiceRepository) GetByUserID(userID string) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := make([]models.Service, 0)
	for _, s := range r.services {
		if s.UserID == userID {
			services = append(services, s)
		}
	}
	return services, nil
}

// Update replaces the stored service.
func (r *MemoryServiceRepository) Update(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[service.ID]; !ok {
		return ErrNotFound
	}
	r.services[service.ID] = *service
	return nil
}

// Delete removes a service by its ID. Absent ids are a no-op.
func (r *MemoryServiceRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.services, id)
	return nil
}
