package services_test

import (
	"testing"

	"janji/internal/repositories"
	"janji/internal/services"

	"github.com/stretchr/testify/assert"
)

func f64Ptr(f float64) *float64 { return &f }

func validServiceInput() services.ServiceInput {
	return services.ServiceInput{
		Title:       "Haircut",
		Description: "30 minute cut",
		Price:       20,
		OwnerID:     "user-1",
	}
}

func TestCatalogService_Create(t *testing.T) {
	catalog := services.NewCatalogService(repositories.NewMemoryServiceRepository(), false)

	first, err := catalog.Create(validServiceInput())
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "user-1", first.UserID)
	assert.Equal(t, 20.0, first.Price)

	second, err := catalog.Create(validServiceInput())
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCatalogService_CreateValidation(t *testing.T) {
	catalog := services.NewCatalogService(repositories.NewMemoryServiceRepository(), false)
	var verr *services.ValidationError

	input := validServiceInput()
	input.Price = 0
	_, err := catalog.Create(input)
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)

	// With several fields missing the first one in declaration order wins.
	_, err = catalog.Create(services.ServiceInput{Price: 20})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	input = validServiceInput()
	input.OwnerID = ""
	_, err = catalog.Create(input)
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "ownerId", verr.Field)
}

func TestCatalogService_Update(t *testing.T) {
	catalog := services.NewCatalogService(repositories.NewMemoryServiceRepository(), false)
	created, err := catalog.Create(validServiceInput())
	assert.NoError(t, err)

	// Partial update: only supplied fields change.
	updated, err := catalog.Update(created.ID, "", services.ServiceUpdate{Price: f64Ptr(25)})
	assert.NoError(t, err)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, "Haircut", updated.Title)
	assert.Equal(t, "30 minute cut", updated.Description)

	_, err = catalog.Update("missing", "", services.ServiceUpdate{Price: f64Ptr(25)})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCatalogService_DeleteIdempotent(t *testing.T) {
	catalog := services.NewCatalogService(repositories.NewMemoryServiceRepository(), false)
	created, err := catalog.Create(validServiceInput())
	assert.NoError(t, err)

	assert.NoError(t, catalog.Delete(created.ID, ""))
	_, err = catalog.GetByID(created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Deleting again, or deleting an id that never existed, still succeeds.
	assert.NoError(t, catalog.Delete(created.ID, ""))
	assert.NoError(t, catalog.Delete("never-existed", ""))
}

func TestCatalogService_ListByOwner(t *testing.T) {
	catalog := services.NewCatalogService(repositories.NewMemoryServiceRepository(), false)

	mine := validServiceInput()
	_, err := catalog.Create(mine)
	assert.NoError(t, err)

	other := validServiceInput()
	other.OwnerID = "user-2"
	_, err = catalog.Create(other)
	assert.NoError(t, err)

	list, err := catalog.ListByOwner("user-1")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "user-1", list[0].UserID)

	empty, err := catalog.ListByOwner("user-3")
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCatalogService_OwnershipEnforcement(t *testing.T) {
	repo := repositories.NewMemoryServiceRepository()
	open := services.NewCatalogService(repo, false)
	strict := services.NewCatalogService(repo, true)

	created, err := open.Create(validServiceInput())
	assert.NoError(t, err)

	// Historical behavior: anyone who knows the id may mutate it.
	_, err = open.Update(created.ID, "someone-else", services.ServiceUpdate{Price: f64Ptr(30)})
	assert.NoError(t, err)

	// With enforcement on, only the owner (and nobody anonymous) may.
	_, err = strict.Update(created.ID, "someone-else", services.ServiceUpdate{Price: f64Ptr(35)})
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	_, err = strict.Update(created.ID, "", services.ServiceUpdate{Price: f64Ptr(35)})
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	err = strict.Delete(created.ID, "someone-else")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	updated, err := strict.Update(created.ID, "user-1", services.ServiceUpdate{Price: f64Ptr(40)})
	assert.NoError(t, err)
	assert.Equal(t, 40.0, updated.Price)
	assert.NoError(t, strict.Delete(created.ID, "user-1"))
}

func TestMemoryServiceRepositoryIsolation(t *testing.T) {
	// Two repositories injected into two services never share state.
	a := services.NewCatalogService(repositories.NewMemoryServiceRepository(), false)
	b := services.NewCatalogService(repositories.NewMemoryServiceRepository(), false)

	created, err := a.Create(validServiceInput())
	assert.NoError(t, err)

	_, err = b.GetByID(created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
