package handlers

import (
	"janji/internal/models"
	"janji/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ServiceHandler handles HTTP requests for the service catalog.
type ServiceHandler struct {
	catalog *services.CatalogService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(catalog *services.CatalogService) *ServiceHandler {
	return &ServiceHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the service-catalog routes with the Fiber app.
func (h *ServiceHandler) RegisterRoutes(router fiber.Router) {
	serviceRoutes := router.Group("/services")
	serviceRoutes.Get("/", h.HandleList)
	serviceRoutes.Post("/", h.HandleCreate)
	serviceRoutes.Get("/:id", h.HandleGetByID)
	serviceRoutes.Put("/:id", h.HandleUpdate)
	serviceRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns the session user's services, or an empty list for an
// anonymous caller.
func (h *ServiceHandler) HandleList(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON([]models.Service{})
	}

	list, err := h.catalog.ListByOwner(user.ID)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(list)
}

// HandleCreate creates a new service offering.
func (h *ServiceHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.ServiceInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c, err)
	}

	service, err := h.catalog.Create(input)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// HandleGetByID returns a single service.
func (h *ServiceHandler) HandleGetByID(c *fiber.Ctx) error {
	service, err := h.catalog.GetByID(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(service)
}

// HandleUpdate replaces the supplied fields of a service.
func (h *ServiceHandler) HandleUpdate(c *fiber.Ctx) error {
	var update services.ServiceUpdate
	if err := c.BodyParser(&update); err != nil {
		return badBody(c, err)
	}

	service, err := h.catalog.Update(c.Params("id"), callerID(c), update)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(service)
}

// HandleDelete removes a service. Deleting an unknown id still succeeds.
func (h *ServiceHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.catalog.Delete(c.Params("id"), callerID(c)); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "service deleted"})
}
