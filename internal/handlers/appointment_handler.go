package handlers

import (
	"janji/internal/models"
	"janji/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles HTTP requests for appointments.
type AppointmentHandler struct {
	appointments *services.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
	}
}

// RegisterRoutes registers the appointment routes with the Fiber app.
func (h *AppointmentHandler) RegisterRoutes(router fiber.Router) {
	appointmentRoutes := router.Group("/appointments")
	appointmentRoutes.Get("/", h.HandleList)
	appointmentRoutes.Post("/", h.HandleCreate)
	appointmentRoutes.Get("/:id", h.HandleGetByID)
	appointmentRoutes.Put("/:id", h.HandleUpdate)
	appointmentRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns the session user's appointments, or an empty list for
// an anonymous caller.
func (h *AppointmentHandler) HandleList(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON([]models.Appointment{})
	}

	list, err := h.appointments.ListByOwner(user.ID)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(list)
}

// HandleCreate books a new appointment for the session user.
func (h *AppointmentHandler) HandleCreate(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return renderError(c, services.ErrUnauthorized)
	}

	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c, err)
	}

	appointment, err := h.appointments.Create(user.ID, input)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// HandleGetByID returns an appointment with the provider's PayPal handle
// attached.
func (h *AppointmentHandler) HandleGetByID(c *fiber.Ctx) error {
	detail, err := h.appointments.GetByID(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(detail)
}

// HandleUpdate replaces an existing appointment.
func (h *AppointmentHandler) HandleUpdate(c *fiber.Ctx) error {
	var update services.AppointmentUpdate
	if err := c.BodyParser(&update); err != nil {
		return badBody(c, err)
	}

	appointment, err := h.appointments.Update(c.Params("id"), callerID(c), update)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(appointment)
}

// HandleDelete removes an appointment. Deleting an unknown id still
// succeeds.
func (h *AppointmentHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.appointments.Delete(c.Params("id"), callerID(c)); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "appointment deleted"})
}
