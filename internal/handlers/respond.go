package handlers

import (
	"errors"
	"log"

	"janji/internal/middleware"
	"janji/internal/models"
	"janji/internal/repositories"
	"janji/internal/services"

	"github.com/gofiber/fiber/v2"
)

// renderError maps the service error taxonomy onto HTTP statuses. Every
// failure body is the same shape: {"error": message}.
func renderError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		// The original API reported duplicate emails as 400, not 409.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

// badBody is the response for an unparseable JSON body.
func badBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
}

// currentUser returns the session user resolved by the middleware, or nil
// for an anonymous request.
func currentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(middleware.CurrentUserKey).(*models.User); ok {
		return user
	}
	return nil
}

// callerID returns the session user's id, or "" for an anonymous request.
func callerID(c *fiber.Ctx) string {
	if user := currentUser(c); user != nil {
		return user.ID
	}
	return ""
}
