package handlers

import (
	"fmt"

	"janji/internal/middleware"
	"janji/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthHandler handles HTTP requests for signup, login, session inspection
// and profile updates. It owns the session lifecycle: services stay
// HTTP-free and only see emails.
type AuthHandler struct {
	authService *services.AuthService
	store       *session.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/signup", h.HandleSignup)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/me", h.HandleMe)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Put("/profile", h.HandleUpdateProfile)
}

// HandleSignup registers a new account and opens a session for it.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var creds services.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return badBody(c, err)
	}

	user, err := h.authService.Signup(creds)
	if err != nil {
		return renderError(c, err)
	}

	if err := h.establishSession(c, user.Email); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"user": user.Public()})
}

// HandleLogin checks credentials and opens a session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var creds services.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return badBody(c, err)
	}

	user, err := h.authService.Login(creds)
	if err != nil {
		return renderError(c, err)
	}

	if err := h.establishSession(c, user.Email); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"user": user.Public()})
}

// HandleMe reports the session user, or null when anonymous. Never an
// error: the front end polls this on load.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	if user := currentUser(c); user != nil {
		return c.JSON(fiber.Map{"user": user.Public()})
	}
	return c.JSON(fiber.Map{"user": nil})
}

// HandleLogout drops the session. Logging out without one still succeeds.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			return renderError(c, fmt.Errorf("failed to destroy session: %w", err))
		}
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// HandleUpdateProfile applies a partial profile change for the session user.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return renderError(c, services.ErrUnauthorized)
	}

	var update services.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return badBody(c, err)
	}

	updated, err := h.authService.UpdateProfile(user.Email, update)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"user": updated.Public()})
}

// establishSession binds the session cookie to the given account email.
func (h *AuthHandler) establishSession(c *fiber.Ctx, email string) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	sess.Set(middleware.SessionEmailKey, email)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
