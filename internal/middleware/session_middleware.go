package middleware

import (
	"janji/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Locals keys populated by LoadSession.
const (
	CurrentUserKey  = "currentUser"
	SessionEmailKey = "sessionEmail"
)

// LoadSession resolves the caller behind the session cookie and stores the
// user under CurrentUserKey. It never rejects a request: routes that need
// authentication check the resolved user themselves, which lets public
// routes and "empty list when anonymous" routes share the chain.
func LoadSession(store *session.Store, authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Next()
		}

		email, ok := sess.Get(SessionEmailKey).(string)
		if !ok || email == "" {
			return c.Next()
		}

		// A session pointing at a deleted account counts as anonymous.
		user, err := authService.GetByEmail(email)
		if err != nil {
			return c.Next()
		}

		c.Locals(CurrentUserKey, user)
		return c.Next()
	}
}
