package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/types"
	"gorm.io/gorm"
)

// SessionUserKey is the session value holding the authenticated user id
const SessionUserKey = "user_id"

// SessionVersionKey holds the user's session version when the session started
const SessionVersionKey = "session_version"

const principalKey = "principal"

// RequireAuth rejects requests without a live session bound to an existing user
func RequireAuth(store *session.Store, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c, store, db)
		if err != nil {
			return err
		}
		if user == nil {
			return types.ErrAuthenticationRequired
		}

		c.Locals(principalKey, types.Principal{ID: user.ID, Username: user.Username})
		return c.Next()
	}
}

// CurrentUser resolves the user bound to the request session. It returns
// nil without error when the request is unauthenticated, and destroys
// sessions that point at users that no longer exist or that predate a
// password change.
func CurrentUser(c *fiber.Ctx, store *session.Store, db *gorm.DB) (*models.User, error) {
	sess, err := store.Get(c)
	if err != nil {
		return nil, err
	}

	raw := sess.Get(SessionUserKey)
	if raw == nil {
		return nil, nil
	}

	userID, ok := raw.(uint64)
	if !ok {
		log.Printf("Discarding session with unexpected user id type %T", raw)
		return nil, sess.Destroy()
	}

	user, err := services.GetUser(db, userID)
	if errors.Is(err, types.ErrNotFound) {
		return nil, sess.Destroy()
	}
	if err != nil {
		return nil, err
	}

	version, _ := sess.Get(SessionVersionKey).(uint64)
	if version != user.SessionVersion {
		return nil, sess.Destroy()
	}

	return user, nil
}

// PrincipalFrom returns the principal stored by RequireAuth
func PrincipalFrom(c *fiber.Ctx) (types.Principal, error) {
	principal, ok := c.Locals(principalKey).(types.Principal)
	if !ok {
		return types.Principal{}, types.ErrAuthenticationRequired
	}
	return principal, nil
}
