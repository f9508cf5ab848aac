package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsNotes/app/models"
)

const localsKey = "USER_CONTEXT"

// UserContext represents the requesting user. Anonymous requests get the zero
// value.
type UserContext struct {
	UserID     uint         `json:"user_id"`
	Username   string       `json:"username"`
	IsLoggedIn bool         `json:"is_logged_in"`
	User       *models.User `json:"-"`
}

func Anonymous() UserContext {
	return UserContext{}
}

func FromUser(u *models.User) UserContext {
	return UserContext{
		UserID:     u.ID,
		Username:   u.Username,
		IsLoggedIn: true,
		User:       u,
	}
}

func Set(c *fiber.Ctx, uc UserContext) {
	c.Locals(localsKey, uc)
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx, ok := c.Locals(localsKey).(UserContext); ok {
		return ctx
	}
	return Anonymous()
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	return GetUserContext(c).UserID
}
