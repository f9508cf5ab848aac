package viewmodel

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/usercontext"
)

// Layout carries what the shared page frame needs: the site name, the
// current user, flash messages and the CSRF token for forms.
type Layout struct {
	Site            string                  `json:"site"`
	Page            string                  `json:"page"`
	User            usercontext.UserContext `json:"user"`
	Msg             fiber.Map               `json:"messages,omitempty"`
	CSRFToken       string                  `json:"-"`
	HCaptchaSiteKey string                  `json:"-"`
	Providers       []string                `json:"-"`
}
