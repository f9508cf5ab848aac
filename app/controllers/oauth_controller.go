package controllers

import (
	"fmt"
	"slices"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/flash"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/oauth"
)

// OAuthController signs users in through the configured external providers.
type OAuthController struct {
	*AuthController
}

func NewOAuthController(auth *AuthController) *OAuthController {
	return &OAuthController{AuthController: auth}
}

// HandleBegin redirects to the provider. Unknown providers are 404.
func (oc *OAuthController) HandleBegin(c *fiber.Ctx) error {
	if !slices.Contains(oc.Providers, c.Params("provider")) {
		return fiber.ErrNotFound
	}
	return gothfiber.BeginAuthHandler(c)
}

// HandleCallback completes the provider flow and logs the user in
func (oc *OAuthController) HandleCallback(c *fiber.Ctx) error {
	if !slices.Contains(oc.Providers, c.Params("provider")) {
		return fiber.ErrNotFound
	}

	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		oc.Log.WithError(err).Warn("oauth failed")
		return flash.Error(c, "Не удалось войти через "+c.Params("provider")+".").
			Redirect(constants.LoginRoute, fiber.StatusFound)
	}

	user, err := oc.userRepo.FindOrCreateByProvider(u.Provider, u.UserID, oauth.Username(u))
	if err != nil {
		return fmt.Errorf("oauth user: %w", err)
	}

	if err := oc.login(c, user); err != nil {
		return err
	}
	return redirect(c, constants.PublicRoute)
}
