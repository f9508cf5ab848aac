package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/forms"
	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/flash"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/hcaptcha"
	appsession "github.com/ManuelReschke/NewsNotes/internal/pkg/session"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/usercontext"
)

const (
	CaptchaMessage = "Подтвердите, что вы не робот."
	SignupSuccess  = "Регистрация прошла успешно. Теперь вы можете войти."
)

// AuthController handles login, logout and signup for both applications.
type AuthController struct {
	*Base
	userRepo repository.UserRepository
	store    *session.Store
	captcha  *hcaptcha.Verifier
}

func NewAuthController(base *Base, userRepo repository.UserRepository, store *session.Store, captcha *hcaptcha.Verifier) *AuthController {
	return &AuthController{
		Base:     base,
		userRepo: userRepo,
		store:    store,
		captcha:  captcha,
	}
}

func (ac *AuthController) HandleLoginPage(c *fiber.Ctx) error {
	form := forms.New(map[string]string{constants.NextParam: c.Query(constants.NextParam)})
	return ac.renderLogin(c, form)
}

// HandleLogin checks the credentials and starts a session. The same message
// is shown for unknown users and wrong passwords.
func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	password := c.FormValue("password")
	form := forms.ValidateLogin(formValues(c, "username", constants.NextParam), password)
	if !form.Valid() {
		return ac.renderLogin(c, form)
	}

	user, err := ac.userRepo.GetByUsername(form.Get("username"))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil || !user.CheckPassword(password) {
		ac.Metrics.Logins.WithLabelValues("failure").Inc()
		form.AddError(forms.NonFieldErrors, forms.InvalidLoginMessage)
		return ac.renderLogin(c, form)
	}

	if err := ac.login(c, user); err != nil {
		return err
	}

	return redirect(c, constants.SafeNext(form.Get(constants.NextParam), constants.PublicRoute))
}

// HandleLogout ends the session and shows the goodbye page. Both GET and
// POST are accepted.
func (ac *AuthController) HandleLogout(c *fiber.Ctx) error {
	if err := appsession.Logout(ac.store, c); err != nil {
		return err
	}
	usercontext.Set(c, usercontext.Anonymous())
	return ac.render(c, "auth/logout", fiber.Map{})
}

func (ac *AuthController) HandleSignupPage(c *fiber.Ctx) error {
	return ac.renderSignup(c, forms.Empty())
}

func (ac *AuthController) HandleSignup(c *fiber.Ctx) error {
	form, err := forms.ValidateSignup(
		formValues(c, "username"),
		c.FormValue("password1"),
		c.FormValue("password2"),
		ac.userRepo,
	)
	if err != nil {
		return fmt.Errorf("validate signup: %w", err)
	}

	if ac.captcha.Enabled() {
		ok, err := ac.captcha.Verify(c.UserContext(), c.FormValue(hcaptcha.ResponseField))
		if !ok {
			ac.Log.WithError(err).Info("captcha rejected")
			form.AddError(forms.NonFieldErrors, CaptchaMessage)
		}
	}

	if !form.Valid() {
		return ac.renderSignup(c, form)
	}

	user, err := models.CreateUser(form.Get("username"), c.FormValue("password1"))
	if err != nil {
		return fmt.Errorf("build user: %w", err)
	}
	if err := ac.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			form.AddError("username", forms.UsernameTakenMessage)
			return ac.renderSignup(c, form)
		}
		return fmt.Errorf("create user: %w", err)
	}
	ac.Metrics.Signups.Inc()
	ac.statsChanged(c)
	ac.Log.WithField("user_id", user.ID).Info("user signed up")

	return flash.Success(c, SignupSuccess).Redirect(constants.LoginRoute, fiber.StatusFound)
}

// login binds user to a fresh session and records the login.
func (ac *AuthController) login(c *fiber.Ctx, user *models.User) error {
	if err := appsession.Login(ac.store, c, user); err != nil {
		return err
	}
	if err := ac.userRepo.UpdateLastLogin(user.ID, time.Now().UTC()); err != nil {
		ac.Log.WithError(err).Warn("could not update last login")
	}
	ac.Metrics.Logins.WithLabelValues("success").Inc()
	return nil
}

func (ac *AuthController) renderLogin(c *fiber.Ctx, form *forms.Form) error {
	return ac.render(c, "auth/login", fiber.Map{
		"form": form,
		"next": form.Get(constants.NextParam),
	})
}

func (ac *AuthController) renderSignup(c *fiber.Ctx, form *forms.Form) error {
	return ac.render(c, "auth/signup", fiber.Map{"form": form})
}
