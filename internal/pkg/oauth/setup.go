package oauth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/discord"
	"github.com/markbates/goth/providers/google"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
)

// Setup registers the providers that have credentials and returns their
// names. The OAuth state lives in its own session cookie so it never touches
// the login session. storage may be nil for in-memory state.
func Setup(cfg *config.Config, storage fiber.Storage) []string {
	base := strings.TrimRight(cfg.OAuth.PublicDomain, "/")
	if base == "" {
		base = "http://localhost:" + cfg.Port
	}

	var (
		providers []goth.Provider
		names     []string
	)
	if cfg.OAuth.GoogleKey != "" && cfg.OAuth.GoogleSecret != "" {
		providers = append(providers, google.New(
			cfg.OAuth.GoogleKey,
			cfg.OAuth.GoogleSecret,
			base+"/auth/google/callback",
			"email", "profile",
		))
		names = append(names, "google")
	}
	if cfg.OAuth.DiscordKey != "" && cfg.OAuth.DiscordSecret != "" {
		providers = append(providers, discord.New(
			cfg.OAuth.DiscordKey,
			cfg.OAuth.DiscordSecret,
			base+"/auth/discord/callback",
			discord.ScopeIdentify, discord.ScopeEmail,
		))
		names = append(names, "discord")
	}
	if len(providers) == 0 {
		return nil
	}

	goth.UseProviders(providers...)

	gothfiber.SessionStore = session.New(session.Config{
		Storage:        storage,
		KeyLookup:      "cookie:" + gothic.SessionName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   cfg.Session.CookieSecure,
		Expiration:     72 * time.Hour,
	})

	return names
}

// Username picks a local username for an external account.
func Username(u goth.User) string {
	for _, candidate := range []string{u.NickName, u.Name, strings.Split(u.Email, "@")[0]} {
		candidate = strings.Join(strings.Fields(candidate), "_")
		if candidate != "" {
			if len([]rune(candidate)) > 140 {
				candidate = string([]rune(candidate)[:140])
			}
			return candidate
		}
	}
	return u.Provider + "_user"
}
