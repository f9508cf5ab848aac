package oauth

import (
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
)

func TestSetupWithoutKeys(t *testing.T) {
	assert.Empty(t, Setup(config.Testing(), nil))
}

func TestSetupRegistersConfiguredProviders(t *testing.T) {
	cfg := config.Testing()
	cfg.OAuth.DiscordKey = "key"
	cfg.OAuth.DiscordSecret = "secret"
	t.Cleanup(goth.ClearProviders)

	assert.Equal(t, []string{"discord"}, Setup(cfg, nil))

	_, err := goth.GetProvider("discord")
	assert.NoError(t, err)
	_, err = goth.GetProvider("google")
	assert.Error(t, err)
}

func TestUsername(t *testing.T) {
	assert.Equal(t, "valera", Username(goth.User{NickName: "valera", Name: "Valera P"}))
	assert.Equal(t, "Valera_P", Username(goth.User{Name: "Valera P"}))
	assert.Equal(t, "igor", Username(goth.User{Email: "igor@example.com"}))
	assert.Equal(t, "google_user", Username(goth.User{Provider: "google"}))
}
